package payment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CardInstrument is the raw card data supplied for one payment attempt.
// It is transient: nothing beyond the masked summary ever leaves the
// pipeline.
type CardInstrument struct {
	HolderName   string `json:"holder_name"`
	Number       string `json:"number"`
	ExpiryMonth  string `json:"expiry_month"` // MM
	ExpiryYear   string `json:"expiry_year"`  // YY
	SecurityCode string `json:"security_code"`
}

// ValidCard is a normalized, validated instrument. Number holds digits only.
type ValidCard struct {
	HolderName   string
	Number       string
	Brand        string
	ExpiryMonth  string
	ExpiryYear   string
	SecurityCode string
}

// Expiry returns the card expiry as MM/YY for display and audit.
func (c ValidCard) Expiry() string {
	return c.ExpiryMonth + "/" + c.ExpiryYear
}

// MaskedNumber returns the number with all but the last four digits hidden.
func (c ValidCard) MaskedNumber() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return "**** **** **** " + c.Number[len(c.Number)-4:]
}

// BrandUnknown is returned when no fingerprint matches. Classification is
// advisory only and never gates approval.
const BrandUnknown = "unknown"

// brandRule matches a cleaned number against one brand family.
type brandRule struct {
	brand    string
	prefixes []string
}

// Ordered fingerprint table; first match wins. Longer, more specific
// prefixes are listed before the families that would shadow them.
var brandRules = []brandRule{
	{"hipercard", []string{"606282"}},
	{"elo", []string{"401178", "401179", "438935", "457631", "457632", "504175", "506699", "509048", "627780", "636297", "636368", "650031", "650485", "650905", "651652", "655000"}},
	{"amex", []string{"34", "37"}},
	{"diners", []string{"300", "301", "302", "303", "304", "305", "36", "38"}},
	{"discover", []string{"6011", "644", "645", "646", "647", "648", "649", "65"}},
	{"jcb", []string{"35"}},
	{"mastercard", []string{"51", "52", "53", "54", "55", "2221", "2222", "2223", "2224", "2225", "2226", "2227", "2228", "2229", "223", "224", "225", "226", "227", "228", "229", "23", "24", "25", "26", "270", "271", "2720"}},
	{"visa", []string{"4"}},
}

var nonDigits = regexp.MustCompile(`\D`)

// cleanNumber strips separators, leaving digits only.
func cleanNumber(number string) string {
	return nonDigits.ReplaceAllString(number, "")
}

// ClassifyBrand returns the brand family for a card number, or BrandUnknown
// when no fingerprint matches. It never fails: too-short or garbage input
// simply classifies as unknown.
func ClassifyBrand(number string) string {
	cleaned := cleanNumber(number)
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return BrandUnknown
	}
	for _, rule := range brandRules {
		for _, prefix := range rule.prefixes {
			if strings.HasPrefix(cleaned, prefix) {
				return rule.brand
			}
		}
	}
	return BrandUnknown
}

var (
	monthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	yearPattern  = regexp.MustCompile(`^\d{2}$`)
	cvvPattern   = regexp.MustCompile(`^\d{3,4}$`)
)

// cardExpired reports whether MM/YY is strictly before the current month.
// Both years are compared as two digits, matching the reference behavior;
// this mis-orders across a century rollover ("00" sorts before "99").
func cardExpired(month, year string, now time.Time) bool {
	mm, _ := strconv.Atoi(month)
	yy, _ := strconv.Atoi(year)
	nowYY := now.Year() % 100
	nowMM := int(now.Month())
	if yy != nowYY {
		return yy < nowYY
	}
	return mm < nowMM
}

// ValidateCard checks an instrument field by field and returns either a
// normalized card or the full set of field errors. Checks run in a fixed
// order; FieldErrors.First reports the one that blocks submission.
func ValidateCard(raw CardInstrument, now time.Time) (ValidCard, *FieldErrors) {
	errs := &FieldErrors{}

	holder := strings.TrimSpace(raw.HolderName)
	if len(holder) < 3 {
		errs.Add("holder_name", "holder name must have at least 3 characters")
	}

	number := cleanNumber(raw.Number)
	if len(number) < 13 || len(number) > 19 {
		errs.Add("number", "card number must have between 13 and 19 digits")
	}

	month := strings.TrimSpace(raw.ExpiryMonth)
	if !monthPattern.MatchString(month) {
		errs.Add("expiry_month", "expiry month must be between 01 and 12")
	}

	year := strings.TrimSpace(raw.ExpiryYear)
	if !yearPattern.MatchString(year) {
		errs.Add("expiry_year", "expiry year must have 2 digits")
	} else if monthPattern.MatchString(month) && cardExpired(month, year, now) {
		errs.Add("expiry_year", fmt.Sprintf("card expired on %s/%s", month, year))
	}

	code := strings.TrimSpace(raw.SecurityCode)
	if !cvvPattern.MatchString(code) {
		errs.Add("security_code", "security code must have 3 or 4 digits")
	} else if code == "000" {
		// Business rule, distinct from the syntactic check above.
		errs.Add("security_code", "security code 000 is not accepted")
	}

	if !errs.Empty() {
		return ValidCard{}, errs
	}

	return ValidCard{
		HolderName:   holder,
		Number:       number,
		Brand:        ClassifyBrand(number),
		ExpiryMonth:  month,
		ExpiryYear:   year,
		SecurityCode: code,
	}, nil
}

package payment

import (
	"regexp"
	"strings"

	"go-checkout/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateCustomer checks the required customer fields shared by the
// commit guard and the alt-payment generator. The shipping address is
// optional; when present it must at least locate a delivery.
func ValidateCustomer(c models.Customer) *FieldErrors {
	errs := &FieldErrors{}

	if len(strings.TrimSpace(c.Name)) < 3 {
		errs.Add("name", "name must have at least 3 characters")
	}
	if !emailPattern.MatchString(strings.TrimSpace(c.Email)) {
		errs.Add("email", "invalid email address")
	}

	taxID := cleanNumber(c.TaxID)
	if len(taxID) != 11 && len(taxID) != 14 {
		errs.Add("tax_id", "tax ID must have 11 or 14 digits")
	}

	phone := cleanNumber(c.Phone)
	if len(phone) < 10 || len(phone) > 11 {
		errs.Add("phone", "phone must have 10 or 11 digits")
	}

	if a := c.Address; a != nil {
		if strings.TrimSpace(a.Street) == "" {
			errs.Add("address.street", "street is required")
		}
		if strings.TrimSpace(a.City) == "" {
			errs.Add("address.city", "city is required")
		}
		if strings.TrimSpace(a.State) == "" {
			errs.Add("address.state", "state is required")
		}
		if len(cleanNumber(a.PostalCode)) != 8 {
			errs.Add("address.postal_code", "postal code must have 8 digits")
		}
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

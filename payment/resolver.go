package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-checkout/models"
)

// PaymentOutcome is the immutable result of one payment attempt. A new
// attempt produces a new outcome; nothing mutates one after creation.
type PaymentOutcome struct {
	Success   bool       `json:"success"`
	Method    string     `json:"method"` // "card" or "alt"
	Status    Status     `json:"status"`
	PaymentID string     `json:"payment_id"`
	Timestamp time.Time  `json:"timestamp"`
	Message   string     `json:"message,omitempty"`
	Card      *CardAudit `json:"card,omitempty"`
	Alt       *AltDetail `json:"alt,omitempty"`
}

// CardAudit is the displayable card summary kept on a card outcome.
type CardAudit struct {
	MaskedNumber string `json:"masked_number"`
	Brand        string `json:"brand"`
	Expiry       string `json:"expiry"`
}

// AltDetail carries the scannable credential of an alt-payment outcome.
type AltDetail struct {
	Payload   string    `json:"payload"`
	ImageURL  string    `json:"image_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Test numbers recognized by the simulated settlement in non-live
// environments. Any other number approves.
var declinePrefixes = []string{
	"4000000000000002",
	"5105105105105100",
	"6011000990139424",
}

// ResolveCardPayment decides the outcome of a card attempt. It is a pure
// function of the instrument, the normalized configuration and the optional
// per-product override. Callers must pre-filter disabled methods; the
// resolver assumes the card path is enabled.
//
// Any panic during resolution is converted into a FAILED outcome so no
// fault ever escapes to the caller.
func ResolveCardPayment(card ValidCard, cfg PaymentConfig, override *models.PaymentOverride) (out PaymentOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = PaymentOutcome{
				Success:   false,
				Method:    "card",
				Status:    StatusFailed,
				PaymentID: newPaymentID(),
				Timestamp: time.Now().UTC(),
				Message:   fmt.Sprintf("payment resolution failed: %v", r),
			}
		}
	}()

	var status Status
	if cfg.ManualProcessing {
		status = resolveManual(cfg, override)
	} else {
		status = simulateSettlement(card.Number, cfg.Live)
	}

	return PaymentOutcome{
		Success:   status != StatusDeclined && status != StatusFailed,
		Method:    "card",
		Status:    status,
		PaymentID: newPaymentID(),
		Timestamp: time.Now().UTC(),
		Card: &CardAudit{
			MaskedNumber: card.MaskedNumber(),
			Brand:        card.Brand,
			Expiry:       card.Expiry(),
		},
	}
}

// resolveManual picks the fixed outcome under manual processing, honoring
// the configured override precedence.
func resolveManual(cfg PaymentConfig, override *models.PaymentOverride) Status {
	manual := cfg.ManualStatus
	if cfg.OverridePolicy == OverrideWins &&
		override != nil && override.CustomProcessing && override.CustomStatus != "" {
		manual = override.CustomStatus
	}
	switch manual {
	case ManualApproved:
		return StatusConfirmed
	case ManualDenied:
		return StatusDeclined
	default:
		// ANALYSIS, and anything unrecognized, means review.
		return StatusPending
	}
}

// simulateSettlement stands in for the external network. In non-live
// environments the recognized test numbers force a decline; every other
// number, and everything in live mode, approves.
func simulateSettlement(number string, live bool) Status {
	if !live {
		for _, prefix := range declinePrefixes {
			if strings.HasPrefix(number, prefix) {
				return StatusDeclined
			}
		}
	}
	return StatusConfirmed
}

func newPaymentID() string {
	return "pay_" + uuid.NewString()
}

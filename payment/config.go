package payment

import (
	"go-checkout/models"
)

// Manual outcome values the admin can pin on the card method.
const (
	ManualApproved = "APPROVED"
	ManualDenied   = "DENIED"
	ManualAnalysis = "ANALYSIS"
)

// OverridePolicy decides whether a per-product custom status beats the
// store-wide manual status.
type OverridePolicy string

const (
	OverrideWins OverridePolicy = "override_wins"
	GlobalWins   OverridePolicy = "global_wins"
)

// PaymentConfig is the fully populated snapshot the pipeline runs on.
// Every field has a definite value; no policy branch ever consults the
// raw settings document.
type PaymentConfig struct {
	Enabled          bool
	CardEnabled      bool
	AltEnabled       bool
	ManualProcessing bool
	ManualStatus     string // ManualApproved, ManualDenied or ManualAnalysis
	OverridePolicy   OverridePolicy
	Live             bool
}

// NormalizeConfig turns the admin settings document into a PaymentConfig,
// applying defaults for every unset field. This is the only place defaults
// live; downstream code can rely on a complete snapshot.
func NormalizeConfig(settings models.PaymentSettings, live bool) PaymentConfig {
	cfg := PaymentConfig{
		Enabled:          true,
		CardEnabled:      true,
		AltEnabled:       true,
		ManualProcessing: false,
		ManualStatus:     ManualAnalysis,
		OverridePolicy:   OverrideWins,
		Live:             live,
	}

	if settings.Enabled != nil {
		cfg.Enabled = *settings.Enabled
	}
	if settings.Card != nil {
		if settings.Card.Enabled != nil {
			cfg.CardEnabled = *settings.Card.Enabled
		}
		if settings.Card.ManualProcessing != nil {
			cfg.ManualProcessing = *settings.Card.ManualProcessing
		}
		switch settings.Card.ManualStatus {
		case ManualApproved, ManualDenied, ManualAnalysis:
			cfg.ManualStatus = settings.Card.ManualStatus
		}
	}
	if settings.Alt != nil && settings.Alt.Enabled != nil {
		cfg.AltEnabled = *settings.Alt.Enabled
	}
	if settings.OverridePolicy == string(GlobalWins) {
		cfg.OverridePolicy = GlobalWins
	}

	// A disabled gateway disables every method.
	if !cfg.Enabled {
		cfg.CardEnabled = false
		cfg.AltEnabled = false
	}

	return cfg
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CardSettings holds the raw card-method configuration as the admin
// screen stores it. Pointer fields distinguish "unset" from "false".
type CardSettings struct {
	Enabled          *bool  `bson:"enabled,omitempty" json:"enabled,omitempty"`
	ManualProcessing *bool  `bson:"manual_processing,omitempty" json:"manual_processing,omitempty"`
	ManualStatus     string `bson:"manual_status,omitempty" json:"manual_status,omitempty"` // "APPROVED", "DENIED" or "ANALYSIS"
}

// AltSettings holds the raw alternate-payment configuration.
type AltSettings struct {
	Enabled *bool `bson:"enabled,omitempty" json:"enabled,omitempty"`
}

// PaymentSettings is the settings document owned by the admin screens.
// The pipeline never reads it directly; payment.NormalizeConfig turns it
// into a fully populated snapshot first.
type PaymentSettings struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Enabled        *bool              `bson:"enabled,omitempty" json:"enabled,omitempty"`
	Card           *CardSettings      `bson:"card,omitempty" json:"card,omitempty"`
	Alt            *AltSettings       `bson:"alt,omitempty" json:"alt,omitempty"`
	OverridePolicy string             `bson:"override_policy,omitempty" json:"override_policy,omitempty"` // "override_wins" or "global_wins"
}

package models

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentOverride carries a product's optional custom payment policy.
// When CustomProcessing is set, the resolver may use CustomStatus instead
// of the store-wide manual status, depending on the configured precedence.
type PaymentOverride struct {
	CustomProcessing bool   `bson:"custom_processing" json:"custom_processing"`
	CustomStatus     string `bson:"custom_status,omitempty" json:"custom_status,omitempty"` // "APPROVED", "DENIED" or "ANALYSIS"
}

// Product represents an item offered on the checkout page
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       decimal.Decimal    `bson:"price" json:"price"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Active      bool               `bson:"active" json:"active"`
	Override    *PaymentOverride   `bson:"payment_override,omitempty" json:"payment_override,omitempty"`
}

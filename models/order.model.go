package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderCard stores the card sub-details kept on a card order.
// Only the masked number is ever persisted.
type OrderCard struct {
	MaskedNumber string `bson:"masked_number" json:"masked_number"`
	Brand        string `bson:"brand" json:"brand"`
	Expiry       string `bson:"expiry" json:"expiry"` // MM/YY
}

// OrderAlt stores the alternate-payment sub-details kept on an alt order.
type OrderAlt struct {
	Payload   string    `bson:"payload" json:"payload"`
	ImageURL  string    `bson:"image_url" json:"image_url"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}

// Order represents a committed checkout attempt.
// Status holds the persisted label vocabulary (e.g. "Paid", "Under Review"),
// not the pipeline's internal status names.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Customer      Customer           `bson:"customer" json:"customer"`
	ProductID     primitive.ObjectID `bson:"product_id" json:"product_id"`
	ProductName   string             `bson:"product_name" json:"product_name"`
	ProductPrice  decimal.Decimal    `bson:"product_price" json:"product_price"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"` // "card" or "alt"
	PaymentID     string             `bson:"payment_id" json:"payment_id"`
	Status        string             `bson:"status" json:"status"`
	Card          *OrderCard         `bson:"card,omitempty" json:"card,omitempty"`
	Alt           *OrderAlt          `bson:"alt,omitempty" json:"alt,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

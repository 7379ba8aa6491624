package models

// Address represents a customer's optional shipping address
type Address struct {
	Street       string `bson:"street" json:"street"`
	Number       string `bson:"number" json:"number"`
	Complement   string `bson:"complement,omitempty" json:"complement,omitempty"`
	Neighborhood string `bson:"neighborhood" json:"neighborhood"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
	PostalCode   string `bson:"postal_code" json:"postal_code"`
}

// Customer represents the buyer data collected for one checkout attempt.
// A fresh customer document is created per attempt; it is never mutated
// once attached to an order.
type Customer struct {
	Name    string   `bson:"name" json:"name"`
	Email   string   `bson:"email" json:"email"`
	TaxID   string   `bson:"tax_id" json:"tax_id"`
	Phone   string   `bson:"phone" json:"phone"`
	Address *Address `bson:"address,omitempty" json:"address,omitempty"`
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a back-office account. Checkout itself is anonymous;
// users exist only to gate the admin screens.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Role     string             `bson:"role" json:"role"` // "admin" or "user"
}

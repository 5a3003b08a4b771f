// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a profile record owned by a User. It is not a login
// principal; many members may reference the same owner.
//
// UserID is not referentially enforced at write time. Phone is not
// unique among members.
//
// JSON field names match the public API ("user", "imageUrl", ...).
type Member struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user"`
	Name   string             `bson:"name" json:"name"`
	Phone  string             `bson:"phone" json:"phone"`

	ImageURL          string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	AdharNumber       string `bson:"adhar_number,omitempty" json:"adharNumber,omitempty"`
	BankAccountNumber string `bson:"bank_account_number,omitempty" json:"bankAccountNumber,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account document. Email is the natural key and is backed by a
// unique index. Role is a free-form string ("admin", "teacher", "student")
// assigned through partial updates.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

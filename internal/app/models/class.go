package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class is a published class listing. The class schema is fixed: the replace
// route narrows writes to a known field subset, so decoding into a struct
// loses nothing the API can produce.
type Class struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title            string             `bson:"title" json:"title"`
	Image            string             `bson:"image" json:"image"`
	TeacherName      string             `bson:"teacher_name" json:"teacher_name"`
	TeacherEmail     string             `bson:"teacher_email" json:"teacher_email"`
	ShortDescription string             `bson:"short_description" json:"short_description"`
	Price            float64            `bson:"price" json:"price"`
	Category         string             `bson:"category" json:"category"`
	Status           string             `bson:"status" json:"status"`
	EnrolledStudents int64              `bson:"enrolled_students" json:"enrolled_students"`
}

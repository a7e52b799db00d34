package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all the repository instances
type Repositories struct {
	ClassRepository          *ClassRepository
	UserRepository           *UserRepository
	PaymentRepository        *PaymentRepository
	TeacherRequestRepository *TeacherRequestRepository
	FeedbackRepository       *FeedbackRepository
	AssignmentRepository     *AssignmentRepository
	SubmissionRepository     *SubmissionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		ClassRepository:          NewClassRepository(db),
		UserRepository:           NewUserRepository(db),
		PaymentRepository:        NewPaymentRepository(db),
		TeacherRequestRepository: NewTeacherRequestRepository(db),
		FeedbackRepository:       NewFeedbackRepository(db),
		AssignmentRepository:     NewAssignmentRepository(db),
		SubmissionRepository:     NewSubmissionRepository(db),
	}
}

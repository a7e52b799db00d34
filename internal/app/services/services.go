package services

import (
	"github.com/quillacademy/api/internal/app/repositories"
	"github.com/quillacademy/api/internal/pkg/payments"
)

// Services holds all the service instances
type Services struct {
	ClassService          ClassService
	UserService           UserService
	PaymentService        PaymentService
	TeacherRequestService TeacherRequestService
	FeedbackService       FeedbackService
	AssignmentService     AssignmentService
	StatsService          StatsService
}

// NewServices wires all services against the repository container and the
// payment gateway.
func NewServices(repos *repositories.Repositories, gateway payments.IntentCreator) *Services {
	return &Services{
		ClassService:          NewClassService(repos.ClassRepository),
		UserService:           NewUserService(repos.UserRepository),
		PaymentService:        NewPaymentService(repos.PaymentRepository, repos.ClassRepository, gateway),
		TeacherRequestService: NewTeacherRequestService(repos.TeacherRequestRepository),
		FeedbackService:       NewFeedbackService(repos.FeedbackRepository),
		AssignmentService:     NewAssignmentService(repos.AssignmentRepository, repos.SubmissionRepository),
		StatsService: NewStatsService(
			repos.UserRepository,
			repos.ClassRepository,
			repos.PaymentRepository,
			repos.AssignmentRepository,
		),
	}
}

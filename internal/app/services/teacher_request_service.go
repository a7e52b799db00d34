package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/models/dto"
)

// TeacherRequestService defines the interface for teacher-request operations
type TeacherRequestService interface {
	GetAllRequests(ctx context.Context) ([]bson.M, error)
	CreateRequest(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	GetRequestStatus(ctx context.Context, email string) (bson.M, error)
	UpdateRequestStatus(ctx context.Context, email, status string) (*dto.UpdateResult, error)
}

// teacherRequestRepository is the store surface the service depends on
type teacherRequestRepository interface {
	FindAll(ctx context.Context) ([]bson.M, error)
	Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	FindStatusByEmail(ctx context.Context, email string) (bson.M, error)
	UpdateStatusByEmail(ctx context.Context, email, status string) (*dto.UpdateResult, error)
}

// teacherRequestServiceImpl implements the TeacherRequestService interface
type teacherRequestServiceImpl struct {
	requestRepo teacherRequestRepository
}

// NewTeacherRequestService creates a new teacher request service instance
func NewTeacherRequestService(requestRepo teacherRequestRepository) TeacherRequestService {
	return &teacherRequestServiceImpl{requestRepo: requestRepo}
}

// GetAllRequests retrieves all teacher requests
func (s *teacherRequestServiceImpl) GetAllRequests(ctx context.Context) ([]bson.M, error) {
	requests, err := s.requestRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher requests: %w", err)
	}
	return requests, nil
}

// CreateRequest inserts a teacher request verbatim
func (s *teacherRequestServiceImpl) CreateRequest(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := s.requestRepo.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error creating teacher request: %w", err)
	}
	return result, nil
}

// GetRequestStatus projects the status of a request, or nil when absent
func (s *teacherRequestServiceImpl) GetRequestStatus(ctx context.Context, email string) (bson.M, error) {
	status, err := s.requestRepo.FindStatusByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher request status: %w", err)
	}
	return status, nil
}

// UpdateRequestStatus sets the status of a request in place
func (s *teacherRequestServiceImpl) UpdateRequestStatus(ctx context.Context, email, status string) (*dto.UpdateResult, error) {
	result, err := s.requestRepo.UpdateStatusByEmail(ctx, email, status)
	if err != nil {
		return nil, fmt.Errorf("error updating teacher request status: %w", err)
	}
	return result, nil
}

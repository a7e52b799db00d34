package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/apperrors"
)

// submitDateLayout is the calendar-date format submissions carry in their
// submitDate field.
const submitDateLayout = "2006-01-02"

// AssignmentService defines the interface for assignment and submission operations
type AssignmentService interface {
	CreateAssignment(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	GetAssignmentsByClass(ctx context.Context, classID string) ([]bson.M, error)
	CountAssignmentsByClass(ctx context.Context, classID string) (*dto.CountResponse, error)
	CreateSubmission(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	CountSubmissionsToday(ctx context.Context) (*dto.CountResponse, error)
}

// assignmentRepository is the store surface for assignments
type assignmentRepository interface {
	Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	FindByClassID(ctx context.Context, classID string) ([]bson.M, error)
	CountByClassID(ctx context.Context, classID string) (int64, error)
}

// submissionRepository is the store surface for submissions
type submissionRepository interface {
	Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	CountBySubmitDate(ctx context.Context, date string) (int64, error)
}

// assignmentServiceImpl implements the AssignmentService interface
type assignmentServiceImpl struct {
	assignmentRepo assignmentRepository
	submissionRepo submissionRepository
	now            func() time.Time
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(assignmentRepo assignmentRepository, submissionRepo submissionRepository) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		now:            time.Now,
	}
}

// CreateAssignment inserts an assignment verbatim
func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := s.assignmentRepo.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error creating assignment: %w", err)
	}
	return result, nil
}

// GetAssignmentsByClass retrieves the assignments of a class
func (s *assignmentServiceImpl) GetAssignmentsByClass(ctx context.Context, classID string) ([]bson.M, error) {
	assignments, err := s.assignmentRepo.FindByClassID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving assignments: %w", err)
	}
	return assignments, nil
}

// CountAssignmentsByClass counts the assignments of a class
func (s *assignmentServiceImpl) CountAssignmentsByClass(ctx context.Context, classID string) (*dto.CountResponse, error) {
	count, err := s.assignmentRepo.CountByClassID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("error counting assignments: %w", err)
	}
	return &dto.CountResponse{Count: count}, nil
}

// CreateSubmission inserts a submission. At most one submission exists per
// (student_email, assignmentId) pair; the store's unique index signals the
// duplicate.
func (s *assignmentServiceImpl) CreateSubmission(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := s.submissionRepo.Insert(ctx, doc)
	if err != nil {
		if errors.Is(err, apperrors.ErrSubmissionAlreadyExists) {
			return nil, apperrors.ErrSubmissionAlreadyExists
		}
		return nil, fmt.Errorf("error creating submission: %w", err)
	}
	return result, nil
}

// CountSubmissionsToday counts submissions whose submitDate equals the
// current date.
func (s *assignmentServiceImpl) CountSubmissionsToday(ctx context.Context) (*dto.CountResponse, error) {
	today := s.now().Format(submitDateLayout)
	count, err := s.submissionRepo.CountBySubmitDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("error counting submissions: %w", err)
	}
	return &dto.CountResponse{Count: count}, nil
}

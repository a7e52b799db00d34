package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/models/dto"
)

// FeedbackService defines the interface for feedback operations
type FeedbackService interface {
	GetAllFeedback(ctx context.Context) ([]bson.M, error)
	CreateFeedback(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
}

// feedbackRepository is the store surface the feedback service depends on
type feedbackRepository interface {
	FindAll(ctx context.Context) ([]bson.M, error)
	Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
}

// feedbackServiceImpl implements the FeedbackService interface
type feedbackServiceImpl struct {
	feedbackRepo feedbackRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo feedbackRepository) FeedbackService {
	return &feedbackServiceImpl{feedbackRepo: feedbackRepo}
}

// GetAllFeedback retrieves all feedback documents
func (s *feedbackServiceImpl) GetAllFeedback(ctx context.Context) ([]bson.M, error) {
	feedback, err := s.feedbackRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	return feedback, nil
}

// CreateFeedback appends a feedback document
func (s *feedbackServiceImpl) CreateFeedback(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := s.feedbackRepo.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error creating feedback: %w", err)
	}
	return result, nil
}

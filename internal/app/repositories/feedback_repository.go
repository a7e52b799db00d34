package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/logger"
)

// FeedbackRepository handles feedback collection operations. Feedback is
// append-only; there is no update or delete.
type FeedbackRepository struct {
	collection *mongo.Collection
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{
		collection: db.Collection(models.CollectionFeedback),
	}
}

// FindAll retrieves all feedback documents
func (r *FeedbackRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying feedback")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}

	feedback := []bson.M{}
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("error decoding feedback: %w", err)
	}
	return feedback, nil
}

// Insert stores a feedback document verbatim
func (r *FeedbackRepository) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting feedback")
		return nil, fmt.Errorf("error inserting feedback: %w", err)
	}
	return &dto.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

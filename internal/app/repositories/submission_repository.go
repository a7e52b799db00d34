package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/apperrors"
	"github.com/quillacademy/api/internal/pkg/logger"
)

// SubmissionRepository handles assignment-submission collection operations
type SubmissionRepository struct {
	collection *mongo.Collection
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{
		collection: db.Collection(models.CollectionSubmissions),
	}
}

// Insert stores a submission document verbatim. The unique index on
// (student_email, assignmentId) is the authoritative duplicate signal, so two
// concurrent submissions for the same pair cannot both land.
func (r *SubmissionRepository) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrSubmissionAlreadyExists
		}
		logger.Error().Err(err).Msg("Error inserting submission")
		return nil, fmt.Errorf("error inserting submission: %w", err)
	}
	return &dto.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// CountBySubmitDate returns the number of submissions whose submitDate equals
// the given calendar date (stored as YYYY-MM-DD).
func (r *SubmissionRepository) CountBySubmitDate(ctx context.Context, date string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"submitDate": date})
	if err != nil {
		logger.Error().Err(err).Str("submitDate", date).Msg("Error counting submissions by date")
		return 0, fmt.Errorf("error counting submissions by date: %w", err)
	}
	return count, nil
}

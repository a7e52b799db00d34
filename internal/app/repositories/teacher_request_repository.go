package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/logger"
)

// TeacherRequestRepository handles teacher-request collection operations.
// One request is tracked per email; its status is updated in place.
type TeacherRequestRepository struct {
	collection *mongo.Collection
}

// NewTeacherRequestRepository creates a new TeacherRequestRepository
func NewTeacherRequestRepository(db *mongo.Database) *TeacherRequestRepository {
	return &TeacherRequestRepository{
		collection: db.Collection(models.CollectionTeacherRequests),
	}
}

// FindAll retrieves all teacher requests
func (r *TeacherRequestRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying teacher requests")
		return nil, fmt.Errorf("error querying teacher requests: %w", err)
	}

	requests := []bson.M{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("error decoding teacher requests: %w", err)
	}
	return requests, nil
}

// Insert stores a teacher request verbatim
func (r *TeacherRequestRepository) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting teacher request")
		return nil, fmt.Errorf("error inserting teacher request: %w", err)
	}
	return &dto.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// FindStatusByEmail projects the status of a teacher request, or nil when absent
func (r *TeacherRequestRepository) FindStatusByEmail(ctx context.Context, email string) (bson.M, error) {
	opts := options.FindOne().SetProjection(bson.M{"status": 1, "_id": 0})

	var result bson.M
	err := r.collection.FindOne(ctx, bson.M{"email": email}, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error().Err(err).Str("email", email).Msg("Error fetching teacher request status")
		return nil, fmt.Errorf("error fetching teacher request status: %w", err)
	}
	return result, nil
}

// UpdateStatusByEmail sets the status of a teacher request in place
func (r *TeacherRequestRepository) UpdateStatusByEmail(ctx context.Context, email, status string) (*dto.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error updating teacher request status")
		return nil, fmt.Errorf("error updating teacher request status: %w", err)
	}
	return newUpdateResult(result), nil
}

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

// AssignmentRepository handles assignment collection operations
type AssignmentRepository struct {
	collection *mongo.Collection
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{
		collection: db.Collection(models.CollectionAssignments),
	}
}

// Insert stores an assignment document verbatim
func (r *AssignmentRepository) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting assignment")
		return nil, fmt.Errorf("error inserting assignment: %w", err)
	}
	return &dto.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// FindByClassID retrieves the assignments of a class. Class references in
// assignment documents are stored as the hex string the caller supplied.
func (r *AssignmentRepository) FindByClassID(ctx context.Context, classID string) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"classId": classID})
	if err != nil {
		logger.Error().Err(err).Str("classID", classID).Msg("Error querying assignments")
		return nil, fmt.Errorf("error querying assignments: %w", err)
	}

	assignments := []bson.M{}
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("error decoding assignments: %w", err)
	}
	return assignments, nil
}

// CountByClassID returns the number of assignments for a class
func (r *AssignmentRepository) CountByClassID(ctx context.Context, classID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"classId": classID})
	if err != nil {
		logger.Error().Err(err).Str("classID", classID).Msg("Error counting assignments for class")
		return 0, fmt.Errorf("error counting assignments for class: %w", err)
	}
	return count, nil
}

// Count returns the number of assignment documents
func (r *AssignmentRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error counting assignments")
		return 0, fmt.Errorf("error counting assignments: %w", err)
	}
	return count, nil
}

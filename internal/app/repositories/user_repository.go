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
	"github.com/quillacademy/api/internal/pkg/apperrors"
	"github.com/quillacademy/api/internal/pkg/logger"
)

// UserRepository handles user collection operations
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection(models.CollectionUsers),
	}
}

// FindAll retrieves all users
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying users")
		return nil, fmt.Errorf("error querying users: %w", err)
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		logger.Error().Err(err).Msg("Error decoding user documents")
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return users, nil
}

// FindRoleByEmail projects the role of a user, or nil when absent. Clients
// only branch on the role field, so nothing else is fetched.
func (r *UserRepository) FindRoleByEmail(ctx context.Context, email string) (bson.M, error) {
	opts := options.FindOne().SetProjection(bson.M{"role": 1, "_id": 0})

	var result bson.M
	err := r.collection.FindOne(ctx, bson.M{"email": email}, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error().Err(err).Str("email", email).Msg("Error fetching user role")
		return nil, fmt.Errorf("error fetching user role: %w", err)
	}
	return result, nil
}

// Insert stores a new user document. The unique index on email is the
// authoritative duplicate signal.
func (r *UserRepository) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		logger.Error().Err(err).Msg("Error inserting user")
		return nil, fmt.Errorf("error inserting user: %w", err)
	}
	return &dto.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// UpdateByEmail applies a caller-supplied partial update via $set
func (r *UserRepository) UpdateByEmail(ctx context.Context, email string, fields bson.M) (*dto.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error updating user")
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return newUpdateResult(result), nil
}

// Count returns the number of user documents
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error counting users")
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

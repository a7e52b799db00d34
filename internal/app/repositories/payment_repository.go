package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/logger"
)

// PaymentRepository handles payment collection operations. Payment documents
// double as enrollment records: a student is enrolled in a class iff a
// payment references that classId and email.
type PaymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection(models.CollectionPayments),
	}
}

// Insert stores a payment document verbatim
func (r *PaymentRepository) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting payment")
		return nil, fmt.Errorf("error inserting payment: %w", err)
	}
	return &dto.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// FindClassIDsByEmail projects the classId of every payment made by a student
func (r *PaymentRepository) FindClassIDsByEmail(ctx context.Context, email string) ([]bson.M, error) {
	opts := options.Find().SetProjection(bson.M{"classId": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error querying payments by email")
		return nil, fmt.Errorf("error querying payments by email: %w", err)
	}

	payments := []bson.M{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("error decoding payments: %w", err)
	}
	return payments, nil
}

// Count returns the number of payment documents
func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error counting payments")
		return 0, fmt.Errorf("error counting payments: %w", err)
	}
	return count, nil
}

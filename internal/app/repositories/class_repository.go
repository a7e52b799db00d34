package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/logger"
)

// ClassRepository handles class collection operations
type ClassRepository struct {
	collection *mongo.Collection
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{
		collection: db.Collection(models.CollectionClasses),
	}
}

// FindAll retrieves all classes
func (r *ClassRepository) FindAll(ctx context.Context) ([]models.Class, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying classes")
		return nil, fmt.Errorf("error querying classes: %w", err)
	}

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		logger.Error().Err(err).Msg("Error decoding class documents")
		return nil, fmt.Errorf("error decoding classes: %w", err)
	}
	return classes, nil
}

// FindByID retrieves a single class document, or nil when absent.
func (r *ClassRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var class models.Class
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Misses are part of the contract: the caller receives null.
			return nil, nil
		}
		logger.Error().Err(err).Str("classID", id.Hex()).Msg("Error fetching class")
		return nil, fmt.Errorf("error fetching class: %w", err)
	}
	return &class, nil
}

// FindByCategory retrieves classes matching a category
func (r *ClassRepository) FindByCategory(ctx context.Context, category string) ([]models.Class, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category": category})
	if err != nil {
		logger.Error().Err(err).Str("category", category).Msg("Error querying classes by category")
		return nil, fmt.Errorf("error querying classes by category: %w", err)
	}

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("error decoding classes: %w", err)
	}
	return classes, nil
}

// FindByTeacherEmail retrieves classes published by a teacher
func (r *ClassRepository) FindByTeacherEmail(ctx context.Context, email string) ([]models.Class, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"teacher_email": email})
	if err != nil {
		logger.Error().Err(err).Str("teacherEmail", email).Msg("Error querying classes by teacher")
		return nil, fmt.Errorf("error querying classes by teacher: %w", err)
	}

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("error decoding classes: %w", err)
	}
	return classes, nil
}

// FindAllByEnrollmentDesc retrieves every class sorted by enrolled_students
// descending. Truncation to the recommended-set size happens in the service,
// not in the store.
func (r *ClassRepository) FindAllByEnrollmentDesc(ctx context.Context) ([]models.Class, error) {
	opts := options.Find().SetSort(bson.D{{Key: "enrolled_students", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying classes by enrollment")
		return nil, fmt.Errorf("error querying classes by enrollment: %w", err)
	}

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("error decoding classes: %w", err)
	}
	return classes, nil
}

// FindByIDs retrieves the classes whose _id is in the given set
func (r *ClassRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Class, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logger.Error().Err(err).Int("idCount", len(ids)).Msg("Error querying classes by id set")
		return nil, fmt.Errorf("error querying classes by id set: %w", err)
	}

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("error decoding classes: %w", err)
	}
	return classes, nil
}

// FindEnrollment projects the enrolled_students field of a single class.
func (r *ClassRepository) FindEnrollment(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	opts := options.FindOne().SetProjection(bson.M{"enrolled_students": 1, "_id": 0})

	var result bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error().Err(err).Str("classID", id.Hex()).Msg("Error fetching class enrollment")
		return nil, fmt.Errorf("error fetching class enrollment: %w", err)
	}
	return result, nil
}

// Insert stores a new class document verbatim
func (r *ClassRepository) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting class")
		return nil, fmt.Errorf("error inserting class: %w", err)
	}
	return &dto.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// Replace writes the fixed replaceable field subset with upsert enabled.
// Fields outside the subset are left to the caller-facing DTO to drop.
func (r *ClassRepository) Replace(ctx context.Context, id primitive.ObjectID, fields dto.ReplaceClassRequest) (*dto.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"title":             fields.Title,
		"image":             fields.Image,
		"teacher_name":      fields.TeacherName,
		"teacher_email":     fields.TeacherEmail,
		"short_description": fields.ShortDescription,
		"price":             fields.Price,
	}}
	opts := options.Update().SetUpsert(true)

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update, opts)
	if err != nil {
		logger.Error().Err(err).Str("classID", id.Hex()).Msg("Error replacing class")
		return nil, fmt.Errorf("error replacing class: %w", err)
	}
	return newUpdateResult(result), nil
}

// UpdateFields applies a caller-supplied partial update via $set
func (r *ClassRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*dto.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		logger.Error().Err(err).Str("classID", id.Hex()).Msg("Error updating class fields")
		return nil, fmt.Errorf("error updating class fields: %w", err)
	}
	return newUpdateResult(result), nil
}

// UpdateStatus sets the status field of a class
func (r *ClassRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*dto.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		logger.Error().Err(err).Str("classID", id.Hex()).Msg("Error updating class status")
		return nil, fmt.Errorf("error updating class status: %w", err)
	}
	return newUpdateResult(result), nil
}

// Delete removes a class by id. There is no cascade: payments, assignments
// and submissions referencing the class stay behind.
func (r *ClassRepository) Delete(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("classID", id.Hex()).Msg("Error deleting class")
		return nil, fmt.Errorf("error deleting class: %w", err)
	}
	return &dto.DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

// Count returns the number of class documents
func (r *ClassRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error counting classes")
		return 0, fmt.Errorf("error counting classes: %w", err)
	}
	return count, nil
}

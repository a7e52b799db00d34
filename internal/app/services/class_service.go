package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
)

// recommendedClassCount is the size of the recommended set. The full sorted
// collection is fetched and truncated here, matching the legacy behavior.
const recommendedClassCount = 6

// ClassService defines the interface for class-related operations
type ClassService interface {
	GetAllClasses(ctx context.Context) ([]models.Class, error)
	GetClassByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	GetClassesByCategory(ctx context.Context, category string) ([]models.Class, error)
	GetClassesByTeacher(ctx context.Context, email string) ([]models.Class, error)
	GetRecommendedClasses(ctx context.Context) ([]models.Class, error)
	GetEnrollment(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	CreateClass(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	ReplaceClass(ctx context.Context, id primitive.ObjectID, fields dto.ReplaceClassRequest) (*dto.UpdateResult, error)
	UpdateClassFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*dto.UpdateResult, error)
	UpdateClassStatus(ctx context.Context, id primitive.ObjectID, status string) (*dto.UpdateResult, error)
	DeleteClass(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error)
}

// classRepository is the store surface the class service depends on
type classRepository interface {
	FindAll(ctx context.Context) ([]models.Class, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	FindByCategory(ctx context.Context, category string) ([]models.Class, error)
	FindByTeacherEmail(ctx context.Context, email string) ([]models.Class, error)
	FindAllByEnrollmentDesc(ctx context.Context) ([]models.Class, error)
	FindEnrollment(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	Replace(ctx context.Context, id primitive.ObjectID, fields dto.ReplaceClassRequest) (*dto.UpdateResult, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*dto.UpdateResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*dto.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error)
}

// classServiceImpl implements the ClassService interface
type classServiceImpl struct {
	classRepo classRepository
}

// NewClassService creates a new class service instance
func NewClassService(classRepo classRepository) ClassService {
	return &classServiceImpl{classRepo: classRepo}
}

// GetAllClasses retrieves all classes
func (s *classServiceImpl) GetAllClasses(ctx context.Context) ([]models.Class, error) {
	classes, err := s.classRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}

// GetClassByID retrieves a single class, or nil when absent
func (s *classServiceImpl) GetClassByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	class, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}
	return class, nil
}

// GetClassesByCategory retrieves classes matching a category
func (s *classServiceImpl) GetClassesByCategory(ctx context.Context, category string) ([]models.Class, error) {
	classes, err := s.classRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes by category: %w", err)
	}
	return classes, nil
}

// GetClassesByTeacher retrieves classes published by a teacher
func (s *classServiceImpl) GetClassesByTeacher(ctx context.Context, email string) ([]models.Class, error) {
	classes, err := s.classRepo.FindByTeacherEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes by teacher: %w", err)
	}
	return classes, nil
}

// GetRecommendedClasses returns the most-enrolled classes, truncated to the
// recommended set size after the full sort.
func (s *classServiceImpl) GetRecommendedClasses(ctx context.Context) ([]models.Class, error) {
	classes, err := s.classRepo.FindAllByEnrollmentDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recommended classes: %w", err)
	}
	if len(classes) > recommendedClassCount {
		classes = classes[:recommendedClassCount]
	}
	return classes, nil
}

// GetEnrollment projects the enrollment count of a class
func (s *classServiceImpl) GetEnrollment(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	enrollment, err := s.classRepo.FindEnrollment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class enrollment: %w", err)
	}
	return enrollment, nil
}

// CreateClass inserts a new class document
func (s *classServiceImpl) CreateClass(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := s.classRepo.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error creating class: %w", err)
	}
	return result, nil
}

// ReplaceClass writes the fixed replaceable field subset, upserting if needed
func (s *classServiceImpl) ReplaceClass(ctx context.Context, id primitive.ObjectID, fields dto.ReplaceClassRequest) (*dto.UpdateResult, error) {
	result, err := s.classRepo.Replace(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("error replacing class: %w", err)
	}
	return result, nil
}

// UpdateClassFields applies a caller-supplied partial update
func (s *classServiceImpl) UpdateClassFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*dto.UpdateResult, error) {
	result, err := s.classRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("error updating class: %w", err)
	}
	return result, nil
}

// UpdateClassStatus sets the status of a class
func (s *classServiceImpl) UpdateClassStatus(ctx context.Context, id primitive.ObjectID, status string) (*dto.UpdateResult, error) {
	result, err := s.classRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("error updating class status: %w", err)
	}
	return result, nil
}

// DeleteClass removes a class by id
func (s *classServiceImpl) DeleteClass(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error) {
	result, err := s.classRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting class: %w", err)
	}
	return result, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
)

// fakeClassRepo implements classRepository with function fields so each test
// stubs only what it needs.
type fakeClassRepo struct {
	findAll                 func(ctx context.Context) ([]models.Class, error)
	findByID                func(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	findByCategory          func(ctx context.Context, category string) ([]models.Class, error)
	findByTeacherEmail      func(ctx context.Context, email string) ([]models.Class, error)
	findAllByEnrollmentDesc func(ctx context.Context) ([]models.Class, error)
	findEnrollment          func(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	insert                  func(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	replace                 func(ctx context.Context, id primitive.ObjectID, fields dto.ReplaceClassRequest) (*dto.UpdateResult, error)
	updateFields            func(ctx context.Context, id primitive.ObjectID, fields bson.M) (*dto.UpdateResult, error)
	updateStatus            func(ctx context.Context, id primitive.ObjectID, status string) (*dto.UpdateResult, error)
	delete                  func(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error)
}

func (f *fakeClassRepo) FindAll(ctx context.Context) ([]models.Class, error) {
	return f.findAll(ctx)
}

func (f *fakeClassRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	return f.findByID(ctx, id)
}

func (f *fakeClassRepo) FindByCategory(ctx context.Context, category string) ([]models.Class, error) {
	return f.findByCategory(ctx, category)
}

func (f *fakeClassRepo) FindByTeacherEmail(ctx context.Context, email string) ([]models.Class, error) {
	return f.findByTeacherEmail(ctx, email)
}

func (f *fakeClassRepo) FindAllByEnrollmentDesc(ctx context.Context) ([]models.Class, error) {
	return f.findAllByEnrollmentDesc(ctx)
}

func (f *fakeClassRepo) FindEnrollment(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return f.findEnrollment(ctx, id)
}

func (f *fakeClassRepo) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	return f.insert(ctx, doc)
}

func (f *fakeClassRepo) Replace(ctx context.Context, id primitive.ObjectID, fields dto.ReplaceClassRequest) (*dto.UpdateResult, error) {
	return f.replace(ctx, id, fields)
}

func (f *fakeClassRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*dto.UpdateResult, error) {
	return f.updateFields(ctx, id, fields)
}

func (f *fakeClassRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*dto.UpdateResult, error) {
	return f.updateStatus(ctx, id, status)
}

func (f *fakeClassRepo) Delete(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error) {
	return f.delete(ctx, id)
}

func makeClasses(n int) []models.Class {
	classes := make([]models.Class, n)
	for i := range classes {
		classes[i] = models.Class{
			ID:               primitive.NewObjectID(),
			Title:            fmt.Sprintf("Class %d", i),
			EnrolledStudents: int64(n - i),
		}
	}
	return classes
}

func TestGetRecommendedClassesTruncates(t *testing.T) {
	sorted := makeClasses(10)
	repo := &fakeClassRepo{
		findAllByEnrollmentDesc: func(ctx context.Context) ([]models.Class, error) {
			return sorted, nil
		},
	}
	svc := NewClassService(repo)

	classes, err := svc.GetRecommendedClasses(context.Background())
	if err != nil {
		t.Fatalf("GetRecommendedClasses returned error: %v", err)
	}
	if len(classes) != 6 {
		t.Fatalf("got %d classes, want 6", len(classes))
	}
	// Order must be the store's sort order, untouched
	for i, class := range classes {
		if class.ID != sorted[i].ID {
			t.Errorf("class %d = %s, want %s", i, class.ID.Hex(), sorted[i].ID.Hex())
		}
	}
}

func TestGetRecommendedClassesFewerThanSix(t *testing.T) {
	repo := &fakeClassRepo{
		findAllByEnrollmentDesc: func(ctx context.Context) ([]models.Class, error) {
			return makeClasses(3), nil
		},
	}
	svc := NewClassService(repo)

	classes, err := svc.GetRecommendedClasses(context.Background())
	if err != nil {
		t.Fatalf("GetRecommendedClasses returned error: %v", err)
	}
	if len(classes) != 3 {
		t.Errorf("got %d classes, want all 3", len(classes))
	}
}

func TestGetClassByIDMissReturnsNil(t *testing.T) {
	repo := &fakeClassRepo{
		findByID: func(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
			return nil, nil
		},
	}
	svc := NewClassService(repo)

	class, err := svc.GetClassByID(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("GetClassByID returned error: %v", err)
	}
	if class != nil {
		t.Errorf("got %+v, want nil for a miss", class)
	}
}

func TestGetAllClassesWrapsError(t *testing.T) {
	storeErr := errors.New("store down")
	repo := &fakeClassRepo{
		findAll: func(ctx context.Context) ([]models.Class, error) {
			return nil, storeErr
		},
	}
	svc := NewClassService(repo)

	_, err := svc.GetAllClasses(context.Background())
	if !errors.Is(err, storeErr) {
		t.Errorf("error chain does not contain the store error: %v", err)
	}
}

func TestUpdateClassStatusPassesThrough(t *testing.T) {
	var gotStatus string
	repo := &fakeClassRepo{
		updateStatus: func(ctx context.Context, id primitive.ObjectID, status string) (*dto.UpdateResult, error) {
			gotStatus = status
			return &dto.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	svc := NewClassService(repo)

	result, err := svc.UpdateClassStatus(context.Background(), primitive.NewObjectID(), "approved")
	if err != nil {
		t.Fatalf("UpdateClassStatus returned error: %v", err)
	}
	if gotStatus != "approved" {
		t.Errorf("status passed to repo = %q, want approved", gotStatus)
	}
	if result.MatchedCount != 1 || result.ModifiedCount != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

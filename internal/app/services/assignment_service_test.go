package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/apperrors"
)

type fakeAssignmentRepo struct {
	insert         func(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	findByClassID  func(ctx context.Context, classID string) ([]bson.M, error)
	countByClassID func(ctx context.Context, classID string) (int64, error)
}

func (f *fakeAssignmentRepo) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	return f.insert(ctx, doc)
}

func (f *fakeAssignmentRepo) FindByClassID(ctx context.Context, classID string) ([]bson.M, error) {
	return f.findByClassID(ctx, classID)
}

func (f *fakeAssignmentRepo) CountByClassID(ctx context.Context, classID string) (int64, error) {
	return f.countByClassID(ctx, classID)
}

type fakeSubmissionRepo struct {
	insert            func(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	countBySubmitDate func(ctx context.Context, date string) (int64, error)
}

func (f *fakeSubmissionRepo) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	return f.insert(ctx, doc)
}

func (f *fakeSubmissionRepo) CountBySubmitDate(ctx context.Context, date string) (int64, error) {
	return f.countBySubmitDate(ctx, date)
}

func TestCreateSubmissionDuplicateSentinel(t *testing.T) {
	submissionRepo := &fakeSubmissionRepo{
		insert: func(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
			return nil, apperrors.ErrSubmissionAlreadyExists
		},
	}
	svc := NewAssignmentService(&fakeAssignmentRepo{}, submissionRepo)

	_, err := svc.CreateSubmission(context.Background(), bson.M{"assignmentId": "abc"})
	if !errors.Is(err, apperrors.ErrSubmissionAlreadyExists) {
		t.Errorf("got %v, want ErrSubmissionAlreadyExists unwrapped", err)
	}
}

func TestCountSubmissionsTodayUsesCalendarDate(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	var gotDate string
	submissionRepo := &fakeSubmissionRepo{
		countBySubmitDate: func(ctx context.Context, date string) (int64, error) {
			gotDate = date
			return 7, nil
		},
	}
	svc := &assignmentServiceImpl{
		assignmentRepo: &fakeAssignmentRepo{},
		submissionRepo: submissionRepo,
		now:            func() time.Time { return fixed },
	}

	count, err := svc.CountSubmissionsToday(context.Background())
	if err != nil {
		t.Fatalf("CountSubmissionsToday returned error: %v", err)
	}
	if gotDate != "2026-03-14" {
		t.Errorf("queried date = %q, want 2026-03-14", gotDate)
	}
	if count.Count != 7 {
		t.Errorf("count = %d, want 7", count.Count)
	}
}

func TestCountAssignmentsByClass(t *testing.T) {
	assignmentRepo := &fakeAssignmentRepo{
		countByClassID: func(ctx context.Context, classID string) (int64, error) {
			if classID != "65a1b2c3d4e5f60718293a4b" {
				t.Errorf("classID passed to repo = %q", classID)
			}
			return 4, nil
		},
	}
	svc := NewAssignmentService(assignmentRepo, &fakeSubmissionRepo{})

	count, err := svc.CountAssignmentsByClass(context.Background(), "65a1b2c3d4e5f60718293a4b")
	if err != nil {
		t.Fatalf("CountAssignmentsByClass returned error: %v", err)
	}
	if count.Count != 4 {
		t.Errorf("count = %d, want 4", count.Count)
	}
}

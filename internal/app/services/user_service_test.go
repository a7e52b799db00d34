package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/apperrors"
)

type fakeUserRepo struct {
	findAll         func(ctx context.Context) ([]models.User, error)
	findRoleByEmail func(ctx context.Context, email string) (bson.M, error)
	insert          func(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	updateByEmail   func(ctx context.Context, email string, fields bson.M) (*dto.UpdateResult, error)
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	return f.findAll(ctx)
}

func (f *fakeUserRepo) FindRoleByEmail(ctx context.Context, email string) (bson.M, error) {
	return f.findRoleByEmail(ctx, email)
}

func (f *fakeUserRepo) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	return f.insert(ctx, doc)
}

func (f *fakeUserRepo) UpdateByEmail(ctx context.Context, email string, fields bson.M) (*dto.UpdateResult, error) {
	return f.updateByEmail(ctx, email, fields)
}

func TestCreateUserDuplicateSentinel(t *testing.T) {
	repo := &fakeUserRepo{
		insert: func(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
			return nil, apperrors.ErrUserAlreadyExists
		},
	}
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), bson.M{"email": "dup@example.com"})
	if !errors.Is(err, apperrors.ErrUserAlreadyExists) {
		t.Errorf("got %v, want ErrUserAlreadyExists unwrapped", err)
	}
}

func TestGetUserRoleMissReturnsNil(t *testing.T) {
	repo := &fakeUserRepo{
		findRoleByEmail: func(ctx context.Context, email string) (bson.M, error) {
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	role, err := svc.GetUserRole(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("GetUserRole returned error: %v", err)
	}
	if role != nil {
		t.Errorf("got %v, want nil for a miss", role)
	}
}

func TestUpdateUserByEmailPassesFields(t *testing.T) {
	var gotEmail string
	var gotFields bson.M
	repo := &fakeUserRepo{
		updateByEmail: func(ctx context.Context, email string, fields bson.M) (*dto.UpdateResult, error) {
			gotEmail = email
			gotFields = fields
			return &dto.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	svc := NewUserService(repo)

	result, err := svc.UpdateUserByEmail(context.Background(), "a@example.com", bson.M{"photo": "new.png"})
	if err != nil {
		t.Fatalf("UpdateUserByEmail returned error: %v", err)
	}
	if gotEmail != "a@example.com" {
		t.Errorf("email passed to repo = %q", gotEmail)
	}
	if gotFields["photo"] != "new.png" {
		t.Errorf("fields passed to repo = %v", gotFields)
	}
	if !result.Acknowledged {
		t.Error("result not acknowledged")
	}
}

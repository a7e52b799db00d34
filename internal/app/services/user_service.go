package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/apperrors"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserRole(ctx context.Context, email string) (bson.M, error)
	CreateUser(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	UpdateUserByEmail(ctx context.Context, email string, fields bson.M) (*dto.UpdateResult, error)
}

// userRepository is the store surface the user service depends on
type userRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindRoleByEmail(ctx context.Context, email string) (bson.M, error)
	Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	UpdateByEmail(ctx context.Context, email string, fields bson.M) (*dto.UpdateResult, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo userRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo userRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// GetAllUsers retrieves all users
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// GetUserRole retrieves the role projection of a user, or nil when absent
func (s *userServiceImpl) GetUserRole(ctx context.Context, email string) (bson.M, error) {
	role, err := s.userRepo.FindRoleByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user role: %w", err)
	}
	return role, nil
}

// CreateUser inserts a new user. Email uniqueness is enforced by the store;
// a duplicate surfaces as apperrors.ErrUserAlreadyExists.
func (s *userServiceImpl) CreateUser(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := s.userRepo.Insert(ctx, doc)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return result, nil
}

// UpdateUserByEmail applies a caller-supplied partial update
func (s *userServiceImpl) UpdateUserByEmail(ctx context.Context, email string, fields bson.M) (*dto.UpdateResult, error) {
	result, err := s.userRepo.UpdateByEmail(ctx, email, fields)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return result, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/quillacademy/api/internal/app/models/dto"
)

// StatsService aggregates the dashboard counts
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

// collectionCounter counts the documents of one collection
type collectionCounter interface {
	Count(ctx context.Context) (int64, error)
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	users       collectionCounter
	classes     collectionCounter
	payments    collectionCounter
	assignments collectionCounter
}

// NewStatsService creates a new stats service instance
func NewStatsService(users, classes, payments, assignments collectionCounter) StatsService {
	return &statsServiceImpl{
		users:       users,
		classes:     classes,
		payments:    payments,
		assignments: assignments,
	}
}

// GetStats returns the user, class, enrollment and assignment counts in one
// response. Enrollments are payment documents.
func (s *statsServiceImpl) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	classes, err := s.classes.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting classes: %w", err)
	}

	enrollments, err := s.payments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting enrollments: %w", err)
	}

	assignments, err := s.assignments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting assignments: %w", err)
	}

	return &dto.StatsResponse{
		Users:       users,
		Classes:     classes,
		Enrollments: enrollments,
		Assignments: assignments,
	}, nil
}

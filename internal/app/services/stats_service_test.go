package services

import (
	"context"
	"errors"
	"testing"
)

type fakeCounter struct {
	count int64
	err   error
}

func (f *fakeCounter) Count(ctx context.Context) (int64, error) {
	return f.count, f.err
}

func TestGetStatsAggregatesCounts(t *testing.T) {
	svc := NewStatsService(
		&fakeCounter{count: 10},
		&fakeCounter{count: 3},
		&fakeCounter{count: 25},
		&fakeCounter{count: 8},
	)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats returned error: %v", err)
	}
	if stats.Users != 10 || stats.Classes != 3 || stats.Enrollments != 25 || stats.Assignments != 8 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestGetStatsPropagatesCountError(t *testing.T) {
	countErr := errors.New("count failed")
	svc := NewStatsService(
		&fakeCounter{count: 10},
		&fakeCounter{err: countErr},
		&fakeCounter{count: 25},
		&fakeCounter{count: 8},
	)

	_, err := svc.GetStats(context.Background())
	if !errors.Is(err, countErr) {
		t.Errorf("error chain does not contain the count error: %v", err)
	}
}

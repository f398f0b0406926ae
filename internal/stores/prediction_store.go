package stores

import (
	"context"
	"errors"
	"sync"

	"telemetry-dashboard/internal/models"
)

var ErrPredictionNotFound = errors.New("no prediction run yet")

//go:generate mockgen -source=prediction_store.go -destination=./mocks/prediction_store_mock.go -package=mocks
type PredictionStore interface {
	// Put replaces the latest run. Concurrent writers race; the last Put wins.
	Put(ctx context.Context, run *models.PredictionRun) error
	Latest(ctx context.Context) (*models.PredictionRun, error)
}

type predictionStore struct {
	mu     sync.RWMutex
	latest *models.PredictionRun
}

func NewPredictionStore() PredictionStore {
	return &predictionStore{}
}

func (s *predictionStore) Put(ctx context.Context, run *models.PredictionRun) error {
	if run == nil {
		return errors.New("prediction run must not be nil")
	}
	s.mu.Lock()
	s.latest = run
	s.mu.Unlock()
	return nil
}

func (s *predictionStore) Latest(ctx context.Context) (*models.PredictionRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, ErrPredictionNotFound
	}
	return s.latest, nil
}

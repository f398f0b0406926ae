package stores

import (
	"context"
	"errors"
	"sync"

	"telemetry-dashboard/internal/models"
)

var ErrDatasetNotLoaded = errors.New("dataset not loaded")

//go:generate mockgen -source=dataset_store.go -destination=./mocks/dataset_store_mock.go -package=mocks
type DatasetStore interface {
	// Get returns the current snapshot. Callers must treat it as read-only.
	Get(ctx context.Context) (*models.Dataset, error)
	// Set swaps in a new snapshot.
	Set(ctx context.Context, dataset *models.Dataset) error
}

type datasetStore struct {
	mu      sync.RWMutex
	dataset *models.Dataset
}

func NewDatasetStore() DatasetStore {
	return &datasetStore{}
}

func (s *datasetStore) Get(ctx context.Context) (*models.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil, ErrDatasetNotLoaded
	}
	return s.dataset, nil
}

func (s *datasetStore) Set(ctx context.Context, dataset *models.Dataset) error {
	if dataset == nil {
		return errors.New("dataset must not be nil")
	}
	s.mu.Lock()
	s.dataset = dataset
	s.mu.Unlock()
	return nil
}

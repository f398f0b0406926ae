package stores

import (
	"context"
	"errors"
	"fmt"
	"io"

	"telemetry-dashboard/internal/shared/filestorages"
)

var (
	ErrTelemetryCSVNotFound = errors.New("telemetry csv not found")
	ErrTelemetryCSVTooLarge = errors.New("telemetry csv too large")
)

// MaxTelemetryCSVBytes caps uploaded CSV documents.
const MaxTelemetryCSVBytes = 64 << 20

//go:generate mockgen -source=telemetry_csv_store.go -destination=./mocks/telemetry_csv_store_mock.go -package=mocks
type TelemetryCSVStore interface {
	// Open returns the raw CSV document. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
	// Replace atomically overwrites the CSV document.
	Replace(ctx context.Context, r io.Reader) error
}

type telemetryCSVStore struct {
	fileStorage filestorages.FileStorage
	key         string
}

func NewTelemetryCSVStore(fileStorage filestorages.FileStorage, key string) TelemetryCSVStore {
	return &telemetryCSVStore{fileStorage: fileStorage, key: key}
}

func (s *telemetryCSVStore) Open(ctx context.Context) (io.ReadCloser, error) {
	rc, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTelemetryCSVNotFound, s.key)
		}
		return nil, fmt.Errorf("failed to open telemetry csv: %w", err)
	}
	return rc, nil
}

func (s *telemetryCSVStore) Replace(ctx context.Context, r io.Reader) error {
	_, err := s.fileStorage.Put(ctx, s.key, r, filestorages.PutOptions{
		AllowOverwrite: true,
		MaxBytes:       MaxTelemetryCSVBytes,
	})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileTooLarge) {
			return fmt.Errorf("%w: %w", ErrTelemetryCSVTooLarge, err)
		}
		return fmt.Errorf("failed to put telemetry csv: %w", err)
	}
	return nil
}

package streams

import (
	"fmt"

	"telemetry-dashboard/internal/shared/svcerrors"
)

// PredictionScheduler errors
const (
	codeInternalPredictionStoreFailed = "STR_9000"
	codeInternalPredictionRunFailed   = "STR_9001"
)

// errInternalPredictionStoreFailed returns an error when the latest run cannot be stored.
func errInternalPredictionStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPredictionStoreFailed, fmt.Errorf("predictionStoreFailed: %w", cause))
}

package aggregators

import (
	"fmt"

	"telemetry-dashboard/internal/shared/svcerrors"
)

// DashboardService errors
const (
	codeInvalidTimeRange = "DSH_1000"

	codeDatasetNotLoaded           = "DSH_9000"
	codeInternalDatasetStoreFailed = "DSH_9001"
)

// errInvalidTimeRange returns an error for an unknown time range code.
func errInvalidTimeRange(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimeRange, "range must be one of 1h, 24h, 7d, 30d, all", cause)
}

// errDatasetNotLoaded returns an error when a request arrives before the first load completes.
func errDatasetNotLoaded(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeDatasetNotLoaded, "dataset is still loading", cause)
}

// errInternalDatasetStoreFailed returns an error when reading the dataset snapshot fails.
func errInternalDatasetStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDatasetStoreFailed, fmt.Errorf("datasetStoreFailed: %w", cause))
}

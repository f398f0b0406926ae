package ingestors

import (
	"fmt"

	"telemetry-dashboard/internal/shared/svcerrors"
)

// DatasetLoader errors
const (
	codeInvalidDatasetUpload = "DSH_1001"

	codeInternalTelemetryCSVStoreFailed = "ING_9000"
	codeInternalDatasetStoreFailed      = "ING_9001"
)

// errInvalidDatasetUpload returns an error for an uploaded CSV that cannot replace the dataset.
func errInvalidDatasetUpload(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDatasetUpload, msg, cause)
}

// errInternalTelemetryCSVStoreFailed returns an error when persisting the CSV fails.
func errInternalTelemetryCSVStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTelemetryCSVStoreFailed, fmt.Errorf("telemetryCSVStoreFailed: %w", cause))
}

// errInternalDatasetStoreFailed returns an error when swapping the dataset snapshot fails.
func errInternalDatasetStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDatasetStoreFailed, fmt.Errorf("datasetStoreFailed: %w", cause))
}

package http

import (
	"fmt"

	"telemetry-dashboard/internal/shared/svcerrors"
)

// Transport errors
const (
	codeMalformedRequestBody = "HTTP_1000"
	codeUnsupportedMediaType = "HTTP_1001"

	codePredictionNotReady            = "HTTP_9000"
	codeInternalPredictionStoreFailed = "HTTP_9001"
)

// errMalformedRequestBody returns an error for a body that cannot be decoded.
func errMalformedRequestBody(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedRequestBody, msg, cause)
}

// errUnsupportedMediaType returns an error for a request with the wrong content type.
func errUnsupportedMediaType(got, want string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedMediaType, fmt.Sprintf("unsupported content type %q, expected %s", got, want), nil)
}

// errPredictionNotReady returns an error before the first simulator run has completed.
func errPredictionNotReady(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codePredictionNotReady, "no prediction run yet", cause)
}

func errInternalPredictionStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPredictionStoreFailed, fmt.Errorf("predictionStoreFailed: %w", cause))
}

package http

import (
	"encoding/json"
	"net/http"

	"telemetry-dashboard/internal/shared/loggers"
	"telemetry-dashboard/internal/shared/svcerrors"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// errorHandlingAdapter turns an AppHttpHandler into an http.HandlerFunc. Errors that are
// not service errors are reported as SYS_9001.
func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}

		logger := loggers.Ctx(r.Context())
		switch {
		case svcErr.IsInternalError():
			logger.Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("internal error in handler")
		case svcErr.HttpStatusCode == http.StatusServiceUnavailable:
			logger.Warn().
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg(svcErr.Message)
		}

		writeErrorResponse(w, r, svcErr)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	logger := loggers.Ctx(r.Context())

	appWriter, isAppWriter := w.(*appResponseWriter)
	if isAppWriter {
		if appWriter.Hijacked() {
			// the connection belongs to the websocket now
			logger.Debug().Str(loggers.FieldErrorCode, svcErr.Code).Msg("error after hijack, response dropped")
			return
		}
		appWriter.SetServiceError(svcErr)
	}

	logger.Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Str("errorMessage", svcErr.Message).
		Int("httpStatusCode", svcErr.HttpStatusCode).
		Msg("error response")

	w.Header().Set(headerContentType, mediaTypeJSON)
	w.WriteHeader(svcErr.HttpStatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"telemetry-dashboard/internal/shared/loggers"
)

const maxJSONBodyBytes = 64 << 10

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// AppHttpHandlerFunc adapts a plain function to AppHttpHandler.
type AppHttpHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f AppHttpHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) error {
	w.Header().Set("Content-Type", mediaTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// headers are already out; the client sees a truncated body
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("encode response body")
	}
	return nil
}

// decodeJSON decodes a bounded JSON request body into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if mt := mediaType(r); mt != "" && mt != mediaTypeJSON {
		return errUnsupportedMediaType(mt, mediaTypeJSON)
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return errMalformedRequestBody("request body too large", err)
		case errors.Is(err, io.EOF):
			return errMalformedRequestBody("empty request body", err)
		default:
			return errMalformedRequestBody("invalid JSON: "+err.Error(), err)
		}
	}
	return nil
}

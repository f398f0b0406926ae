package http

import (
	"mime"
	"net/http"
	"strings"

	"github.com/mileusna/useragent"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"

	mediaTypeJSON = "application/json"
	mediaTypeHTML = "text/html; charset=utf-8"
	mediaTypeCSV  = "text/csv"

	userAgentUnknown = "unknown"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// mediaType returns the lower-cased media type of the request without parameters.
func mediaType(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get(headerContentType))
	if raw == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return strings.ToLower(raw)
	}
	return mt
}

// userAgentFamily reduces the User-Agent header to a browser or client name.
func userAgentFamily(r *http.Request) string {
	raw := r.UserAgent()
	if raw == "" {
		return userAgentUnknown
	}
	parsed := useragent.Parse(raw)
	if parsed.Name == "" {
		return userAgentUnknown
	}
	return parsed.Name
}

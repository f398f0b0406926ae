package http

import (
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// healthHandler serves GET /healthz. It only reports that the process is serving.
func healthHandler(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

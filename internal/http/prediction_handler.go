package http

import (
	"errors"
	"net/http"

	"telemetry-dashboard/internal/stores"
	"telemetry-dashboard/internal/streams"
)

type latestPredictionHandler struct {
	store stores.PredictionStore
}

func NewLatestPredictionHandler(store stores.PredictionStore) AppHttpHandler {
	return &latestPredictionHandler{store: store}
}

// Handle serves GET /api/predictions.
func (h *latestPredictionHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	run, err := h.store.Latest(r.Context())
	if errors.Is(err, stores.ErrPredictionNotFound) {
		return errPredictionNotReady(err)
	}
	if err != nil {
		return errInternalPredictionStoreFailed(err)
	}
	return writeJSON(w, r, http.StatusOK, run)
}

type updateInputsHandler struct {
	scheduler streams.PredictionScheduler
}

func NewUpdateInputsHandler(scheduler streams.PredictionScheduler) AppHttpHandler {
	return &updateInputsHandler{scheduler: scheduler}
}

// Handle serves PUT /api/predictions/inputs. Fields missing from the body keep their
// current value. The recompute runs after the debounce delay, so the response is 202.
func (h *updateInputsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	inputs := h.scheduler.Inputs()
	if err := decodeJSON(w, r, &inputs); err != nil {
		return err
	}
	if err := h.scheduler.UpdateInputs(r.Context(), inputs); err != nil {
		return err
	}
	return writeJSON(w, r, http.StatusAccepted, h.scheduler.Inputs())
}

type refreshPredictionsHandler struct {
	scheduler streams.PredictionScheduler
}

func NewRefreshPredictionsHandler(scheduler streams.PredictionScheduler) AppHttpHandler {
	return &refreshPredictionsHandler{scheduler: scheduler}
}

// Handle serves POST /api/predictions/refresh.
func (h *refreshPredictionsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	run, err := h.scheduler.Refresh(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, r, http.StatusOK, run)
}

package http

import (
	"net/http"
	"time"

	"telemetry-dashboard/internal/ingestors"
	"telemetry-dashboard/internal/models"
)

// DatasetResponse summarises the snapshot swapped in by an upload.
type DatasetResponse struct {
	Source          models.DatasetSource `json:"source"`
	Notice          string               `json:"notice"`
	TotalRecords    int64                `json:"totalRecords"`
	UniqueVariables int                  `json:"uniqueVariables"`
	SampledPoints   int                  `json:"sampledPoints"`
	LoadedAt        time.Time            `json:"loadedAt"`
}

type datasetUploadHandler struct {
	loader ingestors.DatasetLoader
}

func NewDatasetUploadHandler(loader ingestors.DatasetLoader) AppHttpHandler {
	return &datasetUploadHandler{loader: loader}
}

// Handle serves PUT /api/dataset with a text/csv body.
func (h *datasetUploadHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if mt := mediaType(r); mt != "" && mt != mediaTypeCSV {
		return errUnsupportedMediaType(mt, mediaTypeCSV)
	}

	dataset, err := h.loader.Replace(r.Context(), r.Body)
	if err != nil {
		return err
	}

	return writeJSON(w, r, http.StatusOK, DatasetResponse{
		Source:          dataset.Source,
		Notice:          dataset.Notice,
		TotalRecords:    dataset.Statistics.TotalRecords,
		UniqueVariables: dataset.Statistics.UniqueVariables,
		SampledPoints:   len(dataset.TimeSeries),
		LoadedAt:        dataset.LoadedAt,
	})
}

package http

import (
	"net/http"

	"telemetry-dashboard/internal/aggregators"
	"telemetry-dashboard/internal/assistants"
	"telemetry-dashboard/internal/dashboards"
	"telemetry-dashboard/internal/events"
	"telemetry-dashboard/internal/ingestors"
	"telemetry-dashboard/internal/shared/loggers"
	"telemetry-dashboard/internal/shared/metrics"
	"telemetry-dashboard/internal/stores"
	"telemetry-dashboard/internal/streams"

	"github.com/go-chi/chi/v5"
)

// Services are the application services the routes delegate to.
type Services struct {
	DashboardService    aggregators.DashboardService
	DatasetLoader       ingestors.DatasetLoader
	AssistantService    assistants.AssistantService
	PredictionScheduler streams.PredictionScheduler
	PredictionStore     stores.PredictionStore
	PredictionHub       *streams.BroadcastHub[events.PredictionEvent]
	Renderer            dashboards.Renderer
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services Services, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Get("/", errorHandlingAdapter(NewDashboardPageHandler(services.DashboardService, services.Renderer)))
	router.Get("/healthz", errorHandlingAdapter(AppHttpHandlerFunc(healthHandler)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	router.Route("/api", func(api chi.Router) {
		api.Get("/dashboard", errorHandlingAdapter(NewDashboardViewHandler(services.DashboardService)))
		api.Get("/stats", errorHandlingAdapter(NewStatisticsHandler(services.DashboardService)))
		api.Put("/dataset", errorHandlingAdapter(NewDatasetUploadHandler(services.DatasetLoader)))

		api.Post("/chat", errorHandlingAdapter(NewChatHandler(services.AssistantService)))
		api.Get("/chat/{"+pathParamSessionID+"}", errorHandlingAdapter(NewChatHistoryHandler(services.AssistantService)))

		api.Get("/predictions", errorHandlingAdapter(NewLatestPredictionHandler(services.PredictionStore)))
		api.Put("/predictions/inputs", errorHandlingAdapter(NewUpdateInputsHandler(services.PredictionScheduler)))
		api.Post("/predictions/refresh", errorHandlingAdapter(NewRefreshPredictionsHandler(services.PredictionScheduler)))
	})

	router.Get("/ws/predictions", errorHandlingAdapter(NewPredictionStreamHandler(services.PredictionHub, services.PredictionStore)))

	return router
}

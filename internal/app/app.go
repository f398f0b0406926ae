package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"telemetry-dashboard/internal/aggregators"
	"telemetry-dashboard/internal/assistants"
	"telemetry-dashboard/internal/dashboards"
	"telemetry-dashboard/internal/events"
	internalhttp "telemetry-dashboard/internal/http"
	"telemetry-dashboard/internal/ingestors"
	"telemetry-dashboard/internal/shared/configs"
	"telemetry-dashboard/internal/shared/filestorages"
	"telemetry-dashboard/internal/shared/loggers"
	"telemetry-dashboard/internal/simulators"
	"telemetry-dashboard/internal/stores"
	"telemetry-dashboard/internal/streams"
)

const appName = "telemetry-dashboard"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	datasetLoader       ingestors.DatasetLoader
	predictionScheduler streams.PredictionScheduler
	predictionHub       *streams.BroadcastHub[events.PredictionEvent]
	predictionPublisher streams.PredictionPublisher

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Dataset pipeline
	datasetStore := stores.NewDatasetStore()
	csvStore := stores.NewTelemetryCSVStore(fileStorage, config.Dataset.CSVKey)
	accumulator := aggregators.NewStatisticsAccumulator()
	sampler := aggregators.NewTimeSeriesSampler()
	datasetLoader := ingestors.NewDatasetLoader(ingestors.NewRecordParser(), accumulator, sampler, csvStore, datasetStore)
	dashboardService := aggregators.NewDashboardService(datasetStore, accumulator, sampler)

	// Assistant
	completionClient := assistants.NewChatCompletionClient(assistants.ChatCompletionClientConfig{
		Endpoint: config.Assistant.Endpoint,
		Model:    config.Assistant.Model,
		APIKey:   config.Assistant.APIKey,
		Timeout:  time.Duration(config.Assistant.Timeout) * time.Second,
	})
	assistantService := assistants.NewAssistantService(completionClient, datasetStore, stores.NewChatHistoryStore())

	// Scenario simulator
	rules, err := simulators.LoadRules(config.Simulator.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load simulator rules: %w", err)
	}
	simulator := simulators.NewScenarioSimulator(rules, nil)

	predictionPublisher := streams.NewNoopPredictionPublisher()
	if config.NATS.URL != "" {
		predictionPublisher, err = streams.NewNATSPredictionPublisher(config.NATS.URL, config.NATS.Subject)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize prediction publisher: %w", err)
		}
	}

	predictionStore := stores.NewPredictionStore()
	predictionHub := streams.NewBroadcastHub[events.PredictionEvent](streams.StreamPredictions)
	schedulerLogger := loggers.Component(appLogger, "scheduler")
	predictionScheduler := streams.NewPredictionScheduler(
		simulator,
		predictionStore,
		predictionHub,
		predictionPublisher,
		streams.PredictionSchedulerConfig{
			Interval: time.Duration(config.Simulator.RefreshInterval) * time.Second,
			Debounce: time.Duration(config.Simulator.InputDebounceMs) * time.Millisecond,
		},
		schedulerLogger,
	)

	httpLogger := loggers.Component(appLogger, "http")
	router := internalhttp.NewRouter(internalhttp.Services{
		DashboardService:    dashboardService,
		DatasetLoader:       datasetLoader,
		AssistantService:    assistantService,
		PredictionScheduler: predictionScheduler,
		PredictionStore:     predictionStore,
		PredictionHub:       predictionHub,
		Renderer:            dashboards.NewRenderer(),
	}, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:              config,
		appLogger:           appLogger,
		server:              server,
		datasetLoader:       datasetLoader,
		predictionScheduler: predictionScheduler,
		predictionHub:       predictionHub,
		predictionPublisher: predictionPublisher,
	}, nil
}

// Start loads the dataset, starts the prediction scheduler and serves HTTP. It blocks.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s on port %d (log_level=%s, file_storage_root_dir=%s, dataset=%s, nats=%t)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Dataset.CSVKey,
			app.config.NATS.URL != "")

	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())

	loaderLogger := loggers.Component(app.appLogger, "loader")
	if _, err := app.datasetLoader.Load(loaderLogger.WithContext(app.backgroundCtx)); err != nil {
		return fmt.Errorf("initial dataset load failed: %w", err)
	}

	app.predictionScheduler.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Stop accepting requests
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop the scheduler before closing what it writes to
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.predictionScheduler.Stop()
	app.appLogger.Info().Msg("Prediction scheduler stopped")

	// 3) Disconnect websocket subscribers and flush the publisher
	app.predictionHub.Close()
	if err := app.predictionPublisher.Close(); err != nil {
		app.appLogger.Warn().Err(err).Msg("prediction publisher close failed")
	}

	return nil
}

package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"telemetry-dashboard/internal/events"
	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/loggers"
	"telemetry-dashboard/internal/shared/metrics"
	"telemetry-dashboard/internal/shared/svcerrors"
	"telemetry-dashboard/internal/shared/ulid"
	"telemetry-dashboard/internal/simulators"
	"telemetry-dashboard/internal/stores"
)

const (
	DefaultRefreshInterval = 30 * time.Second
	DefaultInputDebounce   = 500 * time.Millisecond
)

type PredictionSchedulerConfig struct {
	Interval time.Duration
	Debounce time.Duration
}

// PredictionScheduler re-runs the simulator on a fixed interval, shortly after the
// inputs change, and on demand.
//
// The periodic task and the debounced task are independent goroutines writing the
// same PredictionStore slot. Their relative order is not coordinated: whichever
// finishes last wins.
//
//go:generate mockgen -source=prediction_scheduler.go -destination=./mocks/prediction_scheduler_mock.go -package=mocks
type PredictionScheduler interface {
	// Start runs once synchronously with the startup trigger, then spawns the periodic and debounced tasks.
	Start(ctx context.Context)
	// Stop waits for both tasks to return.
	Stop()
	// UpdateInputs validates and stores inputs and schedules a debounced run.
	UpdateInputs(ctx context.Context, inputs models.ScenarioInputs) error
	Inputs() models.ScenarioInputs
	// Refresh runs immediately with the manual trigger.
	Refresh(ctx context.Context) (*models.PredictionRun, error)
}

type predictionScheduler struct {
	simulator simulators.ScenarioSimulator
	store     stores.PredictionStore
	hub       *BroadcastHub[events.PredictionEvent]
	publisher PredictionPublisher
	cfg       PredictionSchedulerConfig

	mu     sync.RWMutex
	inputs models.ScenarioInputs

	changed chan struct{}

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewPredictionScheduler(
	simulator simulators.ScenarioSimulator,
	store stores.PredictionStore,
	hub *BroadcastHub[events.PredictionEvent],
	publisher PredictionPublisher,
	cfg PredictionSchedulerConfig,
	logger loggers.Logger,
) PredictionScheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultRefreshInterval
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultInputDebounce
	}
	return &predictionScheduler{
		simulator: simulator,
		store:     store,
		hub:       hub,
		publisher: publisher,
		cfg:       cfg,
		inputs:    models.DefaultScenarioInputs(),
		changed:   make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		logger:    logger,
	}
}

func (scheduler *predictionScheduler) Start(ctx context.Context) {
	scheduler.runSafely(ctx, models.TriggerStartup)

	scheduler.wg.Add(2)
	go func() {
		defer scheduler.wg.Done()
		scheduler.runPeriodic(ctx)
	}()
	go func() {
		defer scheduler.wg.Done()
		scheduler.runDebounced(ctx)
	}()
}

func (scheduler *predictionScheduler) Stop() {
	scheduler.stopOnce.Do(func() { close(scheduler.stopCh) })
	scheduler.wg.Wait()
}

func (scheduler *predictionScheduler) UpdateInputs(ctx context.Context, inputs models.ScenarioInputs) error {
	if err := scheduler.simulator.Validate(inputs); err != nil {
		return err
	}

	scheduler.mu.Lock()
	scheduler.inputs = inputs
	scheduler.mu.Unlock()

	select {
	case scheduler.changed <- struct{}{}:
	default:
	}
	return nil
}

func (scheduler *predictionScheduler) Inputs() models.ScenarioInputs {
	scheduler.mu.RLock()
	defer scheduler.mu.RUnlock()
	return scheduler.inputs
}

func (scheduler *predictionScheduler) Refresh(ctx context.Context) (*models.PredictionRun, error) {
	return scheduler.run(ctx, models.TriggerManual)
}

func (scheduler *predictionScheduler) runPeriodic(ctx context.Context) {
	ticker := time.NewTicker(scheduler.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-scheduler.stopCh:
			return
		case <-ticker.C:
			scheduler.runSafely(ctx, models.TriggerPeriodic)
		}
	}
}

// runDebounced fires once the inputs have been quiet for cfg.Debounce.
func (scheduler *predictionScheduler) runDebounced(ctx context.Context) {
	timer := time.NewTimer(scheduler.cfg.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-scheduler.stopCh:
			return
		case <-scheduler.changed:
			timer.Reset(scheduler.cfg.Debounce)
		case <-timer.C:
			scheduler.runSafely(ctx, models.TriggerInput)
		}
	}
}

// runSafely runs the simulator and logs failures. A panic is recovered so the task keeps going.
func (scheduler *predictionScheduler) runSafely(ctx context.Context, trigger models.PredictionTrigger) {
	ctx = scheduler.logger.With().
		Str(loggers.FieldTrigger, string(trigger)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("prediction run panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricScheduledRunsTotal.WithLabelValues(string(trigger), svcErr.Code).Inc()
		}
	}()

	if _, err := scheduler.run(ctx, trigger); err != nil {
		loggers.Ctx(ctx).Error().Err(err).Msg("prediction run failed")
	}
}

func (scheduler *predictionScheduler) run(ctx context.Context, trigger models.PredictionTrigger) (*models.PredictionRun, error) {
	logger := loggers.Ctx(ctx)

	run, err := scheduler.simulator.Run(trigger, scheduler.Inputs())
	if err != nil {
		scheduler.observe(trigger, err)
		return nil, err
	}
	if err := scheduler.store.Put(ctx, run); err != nil {
		svcErr := errInternalPredictionStoreFailed(err)
		scheduler.observe(trigger, svcErr)
		return nil, svcErr
	}

	event := events.NewPredictionEvent(run, time.Now().UTC())
	delivered := scheduler.hub.Publish(event)

	if err := scheduler.publisher.Publish(ctx, event); err != nil {
		logger.Warn().Err(err).Str(loggers.FieldRunID, run.RunID).Msg("prediction event not published externally")
		metricExternalPublishTotal.WithLabelValues(StreamPredictions, "error").Inc()
	} else {
		metricExternalPublishTotal.WithLabelValues(StreamPredictions, "ok").Inc()
	}

	scheduler.observe(trigger, nil)
	logger.Debug().
		Str(loggers.FieldRunID, run.RunID).
		Int("consensus_eco_score", run.Consensus.EcoScore).
		Int("subscribers", delivered).
		Msg("prediction run completed")
	return run, nil
}

func (scheduler *predictionScheduler) observe(trigger models.PredictionTrigger, err error) {
	code := metrics.ValueNoError
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			code = svcErr.Code
		} else {
			code = codeInternalPredictionRunFailed
		}
	}
	metricScheduledRunsTotal.WithLabelValues(string(trigger), code).Inc()
}

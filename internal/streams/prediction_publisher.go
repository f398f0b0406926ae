package streams

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"telemetry-dashboard/internal/events"

	"github.com/nats-io/nats.go"
)

const (
	natsClientName     = "telemetry-dashboard"
	natsConnectTimeout = 2 * time.Second
	natsDrainTimeout   = 5 * time.Second
)

// PredictionPublisher forwards prediction events to systems outside the process.
//
//go:generate mockgen -source=prediction_publisher.go -destination=./mocks/prediction_publisher_mock.go -package=mocks
type PredictionPublisher interface {
	Publish(ctx context.Context, event events.PredictionEvent) error
	Close() error
}

// natsConn is the subset of *nats.Conn the publisher uses.
type natsConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

type natsPredictionPublisher struct {
	conn    natsConn
	subject string
}

// NewNATSPredictionPublisher connects to url and publishes JSON events on subject.
func NewNATSPredictionPublisher(url, subject string) (PredictionPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name(natsClientName),
		nats.Timeout(natsConnectTimeout),
		nats.DrainTimeout(natsDrainTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return newNATSPredictionPublisher(nc, subject), nil
}

func newNATSPredictionPublisher(conn natsConn, subject string) *natsPredictionPublisher {
	return &natsPredictionPublisher{conn: conn, subject: subject}
}

func (publisher *natsPredictionPublisher) Publish(ctx context.Context, event events.PredictionEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal prediction event: %w", err)
	}
	if err := publisher.conn.Publish(publisher.subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", publisher.subject, err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (publisher *natsPredictionPublisher) Close() error {
	return publisher.conn.Drain()
}

type noopPredictionPublisher struct{}

// NewNoopPredictionPublisher is used when no NATS url is configured.
func NewNoopPredictionPublisher() PredictionPublisher {
	return noopPredictionPublisher{}
}

func (noopPredictionPublisher) Publish(context.Context, events.PredictionEvent) error { return nil }

func (noopPredictionPublisher) Close() error { return nil }

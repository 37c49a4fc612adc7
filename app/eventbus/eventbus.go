// Package eventbus wraps watermill over NATS JetStream for publishing round
// and score lifecycle events.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/sindicato-golf/rounds/app/shared/attr"
)

// EventBus publishes domain events. Implementations must be safe for
// concurrent use.
type EventBus interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close() error
}

type eventBus struct {
	publisher      message.Publisher
	natsConn       *nc.Conn
	js             jetstream.JetStream
	logger         *slog.Logger
	createdStreams map[string]bool
	streamMutex    sync.Mutex
}

// New connects to NATS JetStream and returns a publishing EventBus.
func New(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:       natsURL,
			Marshaler: &wmnats.NATSMarshaler{},
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to create watermill publisher: %w", err)
	}

	return &eventBus{
		publisher:      publisher,
		natsConn:       natsConn,
		js:             js,
		logger:         logger,
		createdStreams: make(map[string]bool),
	}, nil
}

// Publish marshals the payload to JSON and publishes it on the given subject,
// creating the owning stream on first use.
func (eb *eventBus) Publish(ctx context.Context, subject string, payload any) error {
	stream := StreamForSubject(subject)
	if err := eb.ensureStream(ctx, stream); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload for %s: %w", subject, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.Metadata.Set("subject", subject)
	if id := attr.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set("correlation_id", id)
	}

	if err := eb.publisher.Publish(subject, msg); err != nil {
		eb.logger.ErrorContext(ctx, "Failed to publish event",
			attr.String("subject", subject),
			attr.String("stream", stream),
			attr.Error(err),
		)
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	eb.logger.DebugContext(ctx, "Event published",
		attr.String("subject", subject),
		attr.String("stream", stream),
		attr.ExtractCorrelationID(ctx),
	)
	return nil
}

// ensureStream creates the JetStream stream on first publish in this process.
func (eb *eventBus) ensureStream(ctx context.Context, stream string) error {
	eb.streamMutex.Lock()
	defer eb.streamMutex.Unlock()

	if eb.createdStreams[stream] {
		return nil
	}

	_, err := eb.js.Stream(ctx, stream)
	if err == jetstream.ErrStreamNotFound {
		_, err = eb.js.CreateStream(ctx, jetstream.StreamConfig{
			Name:     stream,
			Subjects: streamSubjects[stream],
		})
		if err != nil {
			return fmt.Errorf("failed to create stream %s: %w", stream, err)
		}
		eb.logger.InfoContext(ctx, "Created JetStream stream", attr.String("stream", stream))
	} else if err != nil {
		return fmt.Errorf("failed to check stream %s: %w", stream, err)
	}

	eb.createdStreams[stream] = true
	return nil
}

// Close shuts the publisher and the NATS connection down.
func (eb *eventBus) Close() error {
	err := eb.publisher.Close()
	eb.natsConn.Close()
	return err
}

// NoOp is an EventBus that drops everything; used in tests.
type NoOp struct{}

// Publish discards the event.
func (NoOp) Publish(context.Context, string, any) error { return nil }

// Close is a no-op.
func (NoOp) Close() error { return nil }

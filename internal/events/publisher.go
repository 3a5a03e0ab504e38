package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventPublisher publishes auth-flow events. Publishing is
// best-effort: a failed publish never fails the request that caused it.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// watermillPublisher adapts any watermill publisher to EventPublisher.
// The event type doubles as the topic name.
type watermillPublisher struct {
	publisher message.Publisher
}

func (p *watermillPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(event.Type, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *watermillPublisher) Close() error {
	return p.publisher.Close()
}

// NewGoChannelPublisher returns an in-process publisher, the default
// when no broker is configured.
func NewGoChannelPublisher(logger *slog.Logger) EventPublisher {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewSlogLogger(logger),
	)
	return &watermillPublisher{publisher: pubsub}
}

// NewKafkaPublisher returns a Kafka-backed publisher for deployments
// that forward events to the platform bus.
func NewKafkaPublisher(brokers []string, logger *slog.Logger) (EventPublisher, error) {
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return &watermillPublisher{publisher: publisher}, nil
}

// MockEventPublisher records events for tests.
type MockEventPublisher struct {
	mu     sync.Mutex
	logger *slog.Logger
	events []Event
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) Publish(_ context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	m.logger.Info("Mock event published", "type", event.Type)
	return nil
}

func (m *MockEventPublisher) Close() error {
	return nil
}

func (m *MockEventPublisher) GetPublishedEvents() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

func (m *MockEventPublisher) ClearEvents() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}

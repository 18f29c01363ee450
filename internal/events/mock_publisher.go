package events

import (
	"context"
	"log/slog"
	"sync"
)

// MockEventPublisher records events instead of sending them, for tests and
// for deployments without a broker.
type MockEventPublisher struct {
	mu     sync.Mutex
	events []*Event
	logger *slog.Logger
}

// NewMockEventPublisher creates an in-memory publisher
func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{
		logger: logger,
	}
}

// Publish records the event
func (p *MockEventPublisher) Publish(ctx context.Context, topic string, event *Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
	p.logger.DebugContext(ctx, "Event recorded",
		"topic", topic,
		"event_type", event.Type)

	return nil
}

// Close is a no-op
func (p *MockEventPublisher) Close() error {
	return nil
}

// GetPublishedEvents returns a copy of every recorded event
func (p *MockEventPublisher) GetPublishedEvents() []*Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*Event, len(p.events))
	copy(out, p.events)
	return out
}

// ClearEvents discards recorded events
func (p *MockEventPublisher) ClearEvents() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = nil
}

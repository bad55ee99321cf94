// Package eventbus publishes application events to Kafka. Only the producer
// side exists here: this service emits events and never consumes them.
package eventbus

import "context"

// Publisher is the event publishing abstraction. The Kafka implementation
// is used when brokers are configured; Noop otherwise.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, payload any) error
	Close()
}

// NoopPublisher drops every event. Used when no brokers are configured so
// the rest of the code never branches on "is kafka on".
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (*NoopPublisher) Publish(ctx context.Context, topic string, key string, payload any) error {
	return nil
}

func (*NoopPublisher) Close() {}

package interfaces

import "context"

// IEventPublisher publishes domain events to a message broker.
type IEventPublisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

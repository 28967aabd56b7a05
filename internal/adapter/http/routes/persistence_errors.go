package routes

import (
	"context"
	"log"
	"time"

	"revolux/internal/usecase"
	"revolux/internal/usecase/interfaces"
)

const persistenceErrorPublishTimeout = 5 * time.Second

type persistenceErrorEvent struct {
	OrderID    string    `json:"order_id"`
	Operation  string    `json:"operation"`
	Error      string    `json:"error"`
	OccurredAt time.Time `json:"occurred_at"`
}

// persistenceErrorReporter logs failed write-behinds and, when a publisher is
// configured, forwards them to topic so operators can replay them.
func persistenceErrorReporter(publisher interfaces.IEventPublisher, topic string) usecase.PersistenceErrorHandler {
	return func(ctx context.Context, perr *usecase.PersistenceError) {
		log.Printf("[app][persistence] write-behind failed op=%s order_id=%s err=%v", perr.Op, perr.OrderID, perr.Err)
		if publisher == nil || topic == "" {
			return
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistenceErrorPublishTimeout)
		defer cancel()
		event := persistenceErrorEvent{
			OrderID:    perr.OrderID,
			Operation:  perr.Op,
			OccurredAt: time.Now().UTC(),
		}
		if perr.Err != nil {
			event.Error = perr.Err.Error()
		}
		if err := publisher.PublishEvent(ctx, topic, perr.OrderID, event); err != nil {
			log.Printf("[app][persistence] publish failed topic=%s order_id=%s err=%v", topic, perr.OrderID, err)
		}
	}
}

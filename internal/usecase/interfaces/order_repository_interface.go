package interfaces

import (
	"context"
	"errors"
	"time"

	"revolux/internal/domain/entities"
)

// IOrderRepository abstracts the document store holding orders.
//
// Lookups of unknown ids return a zero Order and a nil error; callers check
// the ID. Update merges only the fields set in the patch and stamps the
// given version and update time. It fails with ErrStaleOrderWrite when the
// stored document is missing or already carries that version or a newer one.
type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, id string, patch entities.OrderPatch, version int, updatedAt time.Time) (entities.Order, error)
}

var ErrStaleOrderWrite = errors.New("stale order write")

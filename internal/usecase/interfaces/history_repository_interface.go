package interfaces

import (
	"context"

	"revolux/internal/domain/entities"
)

// IHistoryRepository persists the audit trail. Append must be idempotent by
// entry id; there is no update or delete.
type IHistoryRepository interface {
	Append(ctx context.Context, e entities.HistoryEntry) error
	ListByOrderID(ctx context.Context, orderID string) ([]entities.HistoryEntry, error)
}

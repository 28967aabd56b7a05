package usecase

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"
)

var ErrInvalidHistoryEntry = errors.New("invalid history entry")

// HistoryLog is the append-only audit trail of accepted transitions.
//
// Append is idempotent by entry id. Entries are kept in memory and written
// behind to the history repository; an order whose trail is not yet in
// memory is read from the repository on first listing.
type HistoryLog struct {
	mu       sync.RWMutex
	byID     map[string]entities.HistoryEntry
	byOrder  map[string][]string
	hydrated map[string]bool

	repo      interfaces.IHistoryRepository
	timeout   time.Duration
	onPersist PersistenceErrorHandler
}

func NewHistoryLog(repo interfaces.IHistoryRepository, timeout time.Duration, onPersist PersistenceErrorHandler) *HistoryLog {
	if timeout <= 0 {
		timeout = DefaultPersistenceTimeout
	}
	if onPersist == nil {
		onPersist = logPersistenceError
	}
	return &HistoryLog{
		byID:      map[string]entities.HistoryEntry{},
		byOrder:   map[string][]string{},
		hydrated:  map[string]bool{},
		repo:      repo,
		timeout:   timeout,
		onPersist: onPersist,
	}
}

func (h *HistoryLog) Append(ctx context.Context, e entities.HistoryEntry) error {
	if strings.TrimSpace(e.ID) == "" || strings.TrimSpace(e.OrderID) == "" {
		return ErrInvalidHistoryEntry
	}

	h.mu.Lock()
	if _, exists := h.byID[e.ID]; exists {
		h.mu.Unlock()
		return nil
	}
	h.add(e)
	h.mu.Unlock()

	if h.repo == nil {
		return nil
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.timeout)
	defer cancel()
	if err := h.repo.Append(pctx, e); err != nil {
		h.onPersist(pctx, &PersistenceError{OrderID: e.OrderID, Op: "history-append", Err: err})
	}
	return nil
}

// add stores a copy of e. Callers hold the write lock.
func (h *HistoryLog) add(e entities.HistoryEntry) {
	e = e.Clone()
	h.byID[e.ID] = e
	h.byOrder[e.OrderID] = append(h.byOrder[e.OrderID], e.ID)
}

// ListByOrder returns the trail of one order, oldest first. Entries with the
// same timestamp keep the order in which they were appended.
func (h *HistoryLog) ListByOrder(ctx context.Context, orderID string) ([]entities.HistoryEntry, error) {
	h.hydrate(ctx, orderID)

	h.mu.RLock()
	ids := h.byOrder[orderID]
	out := make([]entities.HistoryEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, h.byID[id].Clone())
	}
	h.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b entities.HistoryEntry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out, nil
}

func (h *HistoryLog) hydrate(ctx context.Context, orderID string) {
	if h.repo == nil {
		return
	}
	h.mu.RLock()
	done := h.hydrated[orderID]
	h.mu.RUnlock()
	if done {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	entries, err := h.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[history][log] hydrate failed order_id=%s err=%v", orderID, err)
		return
	}

	h.mu.Lock()
	for _, e := range entries {
		if _, exists := h.byID[e.ID]; !exists && e.OrderID == orderID {
			h.add(e)
		}
	}
	h.hydrated[orderID] = true
	h.mu.Unlock()
}

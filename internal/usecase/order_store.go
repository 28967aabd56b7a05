package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const DefaultPersistenceTimeout = 5 * time.Second

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrder    = errors.New("invalid order")
	ErrVersionConflict = errors.New("order version conflict")
)

type OrderEventType string

const (
	OrderEventCreated OrderEventType = "created"
	OrderEventUpdated OrderEventType = "updated"
)

// OrderEvent is delivered to store subscribers after every successful change.
type OrderEvent struct {
	Type  OrderEventType `json:"type"`
	Order entities.Order `json:"order"`
}

// PersistenceError reports a failed write-behind to the document store. The
// in-memory change it belongs to has already been applied and is kept.
type PersistenceError struct {
	OrderID string
	Op      string
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s order_id=%s: %v", e.Op, e.OrderID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// PersistenceErrorHandler receives write-behind failures.
type PersistenceErrorHandler func(ctx context.Context, perr *PersistenceError)

// OrderStore owns the in-memory order collection and writes behind to the
// document store.
//
// Behavior:
//   - reads return deep copies;
//   - updates are shallow field-level merges (last write wins per field);
//   - a patch carrying ExpectedVersion is refused on a version mismatch;
//   - persistence runs after the in-memory change, under a timeout, and its
//     failures never roll the change back.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]entities.Order

	repo      interfaces.IOrderRepository
	now       func() time.Time
	newID     func() string
	timeout   time.Duration
	onPersist PersistenceErrorHandler

	subMu   sync.Mutex
	subs    map[int]func(OrderEvent)
	nextSub int
}

type StoreOption func(*OrderStore)

func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *OrderStore) { s.now = now }
}

func WithStoreIDGenerator(newID func() string) StoreOption {
	return func(s *OrderStore) { s.newID = newID }
}

func WithPersistenceTimeout(d time.Duration) StoreOption {
	return func(s *OrderStore) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithPersistenceErrorHandler(h PersistenceErrorHandler) StoreOption {
	return func(s *OrderStore) {
		if h != nil {
			s.onPersist = h
		}
	}
}

// NewOrderStore builds a store. repo may be nil for a purely in-memory store.
func NewOrderStore(repo interfaces.IOrderRepository, opts ...StoreOption) *OrderStore {
	s := &OrderStore{
		orders:    map[string]entities.Order{},
		repo:      repo,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		timeout:   DefaultPersistenceTimeout,
		onPersist: logPersistenceError,
		subs:      map[int]func(OrderEvent){},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func logPersistenceError(_ context.Context, perr *PersistenceError) {
	log.Printf("[order][store] persistence failed op=%s order_id=%s err=%v", perr.Op, perr.OrderID, perr.Err)
}

// Load replaces the collection with the document store contents. On failure
// the current contents are kept.
func (s *OrderStore) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	orders, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("[order][store] load failed err=%v", err)
		return err
	}

	s.mu.Lock()
	s.orders = make(map[string]entities.Order, len(orders))
	for _, o := range orders {
		if o.ID == "" {
			continue
		}
		if o.Version == 0 {
			o.Version = 1
		}
		s.orders[o.ID] = o.Clone()
	}
	n := len(s.orders)
	s.mu.Unlock()

	log.Printf("[order][store] loaded orders count=%d", n)
	return nil
}

func (s *OrderStore) Create(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	if err := validateDraft(draft); err != nil {
		return entities.Order{}, err
	}

	now := s.now()
	o := entities.Order{
		ID:             s.newID(),
		SKU:            strings.TrimSpace(draft.SKU),
		Item:           strings.TrimSpace(draft.Item),
		Description:    strings.TrimSpace(draft.Description),
		Category:       strings.TrimSpace(draft.Category),
		Quantity:       draft.Quantity,
		EstimatedValue: draft.EstimatedValue,
		CostCenter:     strings.TrimSpace(draft.CostCenter),
		Supplier:       strings.TrimSpace(draft.Supplier),
		Suppliers:      slices.Clone(draft.Suppliers),
		Source:         strings.TrimSpace(draft.Source),
		CreatedAt:      now,
		Deadline:       draft.Deadline,
		Status:         entities.OrderStatusPending,
		Version:        1,
		UpdatedAt:      now,
	}
	o = o.Clone()

	s.mu.Lock()
	s.orders[o.ID] = o
	s.mu.Unlock()

	s.notify(OrderEvent{Type: OrderEventCreated, Order: o.Clone()})

	s.persist(ctx, o.ID, "create", func(ctx context.Context) error {
		_, err := s.repo.Create(ctx, o.Clone())
		return err
	})
	return o.Clone(), nil
}

func validateDraft(d entities.OrderDraft) error {
	switch {
	case strings.TrimSpace(d.SKU) == "":
		return fmt.Errorf("%w: sku is required", ErrInvalidOrder)
	case strings.TrimSpace(d.Item) == "":
		return fmt.Errorf("%w: item is required", ErrInvalidOrder)
	case strings.TrimSpace(d.CostCenter) == "":
		return fmt.Errorf("%w: cost_center is required", ErrInvalidOrder)
	case d.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidOrder)
	case d.EstimatedValue < 0:
		return fmt.Errorf("%w: estimated_value must not be negative", ErrInvalidOrder)
	}
	return nil
}

// List returns every order, oldest first.
func (s *OrderStore) List() []entities.Order {
	s.mu.RLock()
	out := make([]entities.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b entities.Order) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func (s *OrderStore) Get(id string) (entities.Order, error) {
	s.mu.RLock()
	o, ok := s.orders[id]
	s.mu.RUnlock()
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	return o.Clone(), nil
}

// Update merges patch into the stored order and bumps its version.
func (s *OrderStore) Update(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error) {
	s.mu.Lock()
	current, ok := s.orders[id]
	if !ok {
		s.mu.Unlock()
		return entities.Order{}, ErrOrderNotFound
	}
	if patch.ExpectedVersion != nil && *patch.ExpectedVersion != current.Version {
		s.mu.Unlock()
		return entities.Order{}, fmt.Errorf("%w: order_id=%s expected=%d current=%d", ErrVersionConflict, id, *patch.ExpectedVersion, current.Version)
	}
	merged := patch.Apply(current)
	merged.Version = current.Version + 1
	merged.UpdatedAt = s.now()
	s.orders[id] = merged
	s.mu.Unlock()

	s.notify(OrderEvent{Type: OrderEventUpdated, Order: merged.Clone()})

	version, updatedAt := merged.Version, merged.UpdatedAt
	s.persist(ctx, id, "update", func(ctx context.Context) error {
		_, err := s.repo.Update(ctx, id, patch, version, updatedAt)
		return err
	})
	return merged.Clone(), nil
}

// Refresh reads the order from the document store and adopts it when it is
// newer than the in-memory copy. It returns the order the caller should act on.
func (s *OrderStore) Refresh(ctx context.Context, id string) (entities.Order, error) {
	local, err := s.Get(id)
	if err != nil {
		return entities.Order{}, err
	}
	if s.repo == nil {
		return local, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	remote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[order][store] refresh failed order_id=%s err=%v", id, err)
		return local, nil
	}
	if remote.ID == "" || remote.Version <= local.Version {
		return local, nil
	}

	log.Printf("[order][store] adopting newer remote order order_id=%s local_version=%d remote_version=%d", id, local.Version, remote.Version)
	s.mu.Lock()
	s.orders[id] = remote.Clone()
	s.mu.Unlock()
	s.notify(OrderEvent{Type: OrderEventUpdated, Order: remote.Clone()})
	return remote.Clone(), nil
}

// Subscribe registers fn for store events and returns the function that
// removes it. fn runs synchronously and must not block.
func (s *OrderStore) Subscribe(fn func(OrderEvent)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *OrderStore) notify(evt OrderEvent) {
	s.subMu.Lock()
	fns := make([]func(OrderEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(evt)
	}
}

func (s *OrderStore) persist(ctx context.Context, orderID, op string, write func(ctx context.Context) error) {
	if s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := write(ctx); err != nil {
		s.onPersist(ctx, &PersistenceError{OrderID: orderID, Op: op, Err: err})
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"
	mock_interfaces "revolux/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestStore(repo *mock_interfaces.MockIOrderRepository, opts ...StoreOption) *OrderStore {
	base := []StoreOption{
		WithStoreClock(func() time.Time { return testNow }),
		WithStoreIDGenerator(sequentialIDs("order")),
	}
	if repo == nil {
		return NewOrderStore(nil, append(base, opts...)...)
	}
	return NewOrderStore(repo, append(base, opts...)...)
}

func validDraft() entities.OrderDraft {
	return entities.OrderDraft{
		SKU:            " SKU-1 ",
		Item:           "Parafuso",
		Quantity:       100,
		EstimatedValue: 1.5,
		CostCenter:     "CC-100",
	}
}

func TestOrderStore_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		s := newTestStore(nil)
		cases := map[string]func(d *entities.OrderDraft){
			"sku":         func(d *entities.OrderDraft) { d.SKU = " " },
			"item":        func(d *entities.OrderDraft) { d.Item = "" },
			"cost center": func(d *entities.OrderDraft) { d.CostCenter = "" },
			"quantity":    func(d *entities.OrderDraft) { d.Quantity = 0 },
			"value":       func(d *entities.OrderDraft) { d.EstimatedValue = -1 },
		}
		for name, mutate := range cases {
			d := validDraft()
			mutate(&d)
			if _, err := s.Create(context.Background(), d); !errors.Is(err, ErrInvalidOrder) {
				t.Fatalf("%s: expected ErrInvalidOrder, got %v", name, err)
			}
		}
		if n := len(s.List()); n != 0 {
			t.Fatalf("expected empty store, got %d", n)
		}
	})

	t.Run("success persists and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		s := newTestStore(repo)

		var events []OrderEvent
		s.Subscribe(func(e OrderEvent) { events = append(events, e) })

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID != "order-1" || o.Status != entities.OrderStatusPending || o.Version != 1 || o.SKU != "SKU-1" {
					t.Fatalf("unexpected persisted order: %+v", o)
				}
				return o, nil
			},
		)

		o, err := s.Create(context.Background(), validDraft())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !o.CreatedAt.Equal(testNow) || !o.UpdatedAt.Equal(testNow) {
			t.Fatalf("expected timestamps, got %+v", o)
		}
		if len(events) != 1 || events[0].Type != OrderEventCreated || events[0].Order.ID != "order-1" {
			t.Fatalf("unexpected events: %+v", events)
		}
	})
}

func TestOrderStore_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		s := newTestStore(nil)
		if _, err := s.Update(context.Background(), "nope", entities.OrderPatch{}); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("merges fields and bumps version", func(t *testing.T) {
		s := newTestStore(nil)
		o, _ := s.Create(context.Background(), validDraft())

		var got []OrderEvent
		unsubscribe := s.Subscribe(func(e OrderEvent) { got = append(got, e) })

		cat := "Fixação"
		updated, err := s.Update(context.Background(), o.ID, entities.OrderPatch{Category: &cat})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if updated.Category != "Fixação" || updated.Item != "Parafuso" || updated.Version != 2 {
			t.Fatalf("unexpected merge result: %+v", updated)
		}
		if len(got) != 1 || got[0].Type != OrderEventUpdated {
			t.Fatalf("expected one update event, got %+v", got)
		}

		unsubscribe()
		qty := 5
		if _, err := s.Update(context.Background(), o.ID, entities.OrderPatch{Quantity: &qty}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected no event after unsubscribe, got %d", len(got))
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		s := newTestStore(nil)
		o, _ := s.Create(context.Background(), validDraft())
		stale := 0
		status := entities.OrderStatusApproved
		_, err := s.Update(context.Background(), o.ID, entities.OrderPatch{Status: &status, ExpectedVersion: &stale})
		if !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
		current, _ := s.Get(o.ID)
		if current.Status != entities.OrderStatusPending || current.Version != 1 {
			t.Fatalf("order changed on conflict: %+v", current)
		}
	})

	t.Run("persistence failure keeps in-memory change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)

		var perrs []*PersistenceError
		s := newTestStore(repo, WithPersistenceErrorHandler(func(_ context.Context, perr *PersistenceError) {
			perrs = append(perrs, perr)
		}))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("dynamo down"))
		o, err := s.Create(context.Background(), validDraft())
		if err != nil {
			t.Fatalf("persistence errors must not surface, got %v", err)
		}

		status := entities.OrderStatusApproved
		repo.EXPECT().Update(gomock.Any(), o.ID, gomock.Any(), 2, testNow).Return(entities.Order{}, errors.New("dynamo down"))
		updated, err := s.Update(context.Background(), o.ID, entities.OrderPatch{Status: &status})
		if err != nil {
			t.Fatalf("persistence errors must not surface, got %v", err)
		}
		if updated.Status != entities.OrderStatusApproved {
			t.Fatalf("expected in-memory update kept, got %s", updated.Status)
		}
		if len(perrs) != 2 || perrs[0].Op != "create" || perrs[1].Op != "update" || perrs[1].OrderID != o.ID {
			t.Fatalf("unexpected persistence errors: %+v", perrs)
		}
	})

	t.Run("stale document write is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)

		var perrs []*PersistenceError
		s := newTestStore(repo, WithPersistenceErrorHandler(func(_ context.Context, perr *PersistenceError) {
			perrs = append(perrs, perr)
		}))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		o, _ := s.Create(context.Background(), validDraft())

		repo.EXPECT().Update(gomock.Any(), o.ID, gomock.Any(), 2, testNow).
			Return(entities.Order{}, fmt.Errorf("%w: order_id=%s version=2", interfaces.ErrStaleOrderWrite, o.ID))
		status := entities.OrderStatusApproved
		if _, err := s.Update(context.Background(), o.ID, entities.OrderPatch{Status: &status}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(perrs) != 1 || perrs[0].Op != "update" || !errors.Is(perrs[0].Err, interfaces.ErrStaleOrderWrite) {
			t.Fatalf("expected stale write to be reported, got %+v", perrs)
		}
	})
}

func TestOrderStore_ReadsAreCopies(t *testing.T) {
	s := newTestStore(nil)
	o, _ := s.Create(context.Background(), validDraft())

	got, _ := s.Get(o.ID)
	got.Item = "changed"
	got.Comments = append(got.Comments, entities.Comment{ID: "c"})

	again, _ := s.Get(o.ID)
	if again.Item != "Parafuso" || len(again.Comments) != 0 {
		t.Fatalf("stored order was mutated: %+v", again)
	}
}

func TestOrderStore_List(t *testing.T) {
	s := newTestStore(nil)
	clock := testNow
	s.now = func() time.Time { return clock }

	first, _ := s.Create(context.Background(), validDraft())
	clock = clock.Add(time.Minute)
	second, _ := s.Create(context.Background(), validDraft())

	got := s.List()
	if len(got) != 2 || got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("expected creation order, got %+v", got)
	}
}

func TestOrderStore_Load(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		s := newTestStore(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{ID: "A", Status: entities.OrderStatusPending},
			{ID: "", Status: entities.OrderStatusPending},
			{ID: "B", Status: entities.OrderStatusApproved, Version: 4},
		}, nil)

		if err := s.Load(context.Background()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		a, err := s.Get("A")
		if err != nil || a.Version != 1 {
			t.Fatalf("expected A with version 1, got %+v err=%v", a, err)
		}
		if b, _ := s.Get("B"); b.Version != 4 {
			t.Fatalf("expected B version kept, got %d", b.Version)
		}
		if n := len(s.List()); n != 2 {
			t.Fatalf("expected 2 orders, got %d", n)
		}
	})

	t.Run("failure keeps contents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		s := newTestStore(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)
		o, _ := s.Create(context.Background(), validDraft())

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))
		if err := s.Load(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
		if _, err := s.Get(o.ID); err != nil {
			t.Fatalf("expected order kept, got %v", err)
		}
	})
}

func TestOrderStore_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	s := newTestStore(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)
	o, _ := s.Create(context.Background(), validDraft())

	t.Run("older remote keeps local", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), o.ID).Return(entities.Order{ID: o.ID, Version: 1, Status: entities.OrderStatusApproved}, nil)
		got, err := s.Refresh(context.Background(), o.ID)
		if err != nil || got.Status != entities.OrderStatusPending {
			t.Fatalf("expected local order, got %+v err=%v", got, err)
		}
	})

	t.Run("remote error keeps local", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), o.ID).Return(entities.Order{}, errors.New("timeout"))
		got, err := s.Refresh(context.Background(), o.ID)
		if err != nil || got.Version != 1 {
			t.Fatalf("expected local order, got %+v err=%v", got, err)
		}
	})

	t.Run("newer remote is adopted", func(t *testing.T) {
		remote := o.Clone()
		remote.Status = entities.OrderStatusApproved
		remote.Version = 3
		repo.EXPECT().GetByID(gomock.Any(), o.ID).Return(remote, nil)
		got, err := s.Refresh(context.Background(), o.ID)
		if err != nil || got.Status != entities.OrderStatusApproved || got.Version != 3 {
			t.Fatalf("expected remote order, got %+v err=%v", got, err)
		}
		stored, _ := s.Get(o.ID)
		if stored.Version != 3 {
			t.Fatalf("expected store to adopt remote, got version %d", stored.Version)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := s.Refresh(context.Background(), "missing"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

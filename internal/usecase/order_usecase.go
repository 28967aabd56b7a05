package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"revolux/internal/domain/dashboard"
	"revolux/internal/domain/entities"
	"revolux/internal/domain/workflow"
	"revolux/internal/usecase/interfaces"
)

const DefaultHistoryTopic = "order-history"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidActor   = errors.New("invalid actor")
)

// IOrderUseCase is the presentation-facing surface of the order workflow.
//
// Flow of PerformAction:
//   - load the order (optionally re-read from the document store first);
//   - check the actor may perform the action in the current status;
//   - for initiate-payment, create the provider payment;
//   - apply the action through the workflow engine;
//   - merge the result into the store guarded by the loaded version;
//   - append and publish the history entry.
type IOrderUseCase interface {
	Create(ctx context.Context, actor entities.Actor, draft entities.OrderDraft) (entities.Order, error)
	List(ctx context.Context, filter dashboard.OrderFilter) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	History(ctx context.Context, id string) ([]entities.HistoryEntry, error)
	AllowedActions(ctx context.Context, id string, actor entities.Actor) ([]workflow.Action, error)
	PerformAction(ctx context.Context, id string, actor entities.Actor, action workflow.Action, payload workflow.Payload) (entities.Order, error)
	Statuses() []workflow.StatusDescriptor
	Subscribe(fn func(OrderEvent)) func()
}

type OrderUseCaseConfig struct {
	// RevalidateRemote re-reads the order from the document store before
	// applying an action, so the transition is checked against the latest
	// persisted state.
	RevalidateRemote bool
	HistoryTopic     string
	Payment          PaymentConfig
}

type OrderUseCase struct {
	store     *OrderStore
	history   *HistoryLog
	engine    *workflow.Engine
	gateway   interfaces.IPaymentGateway
	publisher interfaces.IEventPublisher
	cfg       OrderUseCaseConfig
	payments  paymentRefs
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(store *OrderStore, history *HistoryLog, engine *workflow.Engine, gateway interfaces.IPaymentGateway, publisher interfaces.IEventPublisher, cfg OrderUseCaseConfig) *OrderUseCase {
	if engine == nil {
		engine = workflow.NewEngine()
	}
	if cfg.HistoryTopic == "" {
		cfg.HistoryTopic = DefaultHistoryTopic
	}
	return &OrderUseCase{store: store, history: history, engine: engine, gateway: gateway, publisher: publisher, cfg: cfg}
}

func (u *OrderUseCase) Create(ctx context.Context, actor entities.Actor, draft entities.OrderDraft) (entities.Order, error) {
	if strings.TrimSpace(actor.Email) == "" {
		return entities.Order{}, ErrInvalidActor
	}
	o, err := u.store.Create(ctx, draft)
	if err != nil {
		log.Printf("[order][usecase] create failed actor=%s err=%v", actor.Email, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s actor=%s total=%s", o.ID, actor.Email, o.TotalAmount().StringFixed(2))
	return o, nil
}

func (u *OrderUseCase) List(_ context.Context, filter dashboard.OrderFilter) ([]entities.Order, error) {
	return dashboard.Filter(u.store.List(), filter), nil
}

func (u *OrderUseCase) GetByID(_ context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	return u.store.Get(id)
}

func (u *OrderUseCase) History(ctx context.Context, id string) ([]entities.HistoryEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if _, err := u.store.Get(id); err != nil {
		return nil, err
	}
	return u.history.ListByOrder(ctx, id)
}

func (u *OrderUseCase) AllowedActions(ctx context.Context, id string, actor entities.Actor) ([]workflow.Action, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return workflow.AllowedActions(actor.Role, o), nil
}

func (u *OrderUseCase) Statuses() []workflow.StatusDescriptor {
	return workflow.Catalog()
}

func (u *OrderUseCase) Subscribe(fn func(OrderEvent)) func() {
	return u.store.Subscribe(fn)
}

func (u *OrderUseCase) PerformAction(ctx context.Context, id string, actor entities.Actor, action workflow.Action, payload workflow.Payload) (entities.Order, error) {
	id = strings.TrimSpace(id)
	log.Printf("[order][usecase] perform-action start order_id=%s action=%s actor=%s role=%s", id, action, actor.Email, actor.Role)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if strings.TrimSpace(actor.Email) == "" || !actor.Role.Valid() {
		return entities.Order{}, ErrInvalidActor
	}

	current, err := u.load(ctx, id)
	if err != nil {
		log.Printf("[order][usecase] load failed order_id=%s err=%v", id, err)
		return entities.Order{}, err
	}

	if err := workflow.Authorize(actor.Role, action, current.Status); err != nil {
		log.Printf("[order][usecase] action rejected order_id=%s status=%s err=%v", id, current.Status, err)
		return entities.Order{}, err
	}

	if action == workflow.ActionInitiatePayment {
		ref, err := u.createPayment(ctx, current, actor)
		if err != nil {
			return entities.Order{}, err
		}
		payload.PaymentReference = ref
	}

	res, err := u.engine.Apply(current, workflow.Command{Action: action, Actor: actor, Payload: payload})
	if err != nil {
		log.Printf("[order][usecase] action rejected order_id=%s status=%s err=%v", id, current.Status, err)
		return entities.Order{}, err
	}

	patch := entities.DiffOrders(current, res.Order)
	expected := current.Version
	patch.ExpectedVersion = &expected
	updated, err := u.store.Update(ctx, id, patch)
	if err != nil {
		log.Printf("[order][usecase] store update failed order_id=%s err=%v", id, err)
		return entities.Order{}, err
	}
	if action == workflow.ActionInitiatePayment {
		u.commitPayment(current)
	}

	if res.Entry != nil {
		u.record(ctx, *res.Entry)
	}
	log.Printf("[order][usecase] perform-action success order_id=%s action=%s status=%s version=%d", id, action, updated.Status, updated.Version)
	return updated, nil
}

func (u *OrderUseCase) load(ctx context.Context, id string) (entities.Order, error) {
	if u.cfg.RevalidateRemote {
		return u.store.Refresh(ctx, id)
	}
	return u.store.Get(id)
}

// record appends the entry and publishes it. Failures here never undo the
// transition.
func (u *OrderUseCase) record(ctx context.Context, e entities.HistoryEntry) {
	if u.history != nil {
		if err := u.history.Append(ctx, e); err != nil {
			log.Printf("[order][usecase] history append failed order_id=%s entry_id=%s err=%v", e.OrderID, e.ID, err)
		}
	}
	if u.publisher == nil {
		return
	}
	if err := u.publisher.PublishEvent(context.WithoutCancel(ctx), u.cfg.HistoryTopic, e.OrderID, e); err != nil {
		log.Printf("[order][usecase] history publish failed order_id=%s entry_id=%s topic=%s err=%v", e.OrderID, e.ID, u.cfg.HistoryTopic, err)
	}
}

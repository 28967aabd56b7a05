package workflow

import (
	"fmt"
	"strings"
	"time"

	"revolux/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultReminderDays = 7

// EditInput carries the fields an analyst may change. Nil fields are kept.
type EditInput struct {
	SKU            *string
	Item           *string
	Description    *string
	Category       *string
	Quantity       *int
	EstimatedValue *float64
	CostCenter     *string
	Supplier       *string
	Suppliers      *[]string
	Deadline       *time.Time
}

// QuotationInput is a supplier bid as typed by the strategy analyst.
// UnitPrice may be left at zero and is then derived from the total.
type QuotationInput struct {
	SupplierName string
	UnitPrice    float64
	TotalPrice   float64
	DeliveryTime int
}

// Payload holds the action-specific arguments. Each action reads only its
// own fields.
type Payload struct {
	Edit             *EditInput
	ReminderDays     int
	Justification    string
	Observation      string
	Reason           string
	Quotation        *QuotationInput
	QuotationID      string
	PaymentReference string
	TrackingNumber   string
	Comment          string
}

type Command struct {
	Action  Action
	Actor   entities.Actor
	Payload Payload
}

// Result is the order after the action plus the history entry it produced.
// Entry is nil for actions that are not transitions.
type Result struct {
	Order entities.Order
	Entry *entities.HistoryEntry
}

// Engine validates and applies workflow actions. It never mutates the order
// it receives; the only ambient inputs are the clock and the id generator.
type Engine struct {
	now          func() time.Time
	newID        func() string
	reminderDays int
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithDefaultReminderDays sets the deferral period used when the payload
// does not specify one.
func WithDefaultReminderDays(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.reminderDays = days
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
		reminderDays: DefaultReminderDays,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Apply(order entities.Order, cmd Command) (Result, error) {
	if err := Authorize(cmd.Actor.Role, cmd.Action, order.Status); err != nil {
		return Result{}, err
	}

	t := &transition{
		engine: e,
		cmd:    cmd,
		before: order,
		next:   order.Clone(),
		now:    e.now(),
		meta:   map[string]any{},
	}
	if err := t.run(); err != nil {
		return Result{}, err
	}

	res := Result{Order: t.next}
	r := rules[cmd.Action]
	if r.history != "" {
		t.meta["previous_status"] = string(order.Status)
		t.meta["status"] = string(t.next.Status)
		res.Entry = &entities.HistoryEntry{
			ID:        e.newID(),
			OrderID:   order.ID,
			Action:    r.history,
			UserEmail: cmd.Actor.Email,
			Timestamp: t.now,
			Details:   t.details,
			Metadata:  t.meta,
		}
	}
	return res, nil
}

type transition struct {
	engine  *Engine
	cmd     Command
	before  entities.Order
	next    entities.Order
	now     time.Time
	details string
	meta    map[string]any
}

func (t *transition) run() error {
	switch t.cmd.Action {
	case ActionApprove:
		t.next.Status = entities.OrderStatusApproved
		t.details = "Order approved by orders analyst"
	case ActionEdit:
		return t.edit()
	case ActionDefer:
		return t.deferOrder()
	case ActionStrategyApprove:
		t.next.Status = entities.OrderStatusStrategyApproved
		t.ensurePurchaseProcess()
		t.details = "Order approved by strategy"
	case ActionStrategyApproveWithObs:
		obs := strings.TrimSpace(t.cmd.Payload.Observation)
		if obs == "" {
			return t.invalid("observation is required")
		}
		t.next.Status = entities.OrderStatusStrategyApprovedWithObs
		t.next.StrategyObservation = obs
		t.ensurePurchaseProcess()
		t.details = "Order approved by strategy with observations: " + obs
		t.meta["observation"] = obs
	case ActionStrategyReject:
		reason := strings.TrimSpace(t.cmd.Payload.Reason)
		if reason == "" {
			return t.invalid("rejection reason is required")
		}
		t.next.Status = entities.OrderStatusStrategyRejected
		t.details = "Order rejected by strategy: " + reason
		t.meta["reason"] = reason
	case ActionAddQuotation:
		return t.addQuotation()
	case ActionSelectQuotation:
		return t.selectQuotation()
	case ActionInitiatePayment:
		pp := t.next.PurchaseProcess
		if pp == nil {
			return t.missingPurchaseProcess()
		}
		pp.PaymentStatus = entities.PaymentStatusProcessing
		pp.Stage = entities.PurchaseStagePaymentProcessing
		if ref := strings.TrimSpace(t.cmd.Payload.PaymentReference); ref != "" {
			pp.PaymentReference = ref
			t.meta["payment_reference"] = ref
		}
		t.next.Status = entities.OrderStatusPaymentPending
		t.details = "Payment initiated"
		if q, ok := pp.Selected(); ok {
			t.details = fmt.Sprintf("Payment initiated for %s (%s)", q.SupplierName, formatMoney(q.TotalPrice))
			t.meta["amount"] = q.TotalPrice
		}
	case ActionConfirmPayment:
		pp := t.next.PurchaseProcess
		if pp == nil {
			return t.missingPurchaseProcess()
		}
		paidAt := t.now
		pp.PaymentStatus = entities.PaymentStatusCompleted
		pp.PaymentDate = &paidAt
		pp.PaymentBy = t.cmd.Actor.Email
		pp.Stage = entities.PurchaseStagePaymentCompleted
		t.next.Status = entities.OrderStatusPaymentDone
		t.details = "Payment confirmed"
	case ActionScheduleDelivery:
		pp := t.next.PurchaseProcess
		if pp == nil {
			return t.missingPurchaseProcess()
		}
		tracking := strings.TrimSpace(t.cmd.Payload.TrackingNumber)
		if tracking == "" {
			return t.invalid("tracking number is required")
		}
		pp.TrackingNumber = tracking
		pp.Stage = entities.PurchaseStageDeliveryScheduled
		t.next.Status = entities.OrderStatusDeliveryPending
		t.details = "Delivery scheduled, tracking " + tracking
		t.meta["tracking_number"] = tracking
	case ActionConfirmDelivery:
		pp := t.next.PurchaseProcess
		if pp == nil {
			return t.missingPurchaseProcess()
		}
		deliveredAt := t.now
		pp.DeliveryDate = &deliveredAt
		pp.DeliveryConfirmedBy = t.cmd.Actor.Email
		pp.Stage = entities.PurchaseStageDelivered
		t.next.Status = entities.OrderStatusDelivered
		t.details = "Delivery confirmed"
	case ActionAddComment:
		text := strings.TrimSpace(t.cmd.Payload.Comment)
		if text == "" {
			return t.invalid("comment text is required")
		}
		t.next.Comments = append(t.next.Comments, entities.Comment{
			ID:        t.engine.newID(),
			Text:      text,
			User:      t.cmd.Actor.Email,
			Timestamp: t.now,
		})
	default:
		return reject(ErrUnknownAction, t.cmd.Action, t.before.Status, t.cmd.Actor.Role, "")
	}
	return nil
}

// edit only moves pending -> edited when a financial field changes.
func (t *transition) edit() error {
	in := t.cmd.Payload.Edit
	if in == nil {
		return t.invalid("no fields to edit")
	}
	if in.Quantity != nil && *in.Quantity <= 0 {
		return t.invalid("quantity must be positive")
	}
	if in.EstimatedValue != nil && *in.EstimatedValue < 0 {
		return t.invalid("estimated value must not be negative")
	}
	for name, v := range map[string]*string{"sku": in.SKU, "item": in.Item, "cost_center": in.CostCenter} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return t.invalid("%s must not be empty", name)
		}
	}

	previous := map[string]any{}
	setString := func(name string, dst *string, v *string) {
		if v == nil || *dst == *v {
			return
		}
		previous[name] = *dst
		*dst = *v
	}
	setString("sku", &t.next.SKU, in.SKU)
	setString("item", &t.next.Item, in.Item)
	setString("description", &t.next.Description, in.Description)
	setString("category", &t.next.Category, in.Category)
	setString("cost_center", &t.next.CostCenter, in.CostCenter)
	setString("supplier", &t.next.Supplier, in.Supplier)

	financial := false
	if in.Quantity != nil && *in.Quantity != t.next.Quantity {
		previous["quantity"] = t.next.Quantity
		t.next.Quantity = *in.Quantity
		financial = true
	}
	if in.EstimatedValue != nil && *in.EstimatedValue != t.next.EstimatedValue {
		previous["estimated_value"] = t.next.EstimatedValue
		t.next.EstimatedValue = *in.EstimatedValue
		financial = true
	}
	if in.Suppliers != nil {
		previous["suppliers"] = t.next.Suppliers
		t.next.Suppliers = append([]string(nil), (*in.Suppliers)...)
	}
	if in.Deadline != nil {
		if t.next.Deadline != nil {
			previous["deadline"] = t.next.Deadline.Format(time.RFC3339)
		}
		d := *in.Deadline
		t.next.Deadline = &d
	}

	if financial {
		t.next.Status = entities.OrderStatusEdited
	}

	fields := make([]string, 0, len(previous))
	for _, name := range editFieldOrder {
		if _, ok := previous[name]; ok {
			fields = append(fields, name)
		}
	}
	t.details = "Order edited"
	if len(fields) > 0 {
		t.details += ": " + strings.Join(fields, ", ")
	}
	t.meta["previous"] = previous
	return nil
}

var editFieldOrder = []string{
	"sku", "item", "description", "category", "quantity", "estimated_value",
	"cost_center", "supplier", "suppliers", "deadline",
}

func (t *transition) deferOrder() error {
	days := t.cmd.Payload.ReminderDays
	if days < 0 {
		return t.invalid("reminder days must not be negative")
	}
	if days == 0 {
		days = t.engine.reminderDays
	}
	reminder := t.now.AddDate(0, 0, days)
	t.next.Status = entities.OrderStatusDeferred
	t.next.ReminderDate = &reminder

	t.details = fmt.Sprintf("Order deferred, reminder in %d day(s)", days)
	if j := strings.TrimSpace(t.cmd.Payload.Justification); j != "" {
		t.details = fmt.Sprintf("%s - reminder in %d day(s)", j, days)
		t.meta["justification"] = j
	}
	t.meta["reminder_days"] = days
	t.meta["reminder_date"] = reminder.Format(time.RFC3339)
	return nil
}

func (t *transition) addQuotation() error {
	pp := t.next.PurchaseProcess
	if pp == nil {
		return t.missingPurchaseProcess()
	}
	in := t.cmd.Payload.Quotation
	if in == nil {
		return t.invalid("quotation is required")
	}
	name := strings.TrimSpace(in.SupplierName)
	switch {
	case name == "":
		return t.invalid("supplier name is required")
	case in.TotalPrice <= 0:
		return t.invalid("total price must be positive")
	case in.DeliveryTime <= 0:
		return t.invalid("delivery time must be positive")
	case in.UnitPrice < 0:
		return t.invalid("unit price must not be negative")
	}

	unit := in.UnitPrice
	if unit == 0 {
		unit = in.TotalPrice
		if t.next.Quantity > 0 {
			unit = decimal.NewFromFloat(in.TotalPrice).
				Div(decimal.NewFromInt(int64(t.next.Quantity))).
				Round(4).
				InexactFloat64()
		}
	}

	q := entities.SupplierQuotation{
		ID:           t.engine.newID(),
		SupplierID:   entities.Slugify(name),
		SupplierName: name,
		UnitPrice:    unit,
		TotalPrice:   in.TotalPrice,
		DeliveryTime: in.DeliveryTime,
		Status:       entities.QuotationStatusPending,
		SubmittedAt:  t.now,
		SubmittedBy:  t.cmd.Actor.Email,
	}
	pp.Quotations = append(pp.Quotations, q)
	pp.Stage = entities.PurchaseStageQuotationReceived
	t.next.Status = entities.OrderStatusQuotationPending

	t.details = fmt.Sprintf("Quotation received from %s: %s, %d day(s)", name, formatMoney(q.TotalPrice), q.DeliveryTime)
	t.meta["quotation_id"] = q.ID
	t.meta["supplier_name"] = name
	t.meta["total_price"] = q.TotalPrice
	return nil
}

func (t *transition) selectQuotation() error {
	pp := t.next.PurchaseProcess
	if pp == nil {
		return t.missingPurchaseProcess()
	}
	id := strings.TrimSpace(t.cmd.Payload.QuotationID)
	if id == "" {
		return t.invalid("quotation id is required")
	}
	idx := -1
	for i, q := range pp.Quotations {
		if q.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return t.invalid("quotation %s not found", id)
	}
	if pp.Quotations[idx].Status != entities.QuotationStatusPending {
		return t.invalid("quotation %s is %s", id, pp.Quotations[idx].Status)
	}

	pp.Quotations[idx].Status = entities.QuotationStatusApproved
	pp.SelectedQuotation = id
	pp.Stage = entities.PurchaseStageQuotationApproved
	t.next.Status = entities.OrderStatusQuotationApproved

	q := pp.Quotations[idx]
	t.details = fmt.Sprintf("Quotation from %s selected (%s)", q.SupplierName, formatMoney(q.TotalPrice))
	t.meta["quotation_id"] = id
	t.meta["supplier_name"] = q.SupplierName
	return nil
}

// ensurePurchaseProcess opens the purchase pipeline. An existing process is
// kept as is.
func (t *transition) ensurePurchaseProcess() {
	if t.next.PurchaseProcess != nil {
		return
	}
	t.next.PurchaseProcess = &entities.PurchaseProcess{
		ID:            t.engine.newID(),
		OrderID:       t.next.ID,
		Stage:         entities.PurchaseStageQuotationRequest,
		Quotations:    []entities.SupplierQuotation{},
		PaymentStatus: entities.PaymentStatusPending,
	}
	t.meta["purchase_process_id"] = t.next.PurchaseProcess.ID
}

func (t *transition) missingPurchaseProcess() error {
	return reject(ErrInvalidTransition, t.cmd.Action, t.before.Status, t.cmd.Actor.Role, "order has no purchase process")
}

func (t *transition) invalid(format string, args ...any) error {
	return invalidPayload(t.cmd.Action, t.before.Status, t.cmd.Actor.Role, format, args...)
}

func formatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

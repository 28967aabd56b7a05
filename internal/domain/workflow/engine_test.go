package workflow

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"revolux/internal/domain/entities"
)

var fixedNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	n := 0
	return NewEngine(
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
}

func operador() entities.Actor {
	return entities.Actor{Email: "ana@revolux.com", Role: entities.RoleOperador}
}

func gestor() entities.Actor {
	return entities.Actor{Email: "bruno+gestor@revolux.com", Role: entities.RoleGestor}
}

func pendingOrder() entities.Order {
	return entities.Order{
		ID:             "O1",
		SKU:            "SKU-1",
		Item:           "Parafuso sextavado",
		Quantity:       500,
		EstimatedValue: 2.5,
		CostCenter:     "CC-100",
		Status:         entities.OrderStatusPending,
		CreatedAt:      fixedNow.AddDate(0, 0, -3),
		Version:        1,
	}
}

func orderIn(status entities.OrderStatus) entities.Order {
	o := pendingOrder()
	o.Status = status
	if status.Stage() == entities.StagePurchase || status == entities.OrderStatusStrategyApproved ||
		status == entities.OrderStatusStrategyApprovedWithObs {
		o.PurchaseProcess = &entities.PurchaseProcess{
			ID:         "pp-1",
			OrderID:    o.ID,
			Stage:      entities.PurchaseStageQuotationRequest,
			Quotations: []entities.SupplierQuotation{},
		}
	}
	return o
}

// validPayload returns a payload that passes validation for every action.
func validPayload() Payload {
	qty := 10
	return Payload{
		Edit:           &EditInput{Quantity: &qty},
		Observation:    "negociar prazo",
		Reason:         "fora do orçamento",
		Quotation:      &QuotationInput{SupplierName: "Madeiras Brasil", TotalPrice: 100, DeliveryTime: 5},
		QuotationID:    "q-1",
		TrackingNumber: "BR123",
		Comment:        "ok",
	}
}

func TestEngine_Scenarios(t *testing.T) {
	t.Run("operador approves pending order", func(t *testing.T) {
		e := newTestEngine()
		res, err := e.Apply(pendingOrder(), Command{Action: ActionApprove, Actor: operador()})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Order.Status != entities.OrderStatusApproved {
			t.Fatalf("expected approved, got %s", res.Order.Status)
		}
		if res.Entry == nil || res.Entry.Action != entities.HistoryActionApproved {
			t.Fatalf("expected approved history entry, got %+v", res.Entry)
		}
		if res.Entry.OrderID != "O1" || res.Entry.UserEmail != "ana@revolux.com" || !res.Entry.Timestamp.Equal(fixedNow) {
			t.Fatalf("unexpected entry: %+v", res.Entry)
		}
		if res.Entry.Metadata["previous_status"] != "pending" || res.Entry.Metadata["status"] != "approved" {
			t.Fatalf("unexpected metadata: %+v", res.Entry.Metadata)
		}
	})

	t.Run("gestor cannot strategy-approve a pending order", func(t *testing.T) {
		e := newTestEngine()
		_, err := e.Apply(pendingOrder(), Command{Action: ActionStrategyApprove, Actor: gestor()})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("operador cannot strategy-approve", func(t *testing.T) {
		e := newTestEngine()
		_, err := e.Apply(orderIn(entities.OrderStatusApproved), Command{Action: ActionStrategyApprove, Actor: operador()})
		if !errors.Is(err, ErrUnauthorizedAction) {
			t.Fatalf("expected ErrUnauthorizedAction, got %v", err)
		}
		var te *TransitionError
		if !errors.As(err, &te) || te.Role != entities.RoleOperador || te.Action != ActionStrategyApprove {
			t.Fatalf("expected TransitionError with context, got %#v", err)
		}
	})

	t.Run("select quotation approves only the chosen one", func(t *testing.T) {
		o := orderIn(entities.OrderStatusQuotationPending)
		o.PurchaseProcess.Quotations = []entities.SupplierQuotation{
			{ID: "q1", SupplierName: "A", TotalPrice: 10, Status: entities.QuotationStatusPending},
			{ID: "q2", SupplierName: "B", TotalPrice: 20, Status: entities.QuotationStatusPending},
			{ID: "q3", SupplierName: "C", TotalPrice: 30, Status: entities.QuotationStatusPending},
		}
		e := newTestEngine()
		res, err := e.Apply(o, Command{Action: ActionSelectQuotation, Actor: gestor(), Payload: Payload{QuotationID: "q2"}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		pp := res.Order.PurchaseProcess
		if pp.SelectedQuotation != "q2" {
			t.Fatalf("expected q2 selected, got %q", pp.SelectedQuotation)
		}
		approved := 0
		for _, q := range pp.Quotations {
			if q.Status == entities.QuotationStatusApproved {
				approved++
				if q.ID != "q2" {
					t.Fatalf("unexpected approved quotation %s", q.ID)
				}
			} else if q.Status != entities.QuotationStatusPending {
				t.Fatalf("expected %s to stay pending, got %s", q.ID, q.Status)
			}
		}
		if approved != 1 {
			t.Fatalf("expected exactly one approved quotation, got %d", approved)
		}
		if res.Order.Status != entities.OrderStatusQuotationApproved || pp.Stage != entities.PurchaseStageQuotationApproved {
			t.Fatalf("unexpected status/stage: %s/%s", res.Order.Status, pp.Stage)
		}
		if o.PurchaseProcess.Quotations[1].Status != entities.QuotationStatusPending {
			t.Fatalf("input order was mutated")
		}
	})
}

func TestEngine_TransitionClosure(t *testing.T) {
	e := newTestEngine()
	for _, status := range entities.OrderStatuses() {
		for _, action := range Actions() {
			r := rules[action]
			if validFrom(r, status) {
				continue
			}
			// a role the action allows, so only the state precondition can fail
			actor := gestor()
			if r.roles[0] == entities.RoleOperador {
				actor = operador()
			}
			in := orderIn(status)
			snapshot := in.Clone()

			res, err := e.Apply(in, Command{Action: action, Actor: actor, Payload: validPayload()})
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s from %s: expected ErrInvalidTransition, got %v", action, status, err)
			}
			if res.Entry != nil {
				t.Fatalf("%s from %s: unexpected history entry", action, status)
			}
			if !reflect.DeepEqual(in, snapshot) {
				t.Fatalf("%s from %s: order mutated", action, status)
			}
		}
	}
}

func TestEngine_RoleGating(t *testing.T) {
	e := newTestEngine()
	for _, action := range []Action{ActionApprove, ActionEdit, ActionDefer} {
		for _, role := range []entities.Role{entities.RoleGestor, entities.RoleAdmin} {
			for _, status := range entities.OrderStatuses() {
				_, err := e.Apply(orderIn(status), Command{Action: action, Actor: entities.Actor{Email: "x@revolux.com", Role: role}, Payload: validPayload()})
				if !errors.Is(err, ErrUnauthorizedAction) {
					t.Fatalf("%s by %s in %s: expected ErrUnauthorizedAction, got %v", action, role, status, err)
				}
			}
		}
	}
	strategyActions := []Action{
		ActionStrategyApprove, ActionStrategyApproveWithObs, ActionStrategyReject,
		ActionAddQuotation, ActionSelectQuotation, ActionInitiatePayment,
		ActionConfirmPayment, ActionScheduleDelivery, ActionConfirmDelivery,
	}
	for _, action := range strategyActions {
		for _, status := range entities.OrderStatuses() {
			_, err := e.Apply(orderIn(status), Command{Action: action, Actor: operador(), Payload: validPayload()})
			if !errors.Is(err, ErrUnauthorizedAction) {
				t.Fatalf("%s by operador in %s: expected ErrUnauthorizedAction, got %v", action, status, err)
			}
		}
	}
}

func TestEngine_UnknownAction(t *testing.T) {
	_, err := newTestEngine().Apply(pendingOrder(), Command{Action: "archive", Actor: operador()})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestEngine_Edit(t *testing.T) {
	t.Run("non financial edit keeps status", func(t *testing.T) {
		cat := "Fixação"
		res, err := newTestEngine().Apply(pendingOrder(), Command{
			Action:  ActionEdit,
			Actor:   operador(),
			Payload: Payload{Edit: &EditInput{Category: &cat}},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Order.Status != entities.OrderStatusPending {
			t.Fatalf("expected pending, got %s", res.Order.Status)
		}
		if res.Order.Category != "Fixação" {
			t.Fatalf("expected category applied, got %q", res.Order.Category)
		}
		if res.Entry == nil || res.Entry.Action != entities.HistoryActionEdited {
			t.Fatalf("expected edited entry, got %+v", res.Entry)
		}
	})

	t.Run("quantity change flips to edited", func(t *testing.T) {
		qty := 600
		res, err := newTestEngine().Apply(pendingOrder(), Command{
			Action:  ActionEdit,
			Actor:   operador(),
			Payload: Payload{Edit: &EditInput{Quantity: &qty}},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Order.Status != entities.OrderStatusEdited || res.Order.Quantity != 600 {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
		prev, _ := res.Entry.Metadata["previous"].(map[string]any)
		if prev["quantity"] != 500 {
			t.Fatalf("expected previous quantity 500, got %v", prev["quantity"])
		}
	})

	t.Run("same value does not flip", func(t *testing.T) {
		v := 2.5
		res, err := newTestEngine().Apply(pendingOrder(), Command{
			Action:  ActionEdit,
			Actor:   operador(),
			Payload: Payload{Edit: &EditInput{EstimatedValue: &v}},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Order.Status != entities.OrderStatusPending {
			t.Fatalf("expected pending, got %s", res.Order.Status)
		}
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		qty := -1
		_, err := newTestEngine().Apply(pendingOrder(), Command{
			Action:  ActionEdit,
			Actor:   operador(),
			Payload: Payload{Edit: &EditInput{Quantity: &qty}},
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("missing payload rejected", func(t *testing.T) {
		_, err := newTestEngine().Apply(pendingOrder(), Command{Action: ActionEdit, Actor: operador()})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestEngine_Defer(t *testing.T) {
	t.Run("default reminder", func(t *testing.T) {
		res, err := newTestEngine().Apply(pendingOrder(), Command{Action: ActionDefer, Actor: operador(), Payload: Payload{Justification: "aguardar orçamento"}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		want := fixedNow.AddDate(0, 0, DefaultReminderDays)
		if res.Order.Status != entities.OrderStatusDeferred || res.Order.ReminderDate == nil || !res.Order.ReminderDate.Equal(want) {
			t.Fatalf("unexpected order: status=%s reminder=%v", res.Order.Status, res.Order.ReminderDate)
		}
		if res.Entry.Details != "aguardar orçamento - reminder in 7 day(s)" {
			t.Fatalf("unexpected details: %q", res.Entry.Details)
		}
	})

	t.Run("explicit days", func(t *testing.T) {
		res, err := newTestEngine().Apply(pendingOrder(), Command{Action: ActionDefer, Actor: operador(), Payload: Payload{ReminderDays: 3}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Order.ReminderDate.Equal(fixedNow.AddDate(0, 0, 3)) {
			t.Fatalf("unexpected reminder: %v", res.Order.ReminderDate)
		}
	})

	t.Run("configured default", func(t *testing.T) {
		e := NewEngine(WithClock(func() time.Time { return fixedNow }), WithDefaultReminderDays(14))
		res, err := e.Apply(pendingOrder(), Command{Action: ActionDefer, Actor: operador()})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Order.ReminderDate.Equal(fixedNow.AddDate(0, 0, 14)) {
			t.Fatalf("unexpected reminder: %v", res.Order.ReminderDate)
		}
	})

	t.Run("negative days rejected", func(t *testing.T) {
		_, err := newTestEngine().Apply(pendingOrder(), Command{Action: ActionDefer, Actor: operador(), Payload: Payload{ReminderDays: -2}})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestEngine_StrategyDecisions(t *testing.T) {
	t.Run("approve creates purchase process", func(t *testing.T) {
		res, err := newTestEngine().Apply(orderIn(entities.OrderStatusStrategyReview), Command{Action: ActionStrategyApprove, Actor: gestor()})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		pp := res.Order.PurchaseProcess
		if pp == nil || pp.OrderID != "O1" || pp.Stage != entities.PurchaseStageQuotationRequest || len(pp.Quotations) != 0 {
			t.Fatalf("unexpected purchase process: %+v", pp)
		}
	})

	t.Run("approve with observation requires text", func(t *testing.T) {
		_, err := newTestEngine().Apply(orderIn(entities.OrderStatusApproved), Command{Action: ActionStrategyApproveWithObs, Actor: gestor(), Payload: Payload{Observation: "  "}})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("approve with observation stores it", func(t *testing.T) {
		admin := entities.Actor{Email: "root+admin@revolux.com", Role: entities.RoleAdmin}
		res, err := newTestEngine().Apply(orderIn(entities.OrderStatusApproved), Command{Action: ActionStrategyApproveWithObs, Actor: admin, Payload: Payload{Observation: "dividir em dois lotes"}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Order.StrategyObservation != "dividir em dois lotes" || res.Order.PurchaseProcess == nil {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
	})

	t.Run("reject requires reason and is terminal", func(t *testing.T) {
		e := newTestEngine()
		if _, err := e.Apply(orderIn(entities.OrderStatusApproved), Command{Action: ActionStrategyReject, Actor: gestor()}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		res, err := e.Apply(orderIn(entities.OrderStatusApproved), Command{Action: ActionStrategyReject, Actor: gestor(), Payload: Payload{Reason: "duplicado"}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Entry.Metadata["reason"] != "duplicado" {
			t.Fatalf("expected reason in metadata, got %+v", res.Entry.Metadata)
		}
		if got := AllowedActions(entities.RoleAdmin, res.Order); len(got) != 0 {
			t.Fatalf("expected no actions on terminal order, got %v", got)
		}
	})
}

func TestEngine_PurchasePipeline(t *testing.T) {
	e := newTestEngine()
	o := orderIn(entities.OrderStatusApproved)

	step := func(action Action, p Payload) {
		t.Helper()
		res, err := e.Apply(o, Command{Action: action, Actor: gestor(), Payload: p})
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", action, err)
		}
		if res.Entry == nil {
			t.Fatalf("%s: expected history entry", action)
		}
		o = res.Order
	}

	step(ActionStrategyApprove, Payload{})
	step(ActionAddQuotation, Payload{Quotation: &QuotationInput{SupplierName: " Madeiras Brasil ", TotalPrice: 1500, DeliveryTime: 10}})
	step(ActionAddQuotation, Payload{Quotation: &QuotationInput{SupplierName: "Aço Forte", UnitPrice: 2.8, TotalPrice: 1400, DeliveryTime: 15}})

	pp := o.PurchaseProcess
	if len(pp.Quotations) != 2 || o.Status != entities.OrderStatusQuotationPending {
		t.Fatalf("expected two quotations pending, got %d/%s", len(pp.Quotations), o.Status)
	}
	first := pp.Quotations[0]
	if first.SupplierID != "madeiras-brasil" || first.SupplierName != "Madeiras Brasil" || first.UnitPrice != 3 {
		t.Fatalf("unexpected first quotation: %+v", first)
	}
	if pp.Quotations[1].UnitPrice != 2.8 {
		t.Fatalf("expected explicit unit price kept, got %v", pp.Quotations[1].UnitPrice)
	}

	step(ActionSelectQuotation, Payload{QuotationID: pp.Quotations[1].ID})
	step(ActionInitiatePayment, Payload{PaymentReference: "mp-123"})
	if o.PurchaseProcess.PaymentStatus != entities.PaymentStatusProcessing || o.PurchaseProcess.PaymentReference != "mp-123" {
		t.Fatalf("unexpected payment state: %+v", o.PurchaseProcess)
	}
	step(ActionConfirmPayment, Payload{})
	if o.PurchaseProcess.PaymentStatus != entities.PaymentStatusCompleted || o.PurchaseProcess.PaymentBy != gestor().Email || o.PurchaseProcess.PaymentDate == nil {
		t.Fatalf("unexpected payment state: %+v", o.PurchaseProcess)
	}
	step(ActionScheduleDelivery, Payload{TrackingNumber: "BR999"})
	step(ActionConfirmDelivery, Payload{})

	if o.Status != entities.OrderStatusDelivered || o.PurchaseProcess.Stage != entities.PurchaseStageDelivered {
		t.Fatalf("expected delivered, got %s/%s", o.Status, o.PurchaseProcess.Stage)
	}
	if o.PurchaseProcess.DeliveryConfirmedBy != gestor().Email || o.PurchaseProcess.TrackingNumber != "BR999" {
		t.Fatalf("unexpected delivery data: %+v", o.PurchaseProcess)
	}
}

func TestEngine_QuotationValidation(t *testing.T) {
	cases := []struct {
		name string
		in   *QuotationInput
	}{
		{"missing", nil},
		{"no supplier", &QuotationInput{TotalPrice: 10, DeliveryTime: 1}},
		{"zero total", &QuotationInput{SupplierName: "A", DeliveryTime: 1}},
		{"zero delivery", &QuotationInput{SupplierName: "A", TotalPrice: 10}},
		{"negative unit", &QuotationInput{SupplierName: "A", TotalPrice: 10, DeliveryTime: 1, UnitPrice: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newTestEngine().Apply(orderIn(entities.OrderStatusStrategyApproved), Command{Action: ActionAddQuotation, Actor: gestor(), Payload: Payload{Quotation: tc.in}})
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	t.Run("without purchase process", func(t *testing.T) {
		o := orderIn(entities.OrderStatusStrategyApproved)
		o.PurchaseProcess = nil
		_, err := newTestEngine().Apply(o, Command{Action: ActionAddQuotation, Actor: gestor(), Payload: validPayload()})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("select unknown quotation", func(t *testing.T) {
		_, err := newTestEngine().Apply(orderIn(entities.OrderStatusQuotationPending), Command{Action: ActionSelectQuotation, Actor: gestor(), Payload: Payload{QuotationID: "nope"}})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("tracking number required", func(t *testing.T) {
		_, err := newTestEngine().Apply(orderIn(entities.OrderStatusPaymentDone), Command{Action: ActionScheduleDelivery, Actor: gestor()})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestEngine_AddComment(t *testing.T) {
	t.Run("gestor comments on purchase order", func(t *testing.T) {
		res, err := newTestEngine().Apply(orderIn(entities.OrderStatusPaymentPending), Command{Action: ActionAddComment, Actor: gestor(), Payload: Payload{Comment: "  verificar NF  "}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Entry != nil {
			t.Fatalf("comments must not produce history, got %+v", res.Entry)
		}
		if res.Order.Status != entities.OrderStatusPaymentPending {
			t.Fatalf("status changed: %s", res.Order.Status)
		}
		if len(res.Order.Comments) != 1 || res.Order.Comments[0].Text != "verificar NF" || res.Order.Comments[0].User != gestor().Email {
			t.Fatalf("unexpected comments: %+v", res.Order.Comments)
		}
	})

	t.Run("operador only on pending", func(t *testing.T) {
		_, err := newTestEngine().Apply(orderIn(entities.OrderStatusApproved), Command{Action: ActionAddComment, Actor: operador(), Payload: Payload{Comment: "x"}})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("terminal rejected", func(t *testing.T) {
		_, err := newTestEngine().Apply(orderIn(entities.OrderStatusDelivered), Command{Action: ActionAddComment, Actor: gestor(), Payload: Payload{Comment: "x"}})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := newTestEngine().Apply(pendingOrder(), Command{Action: ActionAddComment, Actor: operador(), Payload: Payload{Comment: " "}})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

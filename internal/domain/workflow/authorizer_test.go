package workflow

import (
	"errors"
	"slices"
	"testing"

	"revolux/internal/domain/entities"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name   string
		role   entities.Role
		action Action
		status entities.OrderStatus
		want   error
	}{
		{"operador approves pending", entities.RoleOperador, ActionApprove, entities.OrderStatusPending, nil},
		{"operador comments pending", entities.RoleOperador, ActionAddComment, entities.OrderStatusPending, nil},
		{"operador comments edited", entities.RoleOperador, ActionAddComment, entities.OrderStatusEdited, ErrInvalidTransition},
		{"gestor approve is denied", entities.RoleGestor, ActionApprove, entities.OrderStatusPending, ErrUnauthorizedAction},
		{"admin strategy review", entities.RoleAdmin, ActionStrategyReject, entities.OrderStatusStrategyReview, nil},
		{"gestor reject after delivery", entities.RoleGestor, ActionStrategyReject, entities.OrderStatusDelivered, ErrInvalidTransition},
		{"operador payment denied even when valid from", entities.RoleOperador, ActionConfirmPayment, entities.OrderStatusPaymentPending, ErrUnauthorizedAction},
		{"unknown status", entities.RoleGestor, ActionAddComment, entities.OrderStatus("lost"), ErrInvalidTransition},
		{"unknown action", entities.RoleAdmin, Action("cancel"), entities.OrderStatusPending, ErrUnknownAction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.role, tc.action, tc.status)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAllowedActions(t *testing.T) {
	t.Run("operador on pending", func(t *testing.T) {
		got := AllowedActions(entities.RoleOperador, pendingOrder())
		want := []Action{ActionApprove, ActionEdit, ActionDefer, ActionAddComment}
		if !slices.Equal(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("gestor on approved", func(t *testing.T) {
		got := AllowedActions(entities.RoleGestor, orderIn(entities.OrderStatusApproved))
		want := []Action{ActionStrategyApprove, ActionStrategyApproveWithObs, ActionStrategyReject, ActionAddComment}
		if !slices.Equal(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("deferred order only takes comments from strategy", func(t *testing.T) {
		o := orderIn(entities.OrderStatusDeferred)
		if got := AllowedActions(entities.RoleOperador, o); len(got) != 0 {
			t.Fatalf("expected nothing for operador, got %v", got)
		}
		if !CanPerform(entities.RoleAdmin, ActionAddComment, o) {
			t.Fatalf("expected admin to comment")
		}
	})
}

func TestDescribe(t *testing.T) {
	d := Describe(entities.OrderStatusApproved)
	if d.Status != entities.OrderStatusApproved || d.Stage != entities.StageStrategy {
		t.Fatalf("unexpected info: %+v", d.StatusInfo)
	}
	want := []entities.OrderStatus{
		entities.OrderStatusStrategyApproved,
		entities.OrderStatusStrategyApprovedWithObs,
		entities.OrderStatusStrategyRejected,
	}
	if !slices.Equal(d.Successors, want) {
		t.Fatalf("expected successors %v, got %v", want, d.Successors)
	}
	if len(d.Actions[entities.RoleOperador]) != 0 {
		t.Fatalf("expected no operador actions, got %v", d.Actions[entities.RoleOperador])
	}

	if got := Describe(entities.OrderStatusDelivered); len(got.Successors) != 0 {
		t.Fatalf("terminal status must have no successors, got %v", got.Successors)
	}

	if n := len(Catalog()); n != len(entities.OrderStatuses()) {
		t.Fatalf("expected %d catalog entries, got %d", len(entities.OrderStatuses()), n)
	}
}

func TestParseAction(t *testing.T) {
	if a, ok := ParseAction("select-quotation"); !ok || a != ActionSelectQuotation {
		t.Fatalf("expected select-quotation, got %q %v", a, ok)
	}
	if _, ok := ParseAction("delete"); ok {
		t.Fatalf("expected unknown action")
	}
	if ActionAddComment.IsTransition() || !ActionDefer.IsTransition() {
		t.Fatalf("unexpected IsTransition results")
	}
}

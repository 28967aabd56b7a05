package workflow

import (
	"slices"

	"revolux/internal/domain/entities"
)

// Authorize decides whether role may perform action on an order in status.
//
// The role check comes first and does not depend on the status, so a role
// lacking permission always gets ErrUnauthorizedAction. Then the status
// precondition is checked (ErrInvalidTransition). Analysts only act on
// orders they own, i.e. pending ones, including comments.
func Authorize(role entities.Role, action Action, status entities.OrderStatus) error {
	r, ok := rules[action]
	if !ok {
		return reject(ErrUnknownAction, action, status, role, "")
	}
	if !slices.Contains(r.roles, role) {
		return reject(ErrUnauthorizedAction, action, status, role, "")
	}
	if !validFrom(r, status) {
		return reject(ErrInvalidTransition, action, status, role, "")
	}
	if role == entities.RoleOperador && status != entities.OrderStatusPending {
		return reject(ErrInvalidTransition, action, status, role, "order is no longer with the orders analyst")
	}
	return nil
}

// CanPerform is the boolean form of Authorize for the presentation layer.
func CanPerform(role entities.Role, action Action, order entities.Order) bool {
	return Authorize(role, action, order.Status) == nil
}

// AllowedActions lists what role may do with order right now.
func AllowedActions(role entities.Role, order entities.Order) []Action {
	out := []Action{}
	for _, a := range actionOrder {
		if CanPerform(role, a, order) {
			out = append(out, a)
		}
	}
	return out
}

func validFrom(r rule, status entities.OrderStatus) bool {
	if !status.Valid() || status.IsTerminal() {
		return false
	}
	if len(r.from) == 0 {
		return true
	}
	return slices.Contains(r.from, status)
}

package workflow

import "revolux/internal/domain/entities"

// Action is a workflow command a user can issue against an order.
type Action string

const (
	ActionApprove                Action = "approve"
	ActionEdit                   Action = "edit"
	ActionDefer                  Action = "defer"
	ActionAddComment             Action = "add-comment"
	ActionStrategyApprove        Action = "strategy-approve"
	ActionStrategyApproveWithObs Action = "strategy-approve-with-obs"
	ActionStrategyReject         Action = "strategy-reject"
	ActionAddQuotation           Action = "add-quotation"
	ActionSelectQuotation        Action = "select-quotation"
	ActionInitiatePayment        Action = "initiate-payment"
	ActionConfirmPayment         Action = "confirm-payment"
	ActionScheduleDelivery       Action = "schedule-delivery"
	ActionConfirmDelivery        Action = "confirm-delivery"
)

// rule is one row of the transition table.
//
// An empty to keeps the current status. An empty from means "any
// non-terminal status". history is empty for actions that are not
// transitions (comments).
type rule struct {
	from    []entities.OrderStatus
	roles   []entities.Role
	to      entities.OrderStatus
	history entities.HistoryAction
}

var (
	analystRoles  = []entities.Role{entities.RoleOperador}
	strategyRoles = []entities.Role{entities.RoleGestor, entities.RoleAdmin}
	everyRole     = []entities.Role{entities.RoleOperador, entities.RoleGestor, entities.RoleAdmin}

	strategyInbox = []entities.OrderStatus{entities.OrderStatusApproved, entities.OrderStatusStrategyReview}
)

// actionOrder fixes the iteration order used when listing actions.
var actionOrder = []Action{
	ActionApprove,
	ActionEdit,
	ActionDefer,
	ActionStrategyApprove,
	ActionStrategyApproveWithObs,
	ActionStrategyReject,
	ActionAddQuotation,
	ActionSelectQuotation,
	ActionInitiatePayment,
	ActionConfirmPayment,
	ActionScheduleDelivery,
	ActionConfirmDelivery,
	ActionAddComment,
}

var rules = map[Action]rule{
	ActionApprove: {
		from:    []entities.OrderStatus{entities.OrderStatusPending},
		roles:   analystRoles,
		to:      entities.OrderStatusApproved,
		history: entities.HistoryActionApproved,
	},
	ActionEdit: {
		from:    []entities.OrderStatus{entities.OrderStatusPending},
		roles:   analystRoles,
		to:      entities.OrderStatusEdited,
		history: entities.HistoryActionEdited,
	},
	ActionDefer: {
		from:    []entities.OrderStatus{entities.OrderStatusPending},
		roles:   analystRoles,
		to:      entities.OrderStatusDeferred,
		history: entities.HistoryActionDeferred,
	},
	ActionStrategyApprove: {
		from:    strategyInbox,
		roles:   strategyRoles,
		to:      entities.OrderStatusStrategyApproved,
		history: entities.HistoryActionStrategyApproved,
	},
	ActionStrategyApproveWithObs: {
		from:    strategyInbox,
		roles:   strategyRoles,
		to:      entities.OrderStatusStrategyApprovedWithObs,
		history: entities.HistoryActionStrategyApprovedWithObs,
	},
	ActionStrategyReject: {
		from:    strategyInbox,
		roles:   strategyRoles,
		to:      entities.OrderStatusStrategyRejected,
		history: entities.HistoryActionStrategyRejected,
	},
	ActionAddQuotation: {
		from: []entities.OrderStatus{
			entities.OrderStatusStrategyApproved,
			entities.OrderStatusStrategyApprovedWithObs,
			entities.OrderStatusPurchaseRequest,
			entities.OrderStatusQuotationPending,
		},
		roles:   strategyRoles,
		to:      entities.OrderStatusQuotationPending,
		history: entities.HistoryActionQuotationReceived,
	},
	ActionSelectQuotation: {
		from:    []entities.OrderStatus{entities.OrderStatusQuotationPending},
		roles:   strategyRoles,
		to:      entities.OrderStatusQuotationApproved,
		history: entities.HistoryActionQuotationApproved,
	},
	ActionInitiatePayment: {
		from:    []entities.OrderStatus{entities.OrderStatusQuotationApproved},
		roles:   strategyRoles,
		to:      entities.OrderStatusPaymentPending,
		history: entities.HistoryActionPaymentInitiated,
	},
	ActionConfirmPayment: {
		from:    []entities.OrderStatus{entities.OrderStatusPaymentPending},
		roles:   strategyRoles,
		to:      entities.OrderStatusPaymentDone,
		history: entities.HistoryActionPaymentCompleted,
	},
	ActionScheduleDelivery: {
		from:    []entities.OrderStatus{entities.OrderStatusPaymentDone},
		roles:   strategyRoles,
		to:      entities.OrderStatusDeliveryPending,
		history: entities.HistoryActionDeliveryScheduled,
	},
	ActionConfirmDelivery: {
		from:    []entities.OrderStatus{entities.OrderStatusDeliveryPending},
		roles:   strategyRoles,
		to:      entities.OrderStatusDelivered,
		history: entities.HistoryActionDelivered,
	},
	ActionAddComment: {
		roles: everyRole,
	},
}

// Actions returns every known action.
func Actions() []Action {
	out := make([]Action, len(actionOrder))
	copy(out, actionOrder)
	return out
}

// ParseAction validates an action name.
func ParseAction(v string) (Action, bool) {
	a := Action(v)
	_, ok := rules[a]
	return a, ok
}

// IsTransition reports whether an accepted action records a history entry.
func (a Action) IsTransition() bool {
	return rules[a].history != ""
}

// StatusDescriptor is the catalog view of a status: its metadata plus the
// actions and successor states derived from the transition table.
type StatusDescriptor struct {
	entities.StatusInfo
	Actions    map[entities.Role][]Action `json:"actions"`
	Successors []entities.OrderStatus     `json:"successors"`
}

// Describe derives the permitted actions per role and the successor states
// of a status from the transition table.
func Describe(status entities.OrderStatus) StatusDescriptor {
	d := StatusDescriptor{
		StatusInfo: status.Info(),
		Actions:    map[entities.Role][]Action{},
		Successors: []entities.OrderStatus{},
	}
	seen := map[entities.OrderStatus]bool{}
	for _, role := range everyRole {
		d.Actions[role] = []Action{}
	}
	for _, a := range actionOrder {
		for _, role := range everyRole {
			if Authorize(role, a, status) == nil {
				d.Actions[role] = append(d.Actions[role], a)
			}
		}
		r := rules[a]
		if r.to != "" && validFrom(r, status) && !seen[r.to] {
			seen[r.to] = true
			d.Successors = append(d.Successors, r.to)
		}
	}
	return d
}

// Catalog describes every status.
func Catalog() []StatusDescriptor {
	statuses := entities.OrderStatuses()
	out := make([]StatusDescriptor, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Describe(s))
	}
	return out
}

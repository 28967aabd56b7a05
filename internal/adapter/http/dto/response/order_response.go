package response

import (
	"time"

	"revolux/internal/domain/dashboard"
	"revolux/internal/domain/entities"
	"revolux/internal/domain/workflow"
)

// OrderResponse is the stored order plus the values the UI derives from it.
type OrderResponse struct {
	entities.Order
	TotalValue        float64                `json:"total_value"`
	StatusLabel       string                 `json:"status_label"`
	Stage             entities.StatusStage   `json:"stage"`
	Urgency           dashboard.UrgencyLevel `json:"urgency"`
	DaysUntilDeadline *int                   `json:"days_until_deadline,omitempty"`
}

func FromOrder(o entities.Order, now time.Time) OrderResponse {
	res := OrderResponse{
		Order:       o,
		TotalValue:  o.TotalValue(),
		StatusLabel: o.Status.Label(),
		Stage:       o.Status.Stage(),
		Urgency:     dashboard.Urgency(o, now),
	}
	if days, ok := dashboard.DaysUntilDeadline(o, now); ok {
		res.DaysUntilDeadline = &days
	}
	return res
}

func FromOrders(orders []entities.Order, now time.Time) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o, now))
	}
	return out
}

type HistoryEntryResponse struct {
	entities.HistoryEntry
	ActionLabel string `json:"action_label"`
}

var historyLabels = map[entities.HistoryAction]string{
	entities.HistoryActionEdited:                  "Pedido editado",
	entities.HistoryActionDeferred:                "Pedido adiado",
	entities.HistoryActionApproved:                "Pedido aprovado",
	entities.HistoryActionStrategyApproved:        "Aprovado pela estratégia",
	entities.HistoryActionStrategyApprovedWithObs: "Aprovado com observação",
	entities.HistoryActionStrategyRejected:        "Reprovado pela estratégia",
	entities.HistoryActionQuotationReceived:       "Cotação recebida",
	entities.HistoryActionQuotationApproved:       "Cotação aprovada",
	entities.HistoryActionPaymentInitiated:        "Pagamento iniciado",
	entities.HistoryActionPaymentCompleted:        "Pagamento concluído",
	entities.HistoryActionDeliveryScheduled:       "Entrega agendada",
	entities.HistoryActionDelivered:               "Entregue",
}

func FromHistory(entries []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		label, ok := historyLabels[e.Action]
		if !ok {
			label = string(e.Action)
		}
		out = append(out, HistoryEntryResponse{HistoryEntry: e, ActionLabel: label})
	}
	return out
}

// AllowedActionsResponse lists what the caller may do with an order now.
type AllowedActionsResponse struct {
	OrderID string            `json:"order_id"`
	Status  string            `json:"status"`
	Role    entities.Role     `json:"role"`
	Actions []workflow.Action `json:"actions"`
}

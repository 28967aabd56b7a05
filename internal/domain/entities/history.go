package entities

import "time"

// HistoryAction names the accepted workflow transition an entry records.
type HistoryAction string

const (
	HistoryActionEdited                  HistoryAction = "edited"
	HistoryActionDeferred                HistoryAction = "deferred"
	HistoryActionApproved                HistoryAction = "approved"
	HistoryActionStrategyApproved        HistoryAction = "strategy-approved"
	HistoryActionStrategyApprovedWithObs HistoryAction = "strategy-approved-with-obs"
	HistoryActionStrategyRejected        HistoryAction = "strategy-rejected"
	HistoryActionQuotationReceived       HistoryAction = "quotation-received"
	HistoryActionQuotationApproved       HistoryAction = "quotation-approved"
	HistoryActionPaymentInitiated        HistoryAction = "payment-initiated"
	HistoryActionPaymentCompleted        HistoryAction = "payment-completed"
	HistoryActionDeliveryScheduled       HistoryAction = "delivery-scheduled"
	HistoryActionDelivered               HistoryAction = "delivered"
)

// HistoryEntry is the immutable audit record of one accepted transition.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// OrderID is a weak reference: entries outlive the order they describe.
type HistoryEntry struct {
	ID        string         `json:"id"`
	OrderID   string         `json:"order_id"`
	Action    HistoryAction  `json:"action"`
	UserEmail string         `json:"user_email"`
	Timestamp time.Time      `json:"timestamp"`
	Details   string         `json:"details"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Clone returns a copy of e whose Metadata shares no maps or slices with e.
func (e HistoryEntry) Clone() HistoryEntry {
	if e.Metadata != nil {
		e.Metadata = cloneValue(e.Metadata).(map[string]any)
	}
	return e
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, item := range t {
			out[k] = item
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

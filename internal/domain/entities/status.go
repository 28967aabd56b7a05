package entities

// OrderStatus represents the lifecycle of a purchase order.
//
// Domain notes:
//   - The workflow package is the only writer of Order.Status.
//   - Labels, stages and terminal/actionable flags live in statusCatalog and
//     nowhere else; every view resolves them through the methods below.
type OrderStatus string

const (
	OrderStatusPending                 OrderStatus = "pending"
	OrderStatusEdited                  OrderStatus = "edited"
	OrderStatusDeferred                OrderStatus = "deferred"
	OrderStatusApproved                OrderStatus = "approved"
	OrderStatusStrategyReview          OrderStatus = "strategy-review"
	OrderStatusStrategyApproved        OrderStatus = "strategy-approved"
	OrderStatusStrategyApprovedWithObs OrderStatus = "strategy-approved-with-obs"
	OrderStatusStrategyRejected        OrderStatus = "strategy-rejected"
	OrderStatusPurchaseRequest         OrderStatus = "purchase-request"
	OrderStatusQuotationPending        OrderStatus = "quotation-pending"
	OrderStatusQuotationApproved       OrderStatus = "quotation-approved"
	OrderStatusPaymentPending          OrderStatus = "payment-pending"
	OrderStatusPaymentDone             OrderStatus = "payment-done"
	OrderStatusDeliveryPending         OrderStatus = "delivery-pending"
	OrderStatusDelivered               OrderStatus = "delivered"
)

// StatusStage groups statuses by the team that owns them.
type StatusStage string

const (
	StageAnalyst  StatusStage = "analyst"
	StageStrategy StatusStage = "strategy"
	StagePurchase StatusStage = "purchase"
	StageClosed   StatusStage = "closed"
)

// StatusInfo is the catalog entry of a status.
type StatusInfo struct {
	Status   OrderStatus `json:"status"`
	Label    string      `json:"label"`
	Stage    StatusStage `json:"stage"`
	Terminal bool        `json:"terminal"`
}

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusEdited,
	OrderStatusDeferred,
	OrderStatusApproved,
	OrderStatusStrategyReview,
	OrderStatusStrategyApproved,
	OrderStatusStrategyApprovedWithObs,
	OrderStatusStrategyRejected,
	OrderStatusPurchaseRequest,
	OrderStatusQuotationPending,
	OrderStatusQuotationApproved,
	OrderStatusPaymentPending,
	OrderStatusPaymentDone,
	OrderStatusDeliveryPending,
	OrderStatusDelivered,
}

var statusCatalog = map[OrderStatus]StatusInfo{
	OrderStatusPending:                 {Label: "Pending analysis", Stage: StageAnalyst},
	OrderStatusEdited:                  {Label: "Edited", Stage: StageAnalyst},
	OrderStatusDeferred:                {Label: "Deferred", Stage: StageAnalyst},
	OrderStatusApproved:                {Label: "Awaiting strategy review", Stage: StageStrategy},
	OrderStatusStrategyReview:          {Label: "In strategy review", Stage: StageStrategy},
	OrderStatusStrategyApproved:        {Label: "Approved by strategy", Stage: StageStrategy},
	OrderStatusStrategyApprovedWithObs: {Label: "Approved with observations", Stage: StageStrategy},
	OrderStatusStrategyRejected:        {Label: "Rejected by strategy", Stage: StageStrategy, Terminal: true},
	OrderStatusPurchaseRequest:         {Label: "Purchase request", Stage: StagePurchase},
	OrderStatusQuotationPending:        {Label: "Awaiting quotation", Stage: StagePurchase},
	OrderStatusQuotationApproved:       {Label: "Quotation approved", Stage: StagePurchase},
	OrderStatusPaymentPending:          {Label: "Awaiting payment", Stage: StagePurchase},
	OrderStatusPaymentDone:             {Label: "Payment done", Stage: StagePurchase},
	OrderStatusDeliveryPending:         {Label: "Awaiting delivery", Stage: StagePurchase},
	OrderStatusDelivered:               {Label: "Delivered", Stage: StageClosed, Terminal: true},
}

// OrderStatuses returns every known status in lifecycle order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

func (s OrderStatus) Valid() bool {
	_, ok := statusCatalog[s]
	return ok
}

func (s OrderStatus) Info() StatusInfo {
	info, ok := statusCatalog[s]
	if !ok {
		return StatusInfo{Status: s, Label: string(s)}
	}
	info.Status = s
	return info
}

func (s OrderStatus) Label() string { return s.Info().Label }

func (s OrderStatus) Stage() StatusStage { return s.Info().Stage }

// IsTerminal reports whether no further action is accepted.
func (s OrderStatus) IsTerminal() bool { return s.Info().Terminal }

// IsActionable reports whether somebody still has to act on the order.
// Deferred orders wait for their reminder and are not actionable.
func (s OrderStatus) IsActionable() bool {
	return s.Valid() && !s.IsTerminal() && s != OrderStatusDeferred
}

// IsPurchasePipeline reports whether the order is between purchase request
// and delivery.
func (s OrderStatus) IsPurchasePipeline() bool {
	return s.Stage() == StagePurchase
}

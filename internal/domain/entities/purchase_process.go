package entities

import "time"

// PurchaseStage tracks where an order is inside the purchase pipeline.
type PurchaseStage string

const (
	PurchaseStageQuotationRequest  PurchaseStage = "quotation-request"
	PurchaseStageQuotationReceived PurchaseStage = "quotation-received"
	PurchaseStageQuotationApproved PurchaseStage = "quotation-approved"
	PurchaseStagePaymentProcessing PurchaseStage = "payment-processing"
	PurchaseStagePaymentCompleted  PurchaseStage = "payment-completed"
	PurchaseStageDeliveryScheduled PurchaseStage = "delivery-scheduled"
	PurchaseStageDelivered         PurchaseStage = "delivered"
)

// PaymentStatus represents the payment processing outcome of a purchase.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
)

// QuotationStatus is the review outcome of a supplier bid.
type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "pending"
	QuotationStatusApproved QuotationStatus = "approved"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// SupplierQuotation is one supplier's price and lead-time bid.
type SupplierQuotation struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	UnitPrice    float64         `json:"unit_price"`
	TotalPrice   float64         `json:"total_price"`
	DeliveryTime int             `json:"delivery_time"`
	Status       QuotationStatus `json:"status"`
	SubmittedAt  time.Time       `json:"submitted_at"`
	SubmittedBy  string          `json:"submitted_by,omitempty"`
}

// PurchaseProcess is created when strategy approves an order and is never
// removed afterwards.
//
// Invariants:
//   - at most one quotation has status approved;
//   - SelectedQuotation, once set, is the id of an entry in Quotations.
//
// PaymentReference keeps the payment provider id for reconciliation.
type PurchaseProcess struct {
	ID                  string              `json:"id"`
	OrderID             string              `json:"order_id"`
	Stage               PurchaseStage       `json:"stage"`
	Quotations          []SupplierQuotation `json:"quotations"`
	SelectedQuotation   string              `json:"selected_quotation,omitempty"`
	PaymentStatus       PaymentStatus       `json:"payment_status,omitempty"`
	PaymentDate         *time.Time          `json:"payment_date,omitempty"`
	PaymentBy           string              `json:"payment_by,omitempty"`
	PaymentReference    string              `json:"payment_reference,omitempty"`
	TrackingNumber      string              `json:"tracking_number,omitempty"`
	DeliveryDate        *time.Time          `json:"delivery_date,omitempty"`
	DeliveryConfirmedBy string              `json:"delivery_confirmed_by,omitempty"`
	Notes               string              `json:"notes,omitempty"`
}

func (p PurchaseProcess) Clone() PurchaseProcess {
	c := p
	c.Quotations = append([]SupplierQuotation{}, p.Quotations...)
	c.PaymentDate = cloneTime(p.PaymentDate)
	c.DeliveryDate = cloneTime(p.DeliveryDate)
	return c
}

// Quotation looks up a quotation by id.
func (p PurchaseProcess) Quotation(id string) (SupplierQuotation, bool) {
	for _, q := range p.Quotations {
		if q.ID == id {
			return q, true
		}
	}
	return SupplierQuotation{}, false
}

// Selected returns the selected quotation, if any.
func (p PurchaseProcess) Selected() (SupplierQuotation, bool) {
	if p.SelectedQuotation == "" {
		return SupplierQuotation{}, false
	}
	return p.Quotation(p.SelectedQuotation)
}

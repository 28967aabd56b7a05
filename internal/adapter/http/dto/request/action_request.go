package request

import (
	"time"

	"revolux/internal/domain/workflow"
)

// EditRequest lists the editable order fields. Absent fields are kept.
type EditRequest struct {
	SKU            *string    `json:"sku"`
	Item           *string    `json:"item"`
	Description    *string    `json:"description"`
	Category       *string    `json:"category"`
	Quantity       *int       `json:"quantity"`
	EstimatedValue *float64   `json:"estimated_value"`
	CostCenter     *string    `json:"cost_center"`
	Supplier       *string    `json:"supplier"`
	Suppliers      *[]string  `json:"suppliers"`
	Deadline       *time.Time `json:"deadline"`
}

type QuotationRequest struct {
	SupplierName string  `json:"supplier_name"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
	DeliveryTime int     `json:"delivery_time"`
}

// ActionRequest is the body of POST /v1/orders/:id/actions/:action. Each
// action reads only its own fields:
//
//	edit                      -> edit
//	defer                     -> reminder_days, justification
//	strategy-approve-with-obs -> observation
//	strategy-reject           -> reason
//	add-quotation             -> quotation
//	select-quotation          -> quotation_id
//	schedule-delivery         -> tracking_number
//	add-comment               -> comment
type ActionRequest struct {
	Edit           *EditRequest      `json:"edit"`
	ReminderDays   int               `json:"reminder_days"`
	Justification  string            `json:"justification"`
	Observation    string            `json:"observation"`
	Reason         string            `json:"reason"`
	Quotation      *QuotationRequest `json:"quotation"`
	QuotationID    string            `json:"quotation_id"`
	TrackingNumber string            `json:"tracking_number"`
	Comment        string            `json:"comment"`
}

func (r ActionRequest) ToPayload() workflow.Payload {
	p := workflow.Payload{
		ReminderDays:   r.ReminderDays,
		Justification:  r.Justification,
		Observation:    r.Observation,
		Reason:         r.Reason,
		QuotationID:    r.QuotationID,
		TrackingNumber: r.TrackingNumber,
		Comment:        r.Comment,
	}
	if e := r.Edit; e != nil {
		p.Edit = &workflow.EditInput{
			SKU:            e.SKU,
			Item:           e.Item,
			Description:    e.Description,
			Category:       e.Category,
			Quantity:       e.Quantity,
			EstimatedValue: e.EstimatedValue,
			CostCenter:     e.CostCenter,
			Supplier:       e.Supplier,
			Suppliers:      e.Suppliers,
			Deadline:       e.Deadline,
		}
	}
	if q := r.Quotation; q != nil {
		p.Quotation = &workflow.QuotationInput{
			SupplierName: q.SupplierName,
			UnitPrice:    q.UnitPrice,
			TotalPrice:   q.TotalPrice,
			DeliveryTime: q.DeliveryTime,
		}
	}
	return p
}

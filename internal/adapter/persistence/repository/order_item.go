package repository

import (
	"revolux/internal/domain/entities"
)

type commentItem struct {
	ID        string `dynamodbav:"id"`
	Text      string `dynamodbav:"text"`
	User      string `dynamodbav:"user"`
	Timestamp string `dynamodbav:"timestamp"`
}

type quotationItem struct {
	ID           string `dynamodbav:"id"`
	SupplierID   string `dynamodbav:"supplier_id"`
	SupplierName string `dynamodbav:"supplier_name"`
	UnitPrice    string `dynamodbav:"unit_price"`
	TotalPrice   string `dynamodbav:"total_price"`
	DeliveryTime int    `dynamodbav:"delivery_time"`
	Status       string `dynamodbav:"status"`
	SubmittedAt  string `dynamodbav:"submitted_at"`
	SubmittedBy  string `dynamodbav:"submitted_by,omitempty"`
}

type purchaseProcessItem struct {
	ID                  string          `dynamodbav:"id"`
	OrderID             string          `dynamodbav:"order_id"`
	Stage               string          `dynamodbav:"stage"`
	Quotations          []quotationItem `dynamodbav:"quotations"`
	SelectedQuotation   string          `dynamodbav:"selected_quotation,omitempty"`
	PaymentStatus       string          `dynamodbav:"payment_status,omitempty"`
	PaymentDate         string          `dynamodbav:"payment_date,omitempty"`
	PaymentBy           string          `dynamodbav:"payment_by,omitempty"`
	PaymentReference    string          `dynamodbav:"payment_reference,omitempty"`
	TrackingNumber      string          `dynamodbav:"tracking_number,omitempty"`
	DeliveryDate        string          `dynamodbav:"delivery_date,omitempty"`
	DeliveryConfirmedBy string          `dynamodbav:"delivery_confirmed_by,omitempty"`
	Notes               string          `dynamodbav:"notes,omitempty"`
}

// orderItem is the DynamoDB shape of an order. Money is kept as decimal
// strings and timestamps as RFC3339 strings.
type orderItem struct {
	ID          string `dynamodbav:"id"`
	SKU         string `dynamodbav:"sku"`
	Item        string `dynamodbav:"item"`
	Description string `dynamodbav:"description,omitempty"`
	Category    string `dynamodbav:"category,omitempty"`

	Quantity       int    `dynamodbav:"quantity"`
	EstimatedValue string `dynamodbav:"estimated_value"`

	CostCenter string   `dynamodbav:"cost_center"`
	Supplier   string   `dynamodbav:"supplier,omitempty"`
	Suppliers  []string `dynamodbav:"suppliers,omitempty"`
	Source     string   `dynamodbav:"source,omitempty"`

	CreatedAt    string `dynamodbav:"created_at"`
	Deadline     string `dynamodbav:"deadline,omitempty"`
	ReminderDate string `dynamodbav:"reminder_date,omitempty"`

	Status              string `dynamodbav:"status"`
	StrategyObservation string `dynamodbav:"strategy_observation,omitempty"`

	Comments      []commentItem `dynamodbav:"comments,omitempty"`
	Comment       string        `dynamodbav:"comment,omitempty"`
	MentionedUser string        `dynamodbav:"mentioned_user,omitempty"`

	PurchaseProcess *purchaseProcessItem `dynamodbav:"purchase_process,omitempty"`

	Version   int    `dynamodbav:"version"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                  o.ID,
		SKU:                 o.SKU,
		Item:                o.Item,
		Description:         o.Description,
		Category:            o.Category,
		Quantity:            o.Quantity,
		EstimatedValue:      floatToString(o.EstimatedValue),
		CostCenter:          o.CostCenter,
		Supplier:            o.Supplier,
		Suppliers:           o.Suppliers,
		Source:              o.Source,
		CreatedAt:           formatTime(o.CreatedAt),
		Deadline:            formatTimePtr(o.Deadline),
		ReminderDate:        formatTimePtr(o.ReminderDate),
		Status:              string(o.Status),
		StrategyObservation: o.StrategyObservation,
		Comments:            toCommentItems(o.Comments),
		Comment:             o.Comment,
		MentionedUser:       o.MentionedUser,
		Version:             o.Version,
		UpdatedAt:           formatTime(o.UpdatedAt),
	}
	if o.PurchaseProcess != nil {
		pp := toPurchaseProcessItem(*o.PurchaseProcess)
		it.PurchaseProcess = &pp
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:                  it.ID,
		SKU:                 it.SKU,
		Item:                it.Item,
		Description:         it.Description,
		Category:            it.Category,
		Quantity:            it.Quantity,
		EstimatedValue:      stringToFloat(it.EstimatedValue),
		CostCenter:          it.CostCenter,
		Supplier:            it.Supplier,
		Suppliers:           it.Suppliers,
		Source:              it.Source,
		CreatedAt:           parseTime(it.CreatedAt),
		Deadline:            parseTimePtr(it.Deadline),
		ReminderDate:        parseTimePtr(it.ReminderDate),
		Status:              entities.OrderStatus(it.Status),
		StrategyObservation: it.StrategyObservation,
		Comments:            fromCommentItems(it.Comments),
		Comment:             it.Comment,
		MentionedUser:       it.MentionedUser,
		Version:             it.Version,
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
	if it.PurchaseProcess != nil {
		pp := fromPurchaseProcessItem(*it.PurchaseProcess)
		o.PurchaseProcess = &pp
	}
	return o
}

func toCommentItems(cs []entities.Comment) []commentItem {
	if len(cs) == 0 {
		return nil
	}
	out := make([]commentItem, 0, len(cs))
	for _, c := range cs {
		out = append(out, commentItem{ID: c.ID, Text: c.Text, User: c.User, Timestamp: formatTime(c.Timestamp)})
	}
	return out
}

func fromCommentItems(items []commentItem) []entities.Comment {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.Comment, 0, len(items))
	for _, c := range items {
		out = append(out, entities.Comment{ID: c.ID, Text: c.Text, User: c.User, Timestamp: parseTime(c.Timestamp)})
	}
	return out
}

func toPurchaseProcessItem(p entities.PurchaseProcess) purchaseProcessItem {
	quotations := make([]quotationItem, 0, len(p.Quotations))
	for _, q := range p.Quotations {
		quotations = append(quotations, quotationItem{
			ID:           q.ID,
			SupplierID:   q.SupplierID,
			SupplierName: q.SupplierName,
			UnitPrice:    floatToString(q.UnitPrice),
			TotalPrice:   floatToString(q.TotalPrice),
			DeliveryTime: q.DeliveryTime,
			Status:       string(q.Status),
			SubmittedAt:  formatTime(q.SubmittedAt),
			SubmittedBy:  q.SubmittedBy,
		})
	}
	return purchaseProcessItem{
		ID:                  p.ID,
		OrderID:             p.OrderID,
		Stage:               string(p.Stage),
		Quotations:          quotations,
		SelectedQuotation:   p.SelectedQuotation,
		PaymentStatus:       string(p.PaymentStatus),
		PaymentDate:         formatTimePtr(p.PaymentDate),
		PaymentBy:           p.PaymentBy,
		PaymentReference:    p.PaymentReference,
		TrackingNumber:      p.TrackingNumber,
		DeliveryDate:        formatTimePtr(p.DeliveryDate),
		DeliveryConfirmedBy: p.DeliveryConfirmedBy,
		Notes:               p.Notes,
	}
}

func fromPurchaseProcessItem(it purchaseProcessItem) entities.PurchaseProcess {
	quotations := make([]entities.SupplierQuotation, 0, len(it.Quotations))
	for _, q := range it.Quotations {
		quotations = append(quotations, entities.SupplierQuotation{
			ID:           q.ID,
			SupplierID:   q.SupplierID,
			SupplierName: q.SupplierName,
			UnitPrice:    stringToFloat(q.UnitPrice),
			TotalPrice:   stringToFloat(q.TotalPrice),
			DeliveryTime: q.DeliveryTime,
			Status:       entities.QuotationStatus(q.Status),
			SubmittedAt:  parseTime(q.SubmittedAt),
			SubmittedBy:  q.SubmittedBy,
		})
	}
	return entities.PurchaseProcess{
		ID:                  it.ID,
		OrderID:             it.OrderID,
		Stage:               entities.PurchaseStage(it.Stage),
		Quotations:          quotations,
		SelectedQuotation:   it.SelectedQuotation,
		PaymentStatus:       entities.PaymentStatus(it.PaymentStatus),
		PaymentDate:         parseTimePtr(it.PaymentDate),
		PaymentBy:           it.PaymentBy,
		PaymentReference:    it.PaymentReference,
		TrackingNumber:      it.TrackingNumber,
		DeliveryDate:        parseTimePtr(it.DeliveryDate),
		DeliveryConfirmedBy: it.DeliveryConfirmedBy,
		Notes:               it.Notes,
	}
}

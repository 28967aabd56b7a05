package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Comment is an annotation left on an order. Comments are append-only.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

// Order is a procurement request.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - EstimatedValue is the unit price.
//   - The order total is always derived (TotalAmount), never stored.
//
// Version and UpdatedAt are maintained by the order store on every merge and
// back the optional version check on updates.
type Order struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Item        string `json:"item"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`

	Quantity       int     `json:"quantity"`
	EstimatedValue float64 `json:"estimated_value"`

	CostCenter string   `json:"cost_center"`
	Supplier   string   `json:"supplier,omitempty"`
	Suppliers  []string `json:"suppliers,omitempty"`
	Source     string   `json:"source,omitempty"`

	CreatedAt    time.Time  `json:"created_at"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	ReminderDate *time.Time `json:"reminder_date,omitempty"`

	Status              OrderStatus `json:"status"`
	StrategyObservation string      `json:"strategy_observation,omitempty"`

	Comments []Comment `json:"comments,omitempty"`
	// Comment and MentionedUser are the legacy single-comment fields,
	// superseded by Comments.
	Comment       string `json:"comment,omitempty"`
	MentionedUser string `json:"mentioned_user,omitempty"`

	PurchaseProcess *PurchaseProcess `json:"purchase_process,omitempty"`

	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalAmount is quantity × estimated value.
func (o Order) TotalAmount() decimal.Decimal {
	return decimal.NewFromInt(int64(o.Quantity)).Mul(decimal.NewFromFloat(o.EstimatedValue))
}

func (o Order) TotalValue() float64 {
	return o.TotalAmount().InexactFloat64()
}

// AllSuppliers returns the union of Suppliers and the Supplier singleton,
// keeping first occurrence order and dropping blanks.
func (o Order) AllSuppliers() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(o.Suppliers)+1)
	add := func(name string) {
		key := NormalizeName(name)
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	for _, s := range o.Suppliers {
		add(s)
	}
	add(o.Supplier)
	return out
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	c := o
	if o.Suppliers != nil {
		c.Suppliers = append([]string(nil), o.Suppliers...)
	}
	if o.Comments != nil {
		c.Comments = append([]Comment(nil), o.Comments...)
	}
	c.Deadline = cloneTime(o.Deadline)
	c.ReminderDate = cloneTime(o.ReminderDate)
	if o.PurchaseProcess != nil {
		pp := o.PurchaseProcess.Clone()
		c.PurchaseProcess = &pp
	}
	return c
}

// OrderDraft carries the caller-provided fields of a new order.
type OrderDraft struct {
	SKU            string
	Item           string
	Description    string
	Category       string
	Quantity       int
	EstimatedValue float64
	CostCenter     string
	Supplier       string
	Suppliers      []string
	Source         string
	Deadline       *time.Time
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

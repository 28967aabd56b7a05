package request

import (
	"strings"
	"time"

	"revolux/internal/domain/entities"
)

// CreateOrderRequest is the payload of POST /v1/orders. Field checks beyond
// presence (positive quantity, non-negative value) belong to the order store.
type CreateOrderRequest struct {
	SKU            string     `json:"sku" binding:"required"`
	Item           string     `json:"item" binding:"required"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Quantity       int        `json:"quantity" binding:"required"`
	EstimatedValue float64    `json:"estimated_value"`
	CostCenter     string     `json:"cost_center" binding:"required"`
	Supplier       string     `json:"supplier"`
	Suppliers      []string   `json:"suppliers"`
	Source         string     `json:"source"`
	Deadline       *time.Time `json:"deadline"`
}

func (r CreateOrderRequest) ToDraft() entities.OrderDraft {
	var suppliers []string
	for _, s := range r.Suppliers {
		if s = strings.TrimSpace(s); s != "" {
			suppliers = append(suppliers, s)
		}
	}
	return entities.OrderDraft{
		SKU:            r.SKU,
		Item:           r.Item,
		Description:    r.Description,
		Category:       r.Category,
		Quantity:       r.Quantity,
		EstimatedValue: r.EstimatedValue,
		CostCenter:     r.CostCenter,
		Supplier:       strings.TrimSpace(r.Supplier),
		Suppliers:      suppliers,
		Source:         strings.TrimSpace(r.Source),
		Deadline:       r.Deadline,
	}
}

// AskRequest is the payload of POST /v1/insights/ask.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

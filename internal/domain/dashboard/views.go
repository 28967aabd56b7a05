// Package dashboard derives the read-side views of the order collection.
//
// Every function is pure: it takes the order slice (and the current time when
// relevant), never mutates it and tolerates an empty input.
package dashboard

import (
	"cmp"
	"slices"
	"strings"

	"revolux/internal/domain/entities"
)

const UnassignedCostCenter = "unassigned"

func filterOrders(orders []entities.Order, keep func(entities.Order) bool) []entities.Order {
	out := []entities.Order{}
	for _, o := range orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func statusIn(statuses ...entities.OrderStatus) func(entities.Order) bool {
	return func(o entities.Order) bool { return slices.Contains(statuses, o.Status) }
}

// PendingOrders are the orders still with the orders analyst.
func PendingOrders(orders []entities.Order) []entities.Order {
	return filterOrders(orders, statusIn(entities.OrderStatusPending, entities.OrderStatusEdited))
}

func AwaitingStrategyReview(orders []entities.Order) []entities.Order {
	return filterOrders(orders, statusIn(entities.OrderStatusApproved, entities.OrderStatusStrategyReview))
}

// InPurchaseProcess covers purchase-request up to delivery-pending.
func InPurchaseProcess(orders []entities.Order) []entities.Order {
	return filterOrders(orders, func(o entities.Order) bool { return o.Status.IsPurchasePipeline() })
}

func StrategyApproved(orders []entities.Order) []entities.Order {
	return filterOrders(orders, statusIn(entities.OrderStatusStrategyApproved, entities.OrderStatusStrategyApprovedWithObs))
}

// ByStatus groups orders by status, keeping input order inside each group.
func ByStatus(orders []entities.Order) map[entities.OrderStatus][]entities.Order {
	out := map[entities.OrderStatus][]entities.Order{}
	for _, o := range orders {
		out[o.Status] = append(out[o.Status], o)
	}
	return out
}

// ByCostCenter groups orders by trimmed cost center.
func ByCostCenter(orders []entities.Order) map[string][]entities.Order {
	out := map[string][]entities.Order{}
	for _, o := range orders {
		key := costCenterKey(o)
		out[key] = append(out[key], o)
	}
	return out
}

func costCenterKey(o entities.Order) string {
	cc := strings.TrimSpace(o.CostCenter)
	if cc == "" {
		return UnassignedCostCenter
	}
	return cc
}

// OrderFilter is the listing filter. Empty fields (and status "all") match
// everything.
type OrderFilter struct {
	Search     string
	Status     entities.OrderStatus
	CostCenter string
	Source     string
}

// Filter applies f. Search is case-insensitive over item, id, cost center and
// suppliers.
func Filter(orders []entities.Order, f OrderFilter) []entities.Order {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	cc := entities.NormalizeName(f.CostCenter)
	src := entities.NormalizeName(f.Source)
	return filterOrders(orders, func(o entities.Order) bool {
		if f.Status != "" && f.Status != "all" && o.Status != f.Status {
			return false
		}
		if cc != "" && entities.NormalizeName(o.CostCenter) != cc {
			return false
		}
		if src != "" && entities.NormalizeName(o.Source) != src {
			return false
		}
		return term == "" || matchesSearch(o, term)
	})
}

func matchesSearch(o entities.Order, term string) bool {
	fields := append([]string{o.Item, o.ID, o.CostCenter, o.SKU}, o.AllSuppliers()...)
	for _, v := range fields {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// RecentOrders returns the n newest orders by creation time.
func RecentOrders(orders []entities.Order, n int) []entities.Order {
	out := slices.Clone(orders)
	slices.SortStableFunc(out, func(a, b entities.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	if out == nil {
		out = []entities.Order{}
	}
	return out
}

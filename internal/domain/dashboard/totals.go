package dashboard

import (
	"cmp"
	"slices"
	"strings"

	"revolux/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// GroupTotal is the monetary weight of one group of orders.
type GroupTotal struct {
	Key        string
	Label      string
	Count      int
	Total      decimal.Decimal
	Percentage decimal.Decimal
}

// Totals holds the groups sorted by total (descending) and their grand total.
// The group totals always add up to GrandTotal exactly.
type Totals struct {
	Groups     []GroupTotal
	GrandTotal decimal.Decimal
	Count      int
}

func TotalsByCostCenter(orders []entities.Order) Totals {
	return totalsBy(orders, func(o entities.Order) (string, string) {
		k := costCenterKey(o)
		return k, k
	})
}

func TotalsByStatus(orders []entities.Order) Totals {
	return totalsBy(orders, func(o entities.Order) (string, string) {
		return string(o.Status), o.Status.Label()
	})
}

// SumTotal is Σ quantity × estimated value.
func SumTotal(orders []entities.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(o.TotalAmount())
	}
	return sum
}

func totalsBy(orders []entities.Order, key func(entities.Order) (string, string)) Totals {
	idx := map[string]int{}
	groups := []GroupTotal{}
	grand := decimal.Zero
	for _, o := range orders {
		k, label := key(o)
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, GroupTotal{Key: k, Label: label, Total: decimal.Zero})
		}
		amount := o.TotalAmount()
		groups[i].Count++
		groups[i].Total = groups[i].Total.Add(amount)
		grand = grand.Add(amount)
	}

	for i := range groups {
		groups[i].Percentage = percentage(groups[i].Total, grand)
	}
	slices.SortFunc(groups, func(a, b GroupTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return Totals{Groups: groups, GrandTotal: grand, Count: len(orders)}
}

// percentage returns part/total × 100 rounded to 2 places, or 0 when total
// is 0.
func percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total).Round(2)
}

// SupplierCount is how many orders mention a supplier.
type SupplierCount struct {
	Key   string
	Name  string
	Count int
}

// SupplierFrequency counts orders per normalized supplier name over the union
// of Suppliers and Supplier. An order counts once per supplier. The display
// name is the first spelling seen.
func SupplierFrequency(orders []entities.Order) []SupplierCount {
	idx := map[string]int{}
	out := []SupplierCount{}
	for _, o := range orders {
		for _, name := range o.AllSuppliers() {
			k := entities.NormalizeName(name)
			i, ok := idx[k]
			if !ok {
				i = len(out)
				idx[k] = i
				out = append(out, SupplierCount{Key: k, Name: strings.TrimSpace(name)})
			}
			out[i].Count++
		}
	}
	slices.SortFunc(out, func(a, b SupplierCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// TicketStats describes the value of individual orders.
type TicketStats struct {
	Count   int
	Total   decimal.Decimal
	Average decimal.Decimal
	Max     decimal.Decimal
	Min     decimal.Decimal
}

func Tickets(orders []entities.Order) TicketStats {
	s := TicketStats{Count: len(orders), Total: decimal.Zero, Average: decimal.Zero, Max: decimal.Zero, Min: decimal.Zero}
	for i, o := range orders {
		v := o.TotalAmount()
		s.Total = s.Total.Add(v)
		if i == 0 || v.GreaterThan(s.Max) {
			s.Max = v
		}
		if i == 0 || v.LessThan(s.Min) {
			s.Min = v
		}
	}
	if s.Count > 0 {
		s.Average = s.Total.Div(decimal.NewFromInt(int64(s.Count))).Round(2)
	}
	return s
}

package response

import (
	"time"

	"revolux/internal/domain/dashboard"
)

type AnalystSummaryResponse struct {
	PendingCount   int             `json:"pending_count"`
	UrgentCount    int             `json:"urgent_count"`
	PendingValue   float64         `json:"pending_value"`
	DeferredCount  int             `json:"deferred_count"`
	CommentedCount int             `json:"commented_count"`
	Urgent         []OrderResponse `json:"urgent"`
	Recent         []OrderResponse `json:"recent"`
}

func FromAnalystSummary(s dashboard.AnalystSummary, now time.Time) AnalystSummaryResponse {
	return AnalystSummaryResponse{
		PendingCount:   s.PendingCount,
		UrgentCount:    s.UrgentCount,
		PendingValue:   s.PendingValue.InexactFloat64(),
		DeferredCount:  s.DeferredCount,
		CommentedCount: s.CommentedCount,
		Urgent:         FromOrders(s.Urgent, now),
		Recent:         FromOrders(s.Recent, now),
	}
}

type StrategySummaryResponse struct {
	AwaitingReviewCount int             `json:"awaiting_review_count"`
	InPurchaseCount     int             `json:"in_purchase_count"`
	UrgentCount         int             `json:"urgent_count"`
	ValueUnderReview    float64         `json:"value_under_review"`
	ApprovedCount       int             `json:"approved_count"`
	ApprovedValue       float64         `json:"approved_value"`
	Urgent              []OrderResponse `json:"urgent"`
	Recent              []OrderResponse `json:"recent"`
}

func FromStrategySummary(s dashboard.StrategySummary, now time.Time) StrategySummaryResponse {
	return StrategySummaryResponse{
		AwaitingReviewCount: s.AwaitingReviewCount,
		InPurchaseCount:     s.InPurchaseCount,
		UrgentCount:         s.UrgentCount,
		ValueUnderReview:    s.ValueUnderReview.InexactFloat64(),
		ApprovedCount:       s.ApprovedCount,
		ApprovedValue:       s.ApprovedValue.InexactFloat64(),
		Urgent:              FromOrders(s.Urgent, now),
		Recent:              FromOrders(s.Recent, now),
	}
}

type GroupTotalResponse struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

type TotalsResponse struct {
	Groups     []GroupTotalResponse `json:"groups"`
	GrandTotal float64              `json:"grand_total"`
	Count      int                  `json:"count"`
}

func FromTotals(t dashboard.Totals) TotalsResponse {
	groups := make([]GroupTotalResponse, 0, len(t.Groups))
	for _, g := range t.Groups {
		groups = append(groups, GroupTotalResponse{
			Key:        g.Key,
			Label:      g.Label,
			Count:      g.Count,
			Total:      g.Total.InexactFloat64(),
			Percentage: g.Percentage.InexactFloat64(),
		})
	}
	return TotalsResponse{Groups: groups, GrandTotal: t.GrandTotal.InexactFloat64(), Count: t.Count}
}

type SupplierCountResponse struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type TicketResponse struct {
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
}

// SupplierStatsResponse backs GET /v1/stats/suppliers.
type SupplierStatsResponse struct {
	Ranking []SupplierCountResponse `json:"ranking"`
	Tickets TicketResponse          `json:"tickets"`
}

func FromSupplierStats(ranking []dashboard.SupplierCount, tickets dashboard.TicketStats) SupplierStatsResponse {
	out := make([]SupplierCountResponse, 0, len(ranking))
	for _, s := range ranking {
		out = append(out, SupplierCountResponse{Key: s.Key, Name: s.Name, Count: s.Count})
	}
	return SupplierStatsResponse{
		Ranking: out,
		Tickets: TicketResponse{
			Count:   tickets.Count,
			Total:   tickets.Total.InexactFloat64(),
			Average: tickets.Average.InexactFloat64(),
			Max:     tickets.Max.InexactFloat64(),
			Min:     tickets.Min.InexactFloat64(),
		},
	}
}

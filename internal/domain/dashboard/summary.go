package dashboard

import (
	"time"

	"revolux/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const recentLimit = 5

// AnalystSummary feeds the orders analyst home.
type AnalystSummary struct {
	PendingCount   int
	UrgentCount    int
	PendingValue   decimal.Decimal
	DeferredCount  int
	CommentedCount int
	Urgent         []entities.Order
	Recent         []entities.Order
}

func SummarizeAnalyst(orders []entities.Order, now time.Time, horizonDays int) AnalystSummary {
	pending := PendingOrders(orders)
	urgent := UrgentOrders(pending, now, horizonDays)
	return AnalystSummary{
		PendingCount:   len(pending),
		UrgentCount:    len(urgent),
		PendingValue:   SumTotal(pending),
		DeferredCount:  len(filterOrders(orders, statusIn(entities.OrderStatusDeferred))),
		CommentedCount: len(filterOrders(orders, hasComments)),
		Urgent:         urgent,
		Recent:         RecentOrders(orders, recentLimit),
	}
}

func hasComments(o entities.Order) bool {
	return len(o.Comments) > 0 || (o.Comment != "" && o.MentionedUser != "")
}

// StrategySummary feeds the strategy analyst home.
type StrategySummary struct {
	AwaitingReviewCount int
	InPurchaseCount     int
	UrgentCount         int
	ValueUnderReview    decimal.Decimal
	ApprovedCount       int
	ApprovedValue       decimal.Decimal
	Urgent              []entities.Order
	Recent              []entities.Order
}

func SummarizeStrategy(orders []entities.Order, now time.Time, horizonDays int) StrategySummary {
	awaiting := AwaitingStrategyReview(orders)
	approved := StrategyApproved(orders)
	urgent := UrgentOrders(awaiting, now, horizonDays)
	return StrategySummary{
		AwaitingReviewCount: len(awaiting),
		InPurchaseCount:     len(InPurchaseProcess(orders)),
		UrgentCount:         len(urgent),
		ValueUnderReview:    SumTotal(awaiting),
		ApprovedCount:       len(approved),
		ApprovedValue:       SumTotal(approved),
		Urgent:              urgent,
		Recent:              RecentOrders(orders, recentLimit),
	}
}

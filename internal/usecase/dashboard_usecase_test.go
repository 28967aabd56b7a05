package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDashboardUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewDashboardUseCase(seededStore(t), 0, func() time.Time { return testNow })

	if !uc.Now().Equal(testNow) {
		t.Fatalf("expected injected clock")
	}

	summary := uc.AnalystSummary(ctx)
	if summary.PendingCount != 2 || summary.UrgentCount != 1 || !summary.PendingValue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected analyst summary: %+v", summary)
	}

	strategy := uc.StrategySummary(ctx)
	if strategy.AwaitingReviewCount != 0 || strategy.ApprovedCount != 0 {
		t.Fatalf("unexpected strategy summary: %+v", strategy)
	}

	if got := uc.UrgentOrders(ctx, 0); len(got) != 1 || got[0].SKU != "P-1" {
		t.Fatalf("expected default horizon to keep P-1, got %+v", got)
	}
	if got := uc.UrgentOrders(ctx, 2); len(got) != 0 {
		t.Fatalf("expected nothing due within 2 days, got %d", len(got))
	}

	byCC := uc.CostCenterTotals(ctx)
	if !byCC.GrandTotal.Equal(decimal.NewFromInt(500)) || len(byCC.Groups) != 2 || byCC.Groups[0].Key != "CC-200" {
		t.Fatalf("unexpected cost center totals: %+v", byCC)
	}

	byStatus := uc.StatusTotals(ctx)
	if len(byStatus.Groups) != 1 || byStatus.Groups[0].Count != 2 {
		t.Fatalf("unexpected status totals: %+v", byStatus)
	}

	ranking := uc.SupplierRanking(ctx)
	if len(ranking) != 2 || ranking[0].Name != "Aço Forte" || ranking[0].Count != 2 {
		t.Fatalf("unexpected supplier ranking: %+v", ranking)
	}

	tickets := uc.Tickets(ctx)
	if tickets.Count != 2 || !tickets.Max.Equal(decimal.NewFromInt(300)) || !tickets.Min.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("unexpected tickets: %+v", tickets)
	}
}

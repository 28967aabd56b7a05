package usecase

import (
	"context"
	"time"

	"revolux/internal/domain/dashboard"
	"revolux/internal/domain/entities"
)

// IDashboardUseCase exposes the derived views over the live order set.
type IDashboardUseCase interface {
	AnalystSummary(ctx context.Context) dashboard.AnalystSummary
	StrategySummary(ctx context.Context) dashboard.StrategySummary
	UrgentOrders(ctx context.Context, horizonDays int) []entities.Order
	CostCenterTotals(ctx context.Context) dashboard.Totals
	StatusTotals(ctx context.Context) dashboard.Totals
	SupplierRanking(ctx context.Context) []dashboard.SupplierCount
	Tickets(ctx context.Context) dashboard.TicketStats
	Now() time.Time
}

type DashboardUseCase struct {
	store       *OrderStore
	now         func() time.Time
	horizonDays int
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(store *OrderStore, horizonDays int, now func() time.Time) *DashboardUseCase {
	if horizonDays <= 0 {
		horizonDays = dashboard.DefaultUrgentHorizonDays
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &DashboardUseCase{store: store, now: now, horizonDays: horizonDays}
}

func (u *DashboardUseCase) Now() time.Time { return u.now() }

func (u *DashboardUseCase) AnalystSummary(_ context.Context) dashboard.AnalystSummary {
	return dashboard.SummarizeAnalyst(u.store.List(), u.now(), u.horizonDays)
}

func (u *DashboardUseCase) StrategySummary(_ context.Context) dashboard.StrategySummary {
	return dashboard.SummarizeStrategy(u.store.List(), u.now(), u.horizonDays)
}

// UrgentOrders uses the configured horizon when horizonDays is not positive.
func (u *DashboardUseCase) UrgentOrders(_ context.Context, horizonDays int) []entities.Order {
	if horizonDays <= 0 {
		horizonDays = u.horizonDays
	}
	return dashboard.UrgentOrders(u.store.List(), u.now(), horizonDays)
}

func (u *DashboardUseCase) CostCenterTotals(_ context.Context) dashboard.Totals {
	return dashboard.TotalsByCostCenter(u.store.List())
}

func (u *DashboardUseCase) StatusTotals(_ context.Context) dashboard.Totals {
	return dashboard.TotalsByStatus(u.store.List())
}

func (u *DashboardUseCase) SupplierRanking(_ context.Context) []dashboard.SupplierCount {
	return dashboard.SupplierFrequency(u.store.List())
}

func (u *DashboardUseCase) Tickets(_ context.Context) dashboard.TicketStats {
	return dashboard.Tickets(u.store.List())
}

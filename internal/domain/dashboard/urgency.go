package dashboard

import (
	"math"
	"time"

	"revolux/internal/domain/entities"
)

const DefaultUrgentHorizonDays = 7

type UrgencyLevel string

const (
	UrgencyNone     UrgencyLevel = "none"
	UrgencyOverdue  UrgencyLevel = "overdue"
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyUrgent   UrgencyLevel = "urgent"
	UrgencyNormal   UrgencyLevel = "normal"
)

// DaysUntilDeadline rounds the remaining time up to whole days, so a deadline
// later today counts as 1 and one that already passed today as 0.
func DaysUntilDeadline(o entities.Order, now time.Time) (int, bool) {
	if o.Deadline == nil {
		return 0, false
	}
	days := math.Ceil(o.Deadline.Sub(now).Hours() / 24)
	return int(days), true
}

// UrgentOrders keeps actionable orders due within horizonDays (inclusive).
// A non-positive horizon falls back to the default.
func UrgentOrders(orders []entities.Order, now time.Time, horizonDays int) []entities.Order {
	if horizonDays <= 0 {
		horizonDays = DefaultUrgentHorizonDays
	}
	return filterOrders(orders, func(o entities.Order) bool {
		if !o.Status.IsActionable() {
			return false
		}
		days, ok := DaysUntilDeadline(o, now)
		return ok && days <= horizonDays
	})
}

// Urgency classifies an order by its deadline.
func Urgency(o entities.Order, now time.Time) UrgencyLevel {
	days, ok := DaysUntilDeadline(o, now)
	switch {
	case !ok:
		return UrgencyNone
	case days < 0:
		return UrgencyOverdue
	case days <= 3:
		return UrgencyCritical
	case days <= 7:
		return UrgencyUrgent
	default:
		return UrgencyNormal
	}
}

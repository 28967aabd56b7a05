package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"revolux/internal/domain/dashboard"
	"revolux/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrEmptyQuestion = errors.New("empty question")

// Answer is the reply of the insights assistant.
type Answer struct {
	Topic       string   `json:"topic"`
	Content     string   `json:"content"`
	Suggestions []string `json:"suggestions"`
}

// IInsightsUseCase answers free-text questions about the order set. It is
// read-only.
type IInsightsUseCase interface {
	Ask(ctx context.Context, question string) (Answer, error)
}

type InsightsUseCase struct {
	store       *OrderStore
	now         func() time.Time
	horizonDays int
}

var _ IInsightsUseCase = (*InsightsUseCase)(nil)

func NewInsightsUseCase(store *OrderStore, horizonDays int, now func() time.Time) *InsightsUseCase {
	if horizonDays <= 0 {
		horizonDays = dashboard.DefaultUrgentHorizonDays
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &InsightsUseCase{store: store, now: now, horizonDays: horizonDays}
}

type insightRule struct {
	topic    string
	keywords []string
	answer   func(u *InsightsUseCase, orders []entities.Order) Answer
}

// First matching rule wins.
var insightRules = []insightRule{
	{"status", []string{"status", "resumo", "geral", "summary", "overview"}, (*InsightsUseCase).statusAnswer},
	{"urgent", []string{"urgente", "atenção", "atencao", "prioridade", "urgent", "priority"}, (*InsightsUseCase).urgentAnswer},
	{"cost-center", []string{"centro de custo", "custo", "valores", "cost center", "cost"}, (*InsightsUseCase).costCenterAnswer},
	{"pending", []string{"pendente", "aguardando", "pending", "waiting"}, (*InsightsUseCase).pendingAnswer},
	{"ticket", []string{"ticket", "médio", "média", "medio", "media", "average"}, (*InsightsUseCase).ticketAnswer},
	{"supplier", []string{"fornecedor", "supplier"}, (*InsightsUseCase).supplierAnswer},
}

func (u *InsightsUseCase) Ask(_ context.Context, question string) (Answer, error) {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return Answer{}, ErrEmptyQuestion
	}
	orders := u.store.List()
	for _, r := range insightRules {
		for _, k := range r.keywords {
			if strings.Contains(q, k) {
				a := r.answer(u, orders)
				a.Topic = r.topic
				return a, nil
			}
		}
	}
	return Answer{
		Topic: "help",
		Content: fmt.Sprintf("I understood your question: %q\n\nI can help with:\n• order status and summary\n• values and costs\n• urgent orders\n• suppliers",
			strings.TrimSpace(question)),
		Suggestions: []string{"What is the overall status?", "Urgent orders", "Values by cost center"},
	}, nil
}

func (u *InsightsUseCase) statusAnswer(orders []entities.Order) Answer {
	total := len(orders)
	counts := dashboard.ByStatus(orders)
	pending := len(dashboard.PendingOrders(orders))
	approved := len(counts[entities.OrderStatusApproved])
	deferred := len(counts[entities.OrderStatusDeferred])

	var b strings.Builder
	fmt.Fprintf(&b, "Order status:\n\n• Total orders: %d\n", total)
	fmt.Fprintf(&b, "• Pending: %d (%s%%)\n", pending, share(pending, total))
	fmt.Fprintf(&b, "• Approved: %d (%s%%)\n", approved, share(approved, total))
	fmt.Fprintf(&b, "• Deferred: %d (%s%%)\n\n", deferred, share(deferred, total))
	if pending > 0 {
		fmt.Fprintf(&b, "You have %d order(s) awaiting analysis.", pending)
	} else {
		b.WriteString("No pending orders right now.")
	}
	return Answer{Content: b.String(), Suggestions: []string{"Which orders need urgent attention?", "Show values by cost center"}}
}

func (u *InsightsUseCase) urgentAnswer(orders []entities.Order) Answer {
	now := u.now()
	urgent := dashboard.UrgentOrders(orders, now, u.horizonDays)
	if len(urgent) == 0 {
		return Answer{
			Content:     fmt.Sprintf("No orders are due in the next %d days.", u.horizonDays),
			Suggestions: []string{"Show values by cost center", "What is the average ticket?"},
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Urgent orders (%d), due in the next %d days:\n\n", len(urgent), u.horizonDays)
	for i, o := range urgent {
		if i == 5 {
			fmt.Fprintf(&b, "...and %d more order(s).\n", len(urgent)-5)
			break
		}
		days, _ := dashboard.DaysUntilDeadline(o, now)
		fmt.Fprintf(&b, "• %s (%s) - %d day(s), %s\n", o.Item, o.ID, days, o.Status.Label())
	}
	return Answer{Content: b.String(), Suggestions: []string{"Approve urgent orders", "Show order details"}}
}

func (u *InsightsUseCase) costCenterAnswer(orders []entities.Order) Answer {
	totals := dashboard.TotalsByCostCenter(orders)
	var b strings.Builder
	b.WriteString("Values by cost center (top 5):\n\n")
	for i, g := range totals.Groups {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "• %s: R$ %s (%s%%, %d order(s))\n", g.Key, g.Total.StringFixed(2), g.Percentage.StringFixed(2), g.Count)
	}
	fmt.Fprintf(&b, "\nTotal: R$ %s", totals.GrandTotal.StringFixed(2))
	return Answer{Content: b.String(), Suggestions: []string{"What is the average ticket?", "Most frequent suppliers"}}
}

func (u *InsightsUseCase) pendingAnswer(orders []entities.Order) Answer {
	pending := dashboard.PendingOrders(orders)
	stats := dashboard.Tickets(pending)
	content := fmt.Sprintf("Pending orders:\n\n• Total: %d order(s)\n• Total value: R$ %s\n• Average value: R$ %s",
		stats.Count, stats.Total.StringFixed(2), stats.Average.StringFixed(2))
	if stats.Count > 0 {
		content += "\n\nPrioritize the orders with the nearest deadline."
	}
	return Answer{Content: content, Suggestions: []string{"Which are the oldest?", "Show by cost center"}}
}

func (u *InsightsUseCase) ticketAnswer(orders []entities.Order) Answer {
	stats := dashboard.Tickets(orders)
	content := fmt.Sprintf("Order values:\n\n• Average ticket: R$ %s\n• Largest order: R$ %s\n• Smallest order: R$ %s",
		stats.Average.StringFixed(2), stats.Max.StringFixed(2), stats.Min.StringFixed(2))
	return Answer{Content: content, Suggestions: []string{"Values by cost center", "Order status"}}
}

func (u *InsightsUseCase) supplierAnswer(orders []entities.Order) Answer {
	ranking := dashboard.SupplierFrequency(orders)
	if len(ranking) == 0 {
		return Answer{
			Content:     "No suppliers are registered on the orders yet.",
			Suggestions: []string{"Order status", "Values by cost center"},
		}
	}
	var b strings.Builder
	b.WriteString("Most frequent suppliers:\n\n")
	for i, s := range ranking {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "%d. %s - %d order(s)\n", i+1, s.Name, s.Count)
	}
	return Answer{Content: b.String(), Suggestions: []string{"Values by cost center", "Order status"}}
}

// share formats part/total as a percentage with one decimal place.
func share(part, total int) string {
	if total == 0 {
		return "0.0"
	}
	return decimal.NewFromInt(int64(part)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(total))).StringFixed(1)
}

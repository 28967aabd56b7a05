package entities

import (
	"reflect"
	"regexp"
	"strings"
	"time"
)

// OrderPatch is a partial update of an order. Nil fields are left untouched.
//
// ExpectedVersion is the optimistic-lock seam: when set, the store refuses
// the merge if the stored version differs.
type OrderPatch struct {
	SKU                 *string
	Item                *string
	Description         *string
	Category            *string
	Quantity            *int
	EstimatedValue      *float64
	CostCenter          *string
	Supplier            *string
	Suppliers           *[]string
	Source              *string
	Deadline            *time.Time
	ReminderDate        *time.Time
	Status              *OrderStatus
	StrategyObservation *string
	Comments            *[]Comment
	PurchaseProcess     *PurchaseProcess

	ExpectedVersion *int
}

// IsEmpty reports whether the patch changes nothing.
func (p OrderPatch) IsEmpty() bool {
	return p.SKU == nil && p.Item == nil && p.Description == nil && p.Category == nil &&
		p.Quantity == nil && p.EstimatedValue == nil && p.CostCenter == nil &&
		p.Supplier == nil && p.Suppliers == nil && p.Source == nil && p.Deadline == nil &&
		p.ReminderDate == nil && p.Status == nil && p.StrategyObservation == nil &&
		p.Comments == nil && p.PurchaseProcess == nil
}

// Apply merges the patch into a copy of o (shallow, field level).
func (p OrderPatch) Apply(o Order) Order {
	out := o.Clone()
	if p.SKU != nil {
		out.SKU = *p.SKU
	}
	if p.Item != nil {
		out.Item = *p.Item
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Quantity != nil {
		out.Quantity = *p.Quantity
	}
	if p.EstimatedValue != nil {
		out.EstimatedValue = *p.EstimatedValue
	}
	if p.CostCenter != nil {
		out.CostCenter = *p.CostCenter
	}
	if p.Supplier != nil {
		out.Supplier = *p.Supplier
	}
	if p.Suppliers != nil {
		out.Suppliers = append([]string(nil), (*p.Suppliers)...)
	}
	if p.Source != nil {
		out.Source = *p.Source
	}
	if p.Deadline != nil {
		out.Deadline = cloneTime(p.Deadline)
	}
	if p.ReminderDate != nil {
		out.ReminderDate = cloneTime(p.ReminderDate)
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.StrategyObservation != nil {
		out.StrategyObservation = *p.StrategyObservation
	}
	if p.Comments != nil {
		out.Comments = append([]Comment(nil), (*p.Comments)...)
	}
	if p.PurchaseProcess != nil {
		pp := p.PurchaseProcess.Clone()
		out.PurchaseProcess = &pp
	}
	return out
}

// DiffOrders builds the patch that turns before into after. Fields the
// workflow never clears (deadline, reminder date, purchase process) are only
// emitted when after carries a value.
func DiffOrders(before, after Order) OrderPatch {
	var p OrderPatch
	if before.SKU != after.SKU {
		p.SKU = &after.SKU
	}
	if before.Item != after.Item {
		p.Item = &after.Item
	}
	if before.Description != after.Description {
		p.Description = &after.Description
	}
	if before.Category != after.Category {
		p.Category = &after.Category
	}
	if before.Quantity != after.Quantity {
		p.Quantity = &after.Quantity
	}
	if before.EstimatedValue != after.EstimatedValue {
		p.EstimatedValue = &after.EstimatedValue
	}
	if before.CostCenter != after.CostCenter {
		p.CostCenter = &after.CostCenter
	}
	if before.Supplier != after.Supplier {
		p.Supplier = &after.Supplier
	}
	if !reflect.DeepEqual(before.Suppliers, after.Suppliers) {
		s := append([]string(nil), after.Suppliers...)
		p.Suppliers = &s
	}
	if before.Source != after.Source {
		p.Source = &after.Source
	}
	if after.Deadline != nil && !timePtrEqual(before.Deadline, after.Deadline) {
		p.Deadline = cloneTime(after.Deadline)
	}
	if after.ReminderDate != nil && !timePtrEqual(before.ReminderDate, after.ReminderDate) {
		p.ReminderDate = cloneTime(after.ReminderDate)
	}
	if before.Status != after.Status {
		s := after.Status
		p.Status = &s
	}
	if before.StrategyObservation != after.StrategyObservation {
		p.StrategyObservation = &after.StrategyObservation
	}
	if !reflect.DeepEqual(before.Comments, after.Comments) {
		c := append([]Comment(nil), after.Comments...)
		p.Comments = &c
	}
	if after.PurchaseProcess != nil && !reflect.DeepEqual(before.PurchaseProcess, after.PurchaseProcess) {
		pp := after.PurchaseProcess.Clone()
		p.PurchaseProcess = &pp
	}
	return p
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeName folds a free-text name (supplier, cost center) into a
// comparison key: trimmed, inner whitespace collapsed, lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(strings.TrimSpace(name), " "))
}

// Slugify turns a display name into an identifier ("Madeiras Brasil" -> "madeiras-brasil").
func Slugify(name string) string {
	return strings.ReplaceAll(NormalizeName(name), " ", "-")
}

package dashboard

import (
	"time"

	"github.com/homedash/homedash/pkg/bill"
	"github.com/homedash/homedash/pkg/expense"
	"github.com/homedash/homedash/pkg/task"
	"github.com/homedash/homedash/pkg/warranty"
	"github.com/shopspring/decimal"
)

const (
	DefaultDueSoonDays      = 7
	DefaultExpiringSoonDays = 30
	DefaultPreviewLimit     = 5
)

type ExpiryStatus string

const (
	ExpiryExpired      ExpiryStatus = "expired"
	ExpiryExpiringSoon ExpiryStatus = "expiring soon"
	ExpiryActive       ExpiryStatus = "active"
)

type WarrantyStatus struct {
	Warranty        warranty.Warranty
	Status          ExpiryStatus
	DaysUntilExpiry int
}

type Maintenance struct {
	Pending   []task.Task
	Completed []task.Task
}

// DaysUntil counts calendar days from now to target in the location of now, so a
// daylight saving shift does not add or lose a day. A target later in the day than
// now counts as one more day. It is negative once target has passed.
func DaysUntil(target, now time.Time) int {
	target = target.In(now.Location())
	days := int(civilDate(target).Sub(civilDate(now)).Hours() / 24)
	if timeOfDay(target) > timeOfDay(now) {
		days++
	}
	return days
}

// civilDate drops the clock and the zone, leaving a date that is exactly 24h apart
// from the next one.
func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func timeOfDay(t time.Time) time.Duration {
	hour, minute, second := t.Clock()
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second + time.Duration(t.Nanosecond())
}

// UpcomingTasks returns the tasks dated strictly after now, in collection order.
func UpcomingTasks(tasks []task.Task, now time.Time) []task.Task {
	upcoming := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Date.After(now) {
			upcoming = append(upcoming, t)
		}
	}
	return upcoming
}

// Preview returns at most limit leading items. Items are not sorted.
func Preview[T any](items []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return append(make([]T, 0, len(items)), items...)
}

// BillsDueSoon returns pending bills due at most windowDays from now. Bills already
// past their due date are included.
func BillsDueSoon(bills []bill.Bill, now time.Time, windowDays int) []bill.Bill {
	dueSoon := make([]bill.Bill, 0, len(bills))
	for _, b := range bills {
		if b.Status == bill.StatusPending && DaysUntil(b.DueDate, now) <= windowDays {
			dueSoon = append(dueSoon, b)
		}
	}
	return dueSoon
}

// MonthlyExpenseTotal sums the expenses dated in the calendar month of now.
func MonthlyExpenseTotal(expenses []expense.Expense, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		date := e.Date.In(now.Location())
		if date.Year() == now.Year() && date.Month() == now.Month() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func ClassifyWarranty(expiry, now time.Time, windowDays int) ExpiryStatus {
	days := DaysUntil(expiry, now)
	switch {
	case days <= 0:
		return ExpiryExpired
	case days <= windowDays:
		return ExpiryExpiringSoon
	default:
		return ExpiryActive
	}
}

// WarrantyStatuses classifies every warranty by its expiry date. The status stored on
// the record is not consulted.
func WarrantyStatuses(warranties []warranty.Warranty, now time.Time, windowDays int) []WarrantyStatus {
	statuses := make([]WarrantyStatus, 0, len(warranties))
	for _, w := range warranties {
		statuses = append(statuses, WarrantyStatus{
			Warranty:        w,
			Status:          ClassifyWarranty(w.ExpiryDate, now, windowDays),
			DaysUntilExpiry: DaysUntil(w.ExpiryDate, now),
		})
	}
	return statuses
}

func MaintenanceTasks(tasks []task.Task) Maintenance {
	m := Maintenance{Pending: []task.Task{}, Completed: []task.Task{}}
	for _, t := range tasks {
		if t.Type != task.TypeMaintenance {
			continue
		}
		switch t.Status {
		case task.StatusPending:
			m.Pending = append(m.Pending, t)
		case task.StatusCompleted:
			m.Completed = append(m.Completed, t)
		}
	}
	return m
}

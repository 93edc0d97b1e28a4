package dashboard

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/homedash/homedash/pkg/bill"
	"github.com/homedash/homedash/pkg/expense"
	"github.com/homedash/homedash/pkg/task"
	"github.com/homedash/homedash/pkg/warranty"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var firstOfMarch = date(2024, 3, 1)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntil(t *testing.T) {
	t.Run("should be zero for same day", func(t *testing.T) {
		assert.Equal(t, 0, DaysUntil(firstOfMarch, firstOfMarch))
	})

	t.Run("should round partial days up", func(t *testing.T) {
		now := firstOfMarch.Add(10 * time.Hour)

		assert.Equal(t, 1, DaysUntil(date(2024, 3, 2), now))
		assert.Equal(t, 0, DaysUntil(firstOfMarch, now))
	})

	t.Run("should be negative for past dates", func(t *testing.T) {
		assert.Equal(t, -9, DaysUntil(date(2024, 2, 21), firstOfMarch))
		assert.Equal(t, -8, DaysUntil(date(2024, 2, 21).Add(8*time.Hour), firstOfMarch))
	})

	t.Run("should count calendar days across daylight saving changes", func(t *testing.T) {
		newYork := newYork(t)
		day := func(month time.Month, d int) time.Time {
			return time.Date(2024, month, d, 0, 0, 0, 0, newYork)
		}

		assert.Equal(t, 7, DaysUntil(day(time.November, 8), day(time.November, 1)))
		assert.Equal(t, 2, DaysUntil(day(time.March, 11), day(time.March, 9)))
		assert.Equal(t, -7, DaysUntil(day(time.November, 1), day(time.November, 8)))
	})

	t.Run("should compare dates in the location of now", func(t *testing.T) {
		newYork := newYork(t)
		now := time.Date(2024, 3, 1, 20, 0, 0, 0, newYork)

		// 2024-03-02 01:00 UTC is still the evening of March 1 in New York
		assert.Equal(t, 0, DaysUntil(time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC), now))
	})
}

func newYork(t *testing.T) *time.Location {
	t.Helper()
	location, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return location
}

func TestDaylightSavingWindows(t *testing.T) {
	t.Run("should keep bill due a week after fall back in a seven day window", func(t *testing.T) {
		// given
		newYork := newYork(t)
		now := time.Date(2024, 11, 1, 0, 0, 0, 0, newYork)
		bills := []bill.Bill{
			{ID: 1, Name: "Electricity", DueDate: time.Date(2024, 11, 8, 0, 0, 0, 0, newYork), Status: bill.StatusPending},
		}

		// when
		dueSoon := BillsDueSoon(bills, now, 7)

		// then
		assert.Len(t, dueSoon, 1)
	})

	t.Run("should classify warranty expiring 30 calendar days after fall back as expiring soon", func(t *testing.T) {
		// given
		newYork := newYork(t)
		now := time.Date(2024, 10, 15, 0, 0, 0, 0, newYork)
		expiry := time.Date(2024, 11, 14, 0, 0, 0, 0, newYork)

		// when
		status := ClassifyWarranty(expiry, now, DefaultExpiringSoonDays)

		// then
		assert.Equal(t, ExpiryExpiringSoon, status)
	})
}

func TestClassifyWarranty(t *testing.T) {
	tests := []struct {
		name     string
		expiry   time.Time
		expected ExpiryStatus
	}{
		{"should be expired on expiry day", date(2024, 3, 1), ExpiryExpired},
		{"should be expired after expiry", date(2023, 12, 31), ExpiryExpired},
		{"should be expiring soon next day", date(2024, 3, 2), ExpiryExpiringSoon},
		{"should be expiring soon 30 days ahead", date(2024, 3, 31), ExpiryExpiringSoon},
		{"should be active 31 days ahead", date(2024, 4, 1), ExpiryActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyWarranty(tt.expiry, firstOfMarch, DefaultExpiringSoonDays))
		})
	}
}

func TestWarrantyStatuses(t *testing.T) {
	t.Run("should ignore stored status", func(t *testing.T) {
		// given
		warranties := []warranty.Warranty{
			{ID: 1, Item: "Refrigerator", ExpiryDate: date(2023, 1, 15), Status: warranty.StatusActive},
			{ID: 2, Item: "HVAC System", ExpiryDate: date(2027, 6, 1), Status: warranty.StatusExpired},
		}

		// when
		statuses := WarrantyStatuses(warranties, firstOfMarch, DefaultExpiringSoonDays)

		// then
		assert.Equal(t, ExpiryExpired, statuses[0].Status)
		assert.Equal(t, ExpiryActive, statuses[1].Status)
		assert.Equal(t, 1187, statuses[1].DaysUntilExpiry)
	})
}

func TestBillsDueSoon(t *testing.T) {
	t.Run("should include pending bills up to seven days ahead", func(t *testing.T) {
		// given
		bills := []bill.Bill{
			{ID: 1, Name: "Seven days", DueDate: date(2024, 3, 8), Status: bill.StatusPending},
			{ID: 2, Name: "Eight days", DueDate: date(2024, 3, 9), Status: bill.StatusPending},
			{ID: 3, Name: "Paid", DueDate: date(2024, 3, 3), Status: bill.StatusPaid},
			{ID: 4, Name: "Already late", DueDate: date(2024, 2, 20), Status: bill.StatusPending},
			{ID: 5, Name: "Marked overdue", DueDate: date(2024, 2, 20), Status: bill.StatusOverdue},
		}

		// when
		dueSoon := BillsDueSoon(bills, firstOfMarch, DefaultDueSoonDays)

		// then
		names := []string{}
		for _, b := range dueSoon {
			names = append(names, b.Name)
		}
		assert.Equal(t, []string{"Seven days", "Already late"}, names)
	})

	t.Run("should return empty slice for no bills", func(t *testing.T) {
		dueSoon := BillsDueSoon(nil, firstOfMarch, DefaultDueSoonDays)

		assert.NotNil(t, dueSoon)
		assert.Empty(t, dueSoon)
	})
}

func TestMonthlyExpenseTotal(t *testing.T) {
	t.Run("should be zero for no expenses", func(t *testing.T) {
		assert.True(t, MonthlyExpenseTotal(nil, firstOfMarch).IsZero())
	})

	t.Run("should sum only current calendar month", func(t *testing.T) {
		// given
		expenses := []expense.Expense{
			{Title: "Water Bill", Amount: decimal.RequireFromString("85.50"), Date: date(2024, 3, 1)},
			{Title: "Electricity", Amount: decimal.RequireFromString("145.75"), Date: date(2024, 3, 31)},
			{Title: "February gas", Amount: decimal.NewFromInt(60), Date: date(2024, 2, 29)},
			{Title: "Last year", Amount: decimal.NewFromInt(99), Date: date(2023, 3, 10)},
		}

		// when
		total := MonthlyExpenseTotal(expenses, date(2024, 3, 15))

		// then
		assert.Equal(t, "231.25", total.StringFixed(2))
	})
}

func TestUpcomingTasks(t *testing.T) {
	t.Run("should keep only tasks after now in collection order", func(t *testing.T) {
		tasks := []task.Task{
			{ID: 1, Title: "Later", Date: date(2024, 3, 31)},
			{ID: 2, Title: "Today", Date: firstOfMarch},
			{ID: 3, Title: "Past", Date: date(2024, 2, 1)},
			{ID: 4, Title: "Sooner", Date: date(2024, 3, 5)},
		}

		upcoming := UpcomingTasks(tasks, firstOfMarch)

		assert.Equal(t, []task.Task{tasks[0], tasks[3]}, upcoming)
	})
}

func TestPreview(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("should take leading items", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, Preview(items, 5))
	})

	t.Run("should return all items under the limit", func(t *testing.T) {
		assert.Equal(t, items, Preview(items, 10))
	})

	t.Run("should treat negative limit as zero", func(t *testing.T) {
		assert.Empty(t, Preview(items, -1))
	})

	t.Run("should not alias input", func(t *testing.T) {
		preview := Preview(items, 2)
		preview[0] = 100

		assert.Equal(t, 1, items[0])
	})
}

func TestMaintenanceTasks(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Title: "HVAC Maintenance", Type: task.TypeMaintenance, Status: task.StatusPending},
		{ID: 2, Title: "Property Tax Due", Type: task.TypeBill, Status: task.StatusPending},
		{ID: 3, Title: "Clean gutters", Type: task.TypeMaintenance, Status: task.StatusCompleted},
	}

	m := MaintenanceTasks(tasks)

	assert.Equal(t, []task.Task{tasks[0]}, m.Pending)
	assert.Equal(t, []task.Task{tasks[2]}, m.Completed)
}

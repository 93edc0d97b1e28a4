package dashboard

import (
	"testing"

	"github.com/homedash/homedash/pkg/bill"
	"github.com/homedash/homedash/pkg/expense"
	"github.com/homedash/homedash/pkg/task"
	"github.com/homedash/homedash/pkg/warranty"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvRendererImpl_RenderSummary(t *testing.T) {
	// given
	summary := Summary{
		GeneratedAt:       date(2024, 3, 20),
		UpcomingTaskCount: 1,
		UpcomingTasks:     []task.Task{{ID: 2, Title: "Property Tax Due", Date: date(2024, 3, 31), Type: task.TypeBill}},
		BillsDueSoon: []bill.Bill{
			{ID: 1, Name: "Mortgage", Amount: decimal.NewFromInt(1500), DueDate: date(2024, 3, 25), Category: "Housing"},
		},
		MonthlyExpenses: decimal.RequireFromString("231.25"),
		RecentExpenses: []expense.Expense{
			{ID: 1, Title: "Water Bill, March", Amount: decimal.RequireFromString("85.5"), Date: date(2024, 3, 1), Category: "Utilities"},
		},
		Warranties: []WarrantyStatus{
			{Warranty: warranty.Warranty{Item: "Refrigerator", ExpiryDate: date(2028, 1, 15)}, Status: ExpiryActive},
		},
	}

	// when
	csv, err := NewCsvRenderer().RenderSummary(summary)

	// then
	require.NoError(t, err)
	expected := "Section,Item,Date,Amount,Detail\n" +
		"Summary,Upcoming tasks,,,1\n" +
		"Summary,Bills due soon,,,1\n" +
		"Summary,Monthly expenses,2024-03-20,231.25,\n" +
		"Upcoming task,Property Tax Due,2024-03-31,,bill\n" +
		"Bill due soon,Mortgage,2024-03-25,1500.00,Housing\n" +
		"Recent expense,\"Water Bill, March\",2024-03-01,85.50,Utilities\n" +
		"Warranty,Refrigerator,2028-01-15,,active\n"
	assert.Equal(t, expected, csv)
}

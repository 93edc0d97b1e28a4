package seed

import (
	"time"

	"github.com/homedash/homedash/internal/utils"
	"github.com/homedash/homedash/pkg/bill"
	"github.com/homedash/homedash/pkg/budget"
	"github.com/homedash/homedash/pkg/document"
	"github.com/homedash/homedash/pkg/expense"
	"github.com/homedash/homedash/pkg/task"
	"github.com/homedash/homedash/pkg/vendor"
	"github.com/homedash/homedash/pkg/warranty"
	"github.com/shopspring/decimal"
)

// Data holds the records a store starts with. IDs are ignored; the store assigns them.
type Data struct {
	Bills      []bill.Bill
	Tasks      []task.Task
	Expenses   []expense.Expense
	Warranties []warranty.Warranty
	Documents  []document.Document
	Budgets    []budget.Budget
	Vendors    []vendor.Vendor
}

// Default returns the sample household used when no fixture file is configured.
// Dates are midnight in loc.
func Default(loc *time.Location) Data {
	date := func(value string) time.Time {
		return utils.MustParseDate(value, loc)
	}
	abcLastUsed := date("2024-02-15")
	xyzLastUsed := date("2024-01-20")

	return Data{
		Bills: []bill.Bill{
			{
				Name:      "Mortgage",
				Amount:    decimal.NewFromInt(1500),
				DueDate:   date("2024-03-25"),
				Category:  "Housing",
				IsAutoPay: true,
				Status:    bill.StatusPending,
			},
			{
				Name:      "Electric Bill",
				Amount:    decimal.RequireFromString("145.75"),
				DueDate:   date("2024-03-15"),
				Category:  "Utilities",
				IsAutoPay: false,
				Status:    bill.StatusPaid,
			},
		},
		Tasks: []task.Task{
			{Title: "HVAC Maintenance", Date: date("2024-03-20"), Type: task.TypeMaintenance, Status: task.StatusPending},
			{Title: "Property Tax Due", Date: date("2024-03-31"), Type: task.TypeBill, Status: task.StatusPending},
		},
		Expenses: []expense.Expense{
			{Title: "Water Bill", Amount: decimal.RequireFromString("85.50"), Date: date("2024-03-01"), Category: "Utilities"},
			{Title: "Electricity", Amount: decimal.RequireFromString("145.75"), Date: date("2024-03-05"), Category: "Utilities"},
		},
		Warranties: []warranty.Warranty{
			{
				Item:         "Refrigerator",
				Manufacturer: "Samsung",
				PurchaseDate: date("2023-01-15"),
				ExpiryDate:   date("2028-01-15"),
				Coverage:     "Parts and Labor",
				Documents:    []string{"warranty-card.pdf"},
				Status:       warranty.StatusActive,
			},
			{
				Item:         "HVAC System",
				Manufacturer: "Carrier",
				PurchaseDate: date("2022-06-01"),
				ExpiryDate:   date("2027-06-01"),
				Coverage:     "Full System Coverage",
				Documents:    []string{"warranty-registration.pdf", "service-contract.pdf"},
				Status:       warranty.StatusActive,
			},
		},
		Documents: []document.Document{
			{
				Title:      "Home Insurance Policy",
				Category:   "Insurance",
				UploadDate: date("2024-01-01"),
				URL:        "insurance-policy.pdf",
				Tags:       []string{"insurance", "policy", "home"},
			},
			{
				Title:      "Property Deed",
				Category:   "Legal",
				UploadDate: date("2023-12-15"),
				URL:        "property-deed.pdf",
				Tags:       []string{"legal", "property", "deed"},
			},
		},
		Budgets: []budget.Budget{
			{Category: "Utilities", Planned: decimal.NewFromInt(300), Actual: decimal.RequireFromString("285.50"), Month: "03", Year: 2024},
			{Category: "Maintenance", Planned: decimal.NewFromInt(200), Actual: decimal.NewFromInt(150), Month: "03", Year: 2024},
		},
		Vendors: []vendor.Vendor{
			{
				Name:     "ABC Plumbing",
				Category: "Plumbing",
				Phone:    "555-0123",
				Email:    "contact@abcplumbing.com",
				Rating:   4.5,
				LastUsed: &abcLastUsed,
				Notes:    "Reliable emergency service",
			},
			{
				Name:     "XYZ Electric",
				Category: "Electrical",
				Phone:    "555-0124",
				Email:    "service@xyzelectric.com",
				Rating:   5,
				LastUsed: &xyzLastUsed,
				Notes:    "Licensed for all electrical work",
			},
		},
	}
}

package bill

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
	// StatusOverdue is only ever set explicitly by a caller.
	StatusOverdue Status = "overdue"
)

// Categories are the suggestions offered when registering a bill. The category itself
// is free text.
var Categories = []string{"Housing", "Utilities", "Insurance", "Services"}

type Bill struct {
	ID        int
	Name      string
	Amount    decimal.Decimal
	DueDate   time.Time
	Category  string
	IsAutoPay bool
	Status    Status
}

// Patch holds the fields to change on a bill; nil fields are left untouched.
type Patch struct {
	Name      *string
	Amount    *decimal.Decimal
	DueDate   *time.Time
	Category  *string
	IsAutoPay *bool
	Status    *Status
}

// Apply returns a copy of b with the patched fields replaced. The id never changes.
func (p Patch) Apply(b Bill) Bill {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.DueDate != nil {
		b.DueDate = *p.DueDate
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.IsAutoPay != nil {
		b.IsAutoPay = *p.IsAutoPay
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	return b
}

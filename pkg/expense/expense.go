package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is append-only: once recorded it is never updated or removed.
type Expense struct {
	ID       int
	Title    string
	Amount   decimal.Decimal
	Date     time.Time
	Category string
}

package budget

import "github.com/shopspring/decimal"

// Budget is the planned and actual spending of one category in one month.
type Budget struct {
	ID       int
	Category string
	Planned  decimal.Decimal
	Actual   decimal.Decimal
	// Month is two digits, "01" to "12".
	Month string
	Year  int
}

// Remaining is what is left of the planned amount; negative when overspent.
func (b Budget) Remaining() decimal.Decimal {
	return b.Planned.Sub(b.Actual)
}

func (b Budget) IsOverspent() bool {
	return b.Actual.GreaterThan(b.Planned)
}

type Patch struct {
	Category *string
	Planned  *decimal.Decimal
	Actual   *decimal.Decimal
	Month    *string
	Year     *int
}

func (p Patch) Apply(b Budget) Budget {
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Planned != nil {
		b.Planned = *p.Planned
	}
	if p.Actual != nil {
		b.Actual = *p.Actual
	}
	if p.Month != nil {
		b.Month = *p.Month
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	return b
}

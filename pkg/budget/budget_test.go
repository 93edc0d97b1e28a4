package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var utilities = Budget{
	ID:       1,
	Category: "Utilities",
	Planned:  decimal.NewFromInt(300),
	Actual:   decimal.RequireFromString("285.50"),
	Month:    "03",
	Year:     2024,
}

func TestBudget_Remaining(t *testing.T) {
	tests := []struct {
		name      string
		budget    Budget
		remaining string
		overspent bool
	}{
		{"under plan", utilities, "14.5", false},
		{"exactly on plan", Budget{Planned: decimal.NewFromInt(200), Actual: decimal.NewFromInt(200)}, "0", false},
		{"overspent", Budget{Planned: decimal.NewFromInt(200), Actual: decimal.RequireFromString("250.25")}, "-50.25", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.remaining).Equal(tt.budget.Remaining()),
				"Remaining() = %s, want %s", tt.budget.Remaining(), tt.remaining)
			assert.Equal(t, tt.overspent, tt.budget.IsOverspent())
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	t.Run("should leave budget unchanged for empty patch", func(t *testing.T) {
		assert.Equal(t, utilities, Patch{}.Apply(utilities))
	})

	t.Run("should record actual spending", func(t *testing.T) {
		actual := decimal.RequireFromString("310.10")

		patched := Patch{Actual: &actual}.Apply(utilities)

		assert.True(t, actual.Equal(patched.Actual))
		assert.True(t, utilities.Planned.Equal(patched.Planned))
		assert.Equal(t, "03", patched.Month)
	})
}

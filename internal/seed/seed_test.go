package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/homedash/homedash/pkg/bill"
	"github.com/homedash/homedash/pkg/task"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("should provide two records per collection", func(t *testing.T) {
		data := Default(time.UTC)

		assert.Len(t, data.Bills, 2)
		assert.Len(t, data.Tasks, 2)
		assert.Len(t, data.Expenses, 2)
		assert.Len(t, data.Warranties, 2)
		assert.Len(t, data.Documents, 2)
		assert.Len(t, data.Budgets, 2)
		assert.Len(t, data.Vendors, 2)
	})

	t.Run("should date records in the requested location", func(t *testing.T) {
		warsaw, err := time.LoadLocation("Europe/Warsaw")
		require.NoError(t, err)

		data := Default(warsaw)

		assert.Equal(t, time.Date(2024, 3, 25, 0, 0, 0, 0, warsaw), data.Bills[0].DueDate)
		assert.Equal(t, warsaw, data.Vendors[0].LastUsed.Location())
	})

	t.Run("should not share vendor last-use dates", func(t *testing.T) {
		data := Default(time.UTC)

		assert.NotSame(t, data.Vendors[0].LastUsed, data.Vendors[1].LastUsed)
	})
}

func TestParse(t *testing.T) {
	t.Run("should parse every collection", func(t *testing.T) {
		// given
		content := []byte(`
bills:
  - name: Internet
    amount: "59.99"
    dueDate: "2024-03-10"
    category: Services
    isAutoPay: true
tasks:
  - title: Gutter cleaning
    date: "2024-04-02"
    type: maintenance
    status: completed
expenses:
  - title: Groceries
    amount: "120.40"
    date: "2024-03-03"
    category: Food
warranties:
  - item: Dishwasher
    manufacturer: Bosch
    purchaseDate: "2023-05-01"
    expiryDate: "2025-05-01"
    coverage: Parts
documents:
  - title: Lease
    category: Legal
    uploadDate: "2024-02-01"
    url: lease.pdf
    tags: [legal, lease]
budgets:
  - category: Food
    planned: "400"
    actual: "120.40"
    month: "03"
    year: 2024
vendors:
  - name: Green Lawns
    category: Landscaping
    phone: 555-0199
    email: hello@greenlawns.example
    rating: 3.5
`)

		// when
		data, err := Parse(content, time.UTC)

		// then
		require.NoError(t, err)
		require.Len(t, data.Bills, 1)
		assert.True(t, data.Bills[0].Amount.Equal(decimal.RequireFromString("59.99")))
		assert.Equal(t, bill.StatusPending, data.Bills[0].Status)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), data.Bills[0].DueDate)
		require.Len(t, data.Tasks, 1)
		assert.Equal(t, task.StatusCompleted, data.Tasks[0].Status)
		require.Len(t, data.Expenses, 1)
		require.Len(t, data.Warranties, 1)
		assert.Empty(t, data.Warranties[0].Documents)
		require.Len(t, data.Documents, 1)
		assert.Equal(t, []string{"legal", "lease"}, data.Documents[0].Tags)
		require.Len(t, data.Budgets, 1)
		assert.True(t, data.Budgets[0].Planned.Equal(decimal.NewFromInt(400)))
		require.Len(t, data.Vendors, 1)
		assert.Nil(t, data.Vendors[0].LastUsed)
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		// given
		content := []byte(`
bills:
  - name: Internet
    amount: lots
    dueDate: "10/03/2024"
tasks:
  - title: Gutter cleaning
    date: "2024-04-02"
    type: chore
`)

		// when
		_, err := Parse(content, time.UTC)

		// then
		require.ErrorIs(t, err, ErrInvalidFixture)
		assert.Contains(t, err.Error(), "bills[0].amount")
		assert.Contains(t, err.Error(), "bills[0].dueDate")
		assert.Contains(t, err.Error(), "tasks[0].type")
	})

	t.Run("should reject malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("bills: [unterminated"), time.UTC)

		assert.ErrorIs(t, err, ErrInvalidFixture)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("should load fixture from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("expenses:\n  - title: Water\n    amount: \"10\"\n    date: \"2024-03-01\"\n"), 0o600))

		data, err := LoadFile(path, time.UTC)

		require.NoError(t, err)
		require.Len(t, data.Expenses, 1)
		assert.Empty(t, data.Bills)
	})

	t.Run("should fail for missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), time.UTC)

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

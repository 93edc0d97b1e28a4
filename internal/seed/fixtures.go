package seed

import (
	"errors"
	"fmt"
	"os"
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
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFixture = errors.New("invalid seed fixture")

// Fixture file layout. Amounts and dates are kept as strings so they are parsed
// exactly as the HTTP API parses them.
type fixture struct {
	Bills []struct {
		Name      string `yaml:"name"`
		Amount    string `yaml:"amount"`
		DueDate   string `yaml:"dueDate"`
		Category  string `yaml:"category"`
		IsAutoPay bool   `yaml:"isAutoPay"`
		Status    string `yaml:"status"`
	} `yaml:"bills"`
	Tasks []struct {
		Title  string `yaml:"title"`
		Date   string `yaml:"date"`
		Type   string `yaml:"type"`
		Status string `yaml:"status"`
	} `yaml:"tasks"`
	Expenses []struct {
		Title    string `yaml:"title"`
		Amount   string `yaml:"amount"`
		Date     string `yaml:"date"`
		Category string `yaml:"category"`
	} `yaml:"expenses"`
	Warranties []struct {
		Item         string   `yaml:"item"`
		Manufacturer string   `yaml:"manufacturer"`
		PurchaseDate string   `yaml:"purchaseDate"`
		ExpiryDate   string   `yaml:"expiryDate"`
		Coverage     string   `yaml:"coverage"`
		Documents    []string `yaml:"documents"`
		Status       string   `yaml:"status"`
	} `yaml:"warranties"`
	Documents []struct {
		Title      string   `yaml:"title"`
		Category   string   `yaml:"category"`
		UploadDate string   `yaml:"uploadDate"`
		URL        string   `yaml:"url"`
		Tags       []string `yaml:"tags"`
	} `yaml:"documents"`
	Budgets []struct {
		Category string `yaml:"category"`
		Planned  string `yaml:"planned"`
		Actual   string `yaml:"actual"`
		Month    string `yaml:"month"`
		Year     int    `yaml:"year"`
	} `yaml:"budgets"`
	Vendors []struct {
		Name     string  `yaml:"name"`
		Category string  `yaml:"category"`
		Phone    string  `yaml:"phone"`
		Email    string  `yaml:"email"`
		Rating   float64 `yaml:"rating"`
		LastUsed string  `yaml:"lastUsed"`
		Notes    string  `yaml:"notes"`
	} `yaml:"vendors"`
}

// LoadFile reads seed records from a YAML fixture file.
func LoadFile(path string, loc *time.Location) (Data, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	data, err := Parse(content, loc)
	if err != nil {
		return Data{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	log.Infof("Loaded seed data from %s", path)
	return data, nil
}

// Parse decodes a YAML fixture. Collections missing from the document stay empty.
func Parse(content []byte, loc *time.Location) (Data, error) {
	var f fixture
	if err := yaml.Unmarshal(content, &f); err != nil {
		return Data{}, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}

	p := parser{loc: loc}
	data := Data{}

	for i, b := range f.Bills {
		p.at("bills", i)
		status := bill.Status(b.Status)
		if status == "" {
			status = bill.StatusPending
		}
		if !p.oneOf("status", string(status), bill.StatusPaid, bill.StatusPending, bill.StatusOverdue) {
			continue
		}
		data.Bills = append(data.Bills, bill.Bill{
			Name:      b.Name,
			Amount:    p.amount("amount", b.Amount),
			DueDate:   p.date("dueDate", b.DueDate),
			Category:  b.Category,
			IsAutoPay: b.IsAutoPay,
			Status:    status,
		})
	}

	for i, t := range f.Tasks {
		p.at("tasks", i)
		status := task.Status(t.Status)
		if status == "" {
			status = task.StatusPending
		}
		if !p.oneOf("type", t.Type, task.TypeMaintenance, task.TypeBill) ||
			!p.oneOf("status", string(status), task.StatusPending, task.StatusCompleted) {
			continue
		}
		data.Tasks = append(data.Tasks, task.Task{
			Title:  t.Title,
			Date:   p.date("date", t.Date),
			Type:   task.Type(t.Type),
			Status: status,
		})
	}

	for i, e := range f.Expenses {
		p.at("expenses", i)
		data.Expenses = append(data.Expenses, expense.Expense{
			Title:    e.Title,
			Amount:   p.amount("amount", e.Amount),
			Date:     p.date("date", e.Date),
			Category: e.Category,
		})
	}

	for i, w := range f.Warranties {
		p.at("warranties", i)
		status := warranty.Status(w.Status)
		if status == "" {
			status = warranty.StatusActive
		}
		if !p.oneOf("status", string(status), warranty.StatusActive, warranty.StatusExpired) {
			continue
		}
		data.Warranties = append(data.Warranties, warranty.Warranty{
			Item:         w.Item,
			Manufacturer: w.Manufacturer,
			PurchaseDate: p.date("purchaseDate", w.PurchaseDate),
			ExpiryDate:   p.date("expiryDate", w.ExpiryDate),
			Coverage:     w.Coverage,
			Documents:    w.Documents,
			Status:       status,
		})
	}

	for i, d := range f.Documents {
		p.at("documents", i)
		data.Documents = append(data.Documents, document.Document{
			Title:      d.Title,
			Category:   d.Category,
			UploadDate: p.date("uploadDate", d.UploadDate),
			URL:        d.URL,
			Tags:       d.Tags,
		})
	}

	for i, b := range f.Budgets {
		p.at("budgets", i)
		data.Budgets = append(data.Budgets, budget.Budget{
			Category: b.Category,
			Planned:  p.amount("planned", b.Planned),
			Actual:   p.amount("actual", b.Actual),
			Month:    b.Month,
			Year:     b.Year,
		})
	}

	for i, v := range f.Vendors {
		p.at("vendors", i)
		var lastUsed *time.Time
		if v.LastUsed != "" {
			date := p.date("lastUsed", v.LastUsed)
			lastUsed = &date
		}
		data.Vendors = append(data.Vendors, vendor.Vendor{
			Name:     v.Name,
			Category: v.Category,
			Phone:    v.Phone,
			Email:    v.Email,
			Rating:   v.Rating,
			LastUsed: lastUsed,
			Notes:    v.Notes,
		})
	}

	if len(p.errs) > 0 {
		return Data{}, fmt.Errorf("%w: %w", ErrInvalidFixture, errors.Join(p.errs...))
	}
	return data, nil
}

// parser collects field errors so a fixture reports all of its problems at once.
type parser struct {
	loc   *time.Location
	where string
	errs  []error
}

func (p *parser) at(collection string, index int) {
	p.where = fmt.Sprintf("%s[%d]", collection, index)
}

func (p *parser) fail(field string, err error) {
	p.errs = append(p.errs, fmt.Errorf("%s.%s: %w", p.where, field, err))
}

func (p *parser) amount(field, value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		p.fail(field, err)
	}
	return amount
}

func (p *parser) date(field, value string) time.Time {
	date, err := utils.ParseDate(value, p.loc)
	if err != nil {
		p.fail(field, err)
	}
	return date
}

func (p *parser) oneOf(field, value string, allowed ...any) bool {
	for _, a := range allowed {
		if fmt.Sprint(a) == value {
			return true
		}
	}
	p.fail(field, fmt.Errorf("unexpected value %q", value))
	return false
}

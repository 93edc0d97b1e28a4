package dashboard

import (
	"context"
	"time"

	"github.com/homedash/homedash/internal/utils"
	"github.com/homedash/homedash/pkg/bill"
	"github.com/homedash/homedash/pkg/expense"
	"github.com/homedash/homedash/pkg/task"
	"github.com/homedash/homedash/pkg/warranty"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Reader is the read side of the store the dashboard is computed from.
type Reader interface {
	Bills() []bill.Bill
	Tasks() []task.Task
	Expenses() []expense.Expense
	Warranties() []warranty.Warranty
}

type Settings struct {
	DueSoonDays      int
	ExpiringSoonDays int
	PreviewLimit     int
}

func DefaultSettings() Settings {
	return Settings{
		DueSoonDays:      DefaultDueSoonDays,
		ExpiringSoonDays: DefaultExpiringSoonDays,
		PreviewLimit:     DefaultPreviewLimit,
	}
}

type Summary struct {
	GeneratedAt time.Time
	// UpcomingTaskCount counts every upcoming task; UpcomingTasks holds the preview.
	UpcomingTaskCount int
	UpcomingTasks     []task.Task
	BillsDueSoon      []bill.Bill
	MonthlyExpenses   decimal.Decimal
	RecentExpenses    []expense.Expense
	Warranties        []WarrantyStatus
	Maintenance       Maintenance
}

type Service interface {
	GetSummary(ctx context.Context) Summary
	GetMaintenance(ctx context.Context) Maintenance
}

type ServiceImpl struct {
	reader   Reader
	clock    utils.Clock
	settings Settings
}

func NewService(reader Reader, clock utils.Clock, settings Settings) *ServiceImpl {
	return &ServiceImpl{
		reader:   reader,
		clock:    clock,
		settings: settings,
	}
}

func (s *ServiceImpl) GetSummary(ctx context.Context) Summary {
	now := s.clock.Now()
	tasks := s.reader.Tasks()
	expenses := s.reader.Expenses()

	upcoming := UpcomingTasks(tasks, now)
	summary := Summary{
		GeneratedAt:       now,
		UpcomingTaskCount: len(upcoming),
		UpcomingTasks:     Preview(upcoming, s.settings.PreviewLimit),
		BillsDueSoon:      BillsDueSoon(s.reader.Bills(), now, s.settings.DueSoonDays),
		MonthlyExpenses:   MonthlyExpenseTotal(expenses, now),
		RecentExpenses:    Preview(expenses, s.settings.PreviewLimit),
		Warranties:        WarrantyStatuses(s.reader.Warranties(), now, s.settings.ExpiringSoonDays),
		Maintenance:       MaintenanceTasks(tasks),
	}
	log.Debugf("Dashboard summary at %s: %d upcoming tasks, %d bills due soon, monthly expenses %s",
		now.Format(time.RFC3339), summary.UpcomingTaskCount, len(summary.BillsDueSoon), summary.MonthlyExpenses)
	return summary
}

func (s *ServiceImpl) GetMaintenance(ctx context.Context) Maintenance {
	return MaintenanceTasks(s.reader.Tasks())
}

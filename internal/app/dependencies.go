package app

import (
	"fmt"
	"time"

	"github.com/homedash/homedash/internal/config"
	"github.com/homedash/homedash/internal/event_bus"
	"github.com/homedash/homedash/internal/metrics"
	"github.com/homedash/homedash/internal/seed"
	"github.com/homedash/homedash/internal/store"
	"github.com/homedash/homedash/internal/utils"
	"github.com/homedash/homedash/pkg/bill"
	"github.com/homedash/homedash/pkg/budget"
	"github.com/homedash/homedash/pkg/dashboard"
	"github.com/homedash/homedash/pkg/document"
	"github.com/homedash/homedash/pkg/expense"
	"github.com/homedash/homedash/pkg/task"
	"github.com/homedash/homedash/pkg/vendor"
	"github.com/homedash/homedash/pkg/warranty"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Location *time.Location
	Clock    utils.Clock
	EventBus *event_bus.EventBus
	Metrics  *metrics.Metrics
	Store    *store.Store

	BillHandler     *bill.Handler
	TaskHandler     *task.Handler
	ExpenseHandler  *expense.Handler
	WarrantyHandler *warranty.Handler
	DocumentHandler *document.Handler
	BudgetHandler   *budget.Handler
	VendorHandler   *vendor.Handler

	DashboardService *dashboard.ServiceImpl
	CsvRenderer      *dashboard.CsvRendererImpl
	DashboardHandler *dashboard.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	deps.Location = loc
	deps.Clock = &utils.SystemClock{Location: loc}

	deps.EventBus = event_bus.NewEventBus()
	if cfg.Metrics.Enabled {
		// subscribed before seeding so mutation counters include the seed
		deps.Metrics = metrics.New()
		deps.Metrics.Subscribe(deps.EventBus)
	}

	data, err := loadSeed(cfg, loc)
	if err != nil {
		return nil, err
	}
	deps.Store = store.NewSeeded(deps.EventBus, data)
	if deps.Metrics != nil {
		deps.Metrics.TrackRecords(deps.Store.Sizes)
	}

	deps.BillHandler = bill.NewHandler(deps.Store, loc)
	deps.TaskHandler = task.NewHandler(deps.Store, loc)
	deps.ExpenseHandler = expense.NewHandler(deps.Store, loc)
	deps.WarrantyHandler = warranty.NewHandler(deps.Store, loc)
	deps.DocumentHandler = document.NewHandler(deps.Store, loc)
	deps.BudgetHandler = budget.NewHandler(deps.Store)
	deps.VendorHandler = vendor.NewHandler(deps.Store, loc)

	deps.DashboardService = dashboard.NewService(deps.Store, deps.Clock, dashboard.Settings{
		DueSoonDays:      cfg.Dashboard.DueSoonDays,
		ExpiringSoonDays: cfg.Dashboard.ExpiringSoonDays,
		PreviewLimit:     cfg.Dashboard.PreviewLimit,
	})
	deps.CsvRenderer = dashboard.NewCsvRenderer()
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService, deps.CsvRenderer)

	return deps, nil
}

func loadSeed(cfg config.Application, loc *time.Location) (seed.Data, error) {
	if !cfg.Seed.Enabled {
		return seed.Data{}, nil
	}
	if cfg.Seed.File == "" {
		return seed.Default(loc), nil
	}
	data, err := seed.LoadFile(cfg.Seed.File, loc)
	if err != nil {
		return seed.Data{}, fmt.Errorf("failed to load seed data: %w", err)
	}
	return data, nil
}

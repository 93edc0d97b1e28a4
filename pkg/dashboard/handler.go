package dashboard

import (
	"net/http"

	"github.com/homedash/homedash/internal/rest"
	"github.com/homedash/homedash/internal/utils"
	"github.com/homedash/homedash/pkg/bill"
	"github.com/homedash/homedash/pkg/expense"
	"github.com/homedash/homedash/pkg/task"
	"github.com/homedash/homedash/pkg/warranty"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type SummaryDTO struct {
	GeneratedAt       string               `json:"generatedAt"`
	UpcomingTaskCount int                  `json:"upcomingTaskCount"`
	UpcomingTasks     []task.TaskDTO       `json:"upcomingTasks"`
	DueSoonCount      int                  `json:"dueSoonCount"`
	BillsDueSoon      []bill.BillDTO       `json:"billsDueSoon"`
	MonthlyExpenses   decimal.Decimal      `json:"monthlyExpenses"`
	RecentExpenses    []expense.ExpenseDTO `json:"recentExpenses"`
	Warranties        []WarrantyStatusDTO  `json:"warranties"`
	Maintenance       MaintenanceDTO       `json:"maintenance"`
}

type WarrantyStatusDTO struct {
	Warranty        warranty.WarrantyDTO `json:"warranty"`
	Status          ExpiryStatus         `json:"status"`
	DaysUntilExpiry int                  `json:"daysUntilExpiry"`
}

type MaintenanceDTO struct {
	Pending   []task.TaskDTO `json:"pending"`
	Completed []task.TaskDTO `json:"completed"`
}

// Renderer turns a summary into a text document such as CSV.
type Renderer interface {
	RenderSummary(summary Summary) (string, error)
}

type Handler struct {
	service     Service
	csvRenderer Renderer
}

func NewHandler(service Service, csvRenderer Renderer) *Handler {
	return &Handler{service: service, csvRenderer: csvRenderer}
}

func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary := handler.service.GetSummary(r.Context())

	if r.Header.Get("Accept") == "text/csv" {
		csv, err := handler.csvRenderer.RenderSummary(summary)
		if err != nil {
			rest.WriteError(w, http.StatusInternalServerError, "Failed to render dashboard", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(csv)); err != nil {
			log.Errorf("failed to write csv response: %v", err)
		}
		return
	}

	rest.WriteJSON(w, http.StatusOK, SummaryToDTO(summary))
}

func (handler *Handler) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, MaintenanceToDTO(handler.service.GetMaintenance(r.Context())))
}

func SummaryToDTO(summary Summary) SummaryDTO {
	bills := make([]bill.BillDTO, 0, len(summary.BillsDueSoon))
	for _, b := range summary.BillsDueSoon {
		bills = append(bills, bill.BillToDTO(b))
	}
	expenses := make([]expense.ExpenseDTO, 0, len(summary.RecentExpenses))
	for _, e := range summary.RecentExpenses {
		expenses = append(expenses, expense.ExpenseToDTO(e))
	}
	warranties := make([]WarrantyStatusDTO, 0, len(summary.Warranties))
	for _, ws := range summary.Warranties {
		warranties = append(warranties, WarrantyStatusDTO{
			Warranty:        warranty.WarrantyToDTO(ws.Warranty),
			Status:          ws.Status,
			DaysUntilExpiry: ws.DaysUntilExpiry,
		})
	}
	return SummaryDTO{
		GeneratedAt:       summary.GeneratedAt.Format(utils.DateLayout),
		UpcomingTaskCount: summary.UpcomingTaskCount,
		UpcomingTasks:     tasksToDTO(summary.UpcomingTasks),
		DueSoonCount:      len(summary.BillsDueSoon),
		BillsDueSoon:      bills,
		MonthlyExpenses:   summary.MonthlyExpenses,
		RecentExpenses:    expenses,
		Warranties:        warranties,
		Maintenance:       MaintenanceToDTO(summary.Maintenance),
	}
}

func MaintenanceToDTO(maintenance Maintenance) MaintenanceDTO {
	return MaintenanceDTO{
		Pending:   tasksToDTO(maintenance.Pending),
		Completed: tasksToDTO(maintenance.Completed),
	}
}

func tasksToDTO(tasks []task.Task) []task.TaskDTO {
	dtos := make([]task.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, task.TaskToDTO(t))
	}
	return dtos
}

package app

import (
	"github.com/gorilla/mux"
	"github.com/homedash/homedash/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Bills
	r.HandleFunc("/api/bills", deps.BillHandler.List).Methods("GET")
	r.HandleFunc("/api/bills", deps.BillHandler.Create).Methods("POST")
	r.HandleFunc("/api/bills/categories", deps.BillHandler.ListCategories).Methods("GET")
	r.HandleFunc("/api/bills/{id}", deps.BillHandler.Update).Methods("PATCH")
	r.HandleFunc("/api/bills/{id}", deps.BillHandler.Delete).Methods("DELETE")

	// Tasks
	r.HandleFunc("/api/tasks", deps.TaskHandler.List).Methods("GET")
	r.HandleFunc("/api/tasks", deps.TaskHandler.Create).Methods("POST")
	r.HandleFunc("/api/tasks/{id}", deps.TaskHandler.Update).Methods("PATCH")
	r.HandleFunc("/api/tasks/{id}/toggle", deps.TaskHandler.ToggleStatus).Methods("PUT")
	r.HandleFunc("/api/tasks/{id}", deps.TaskHandler.Delete).Methods("DELETE")

	// Expenses
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.List).Methods("GET")
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.Create).Methods("POST")

	// Warranties
	r.HandleFunc("/api/warranties", deps.WarrantyHandler.List).Methods("GET")
	r.HandleFunc("/api/warranties", deps.WarrantyHandler.Create).Methods("POST")
	r.HandleFunc("/api/warranties/{id}", deps.WarrantyHandler.Update).Methods("PATCH")
	r.HandleFunc("/api/warranties/{id}", deps.WarrantyHandler.Delete).Methods("DELETE")

	// Documents
	r.HandleFunc("/api/documents", deps.DocumentHandler.List).Methods("GET")
	r.HandleFunc("/api/documents", deps.DocumentHandler.Create).Methods("POST")
	r.HandleFunc("/api/documents/{id}", deps.DocumentHandler.Update).Methods("PATCH")
	r.HandleFunc("/api/documents/{id}", deps.DocumentHandler.Delete).Methods("DELETE")

	// Budgets
	r.HandleFunc("/api/budgets", deps.BudgetHandler.List).Methods("GET")
	r.HandleFunc("/api/budgets", deps.BudgetHandler.Create).Methods("POST")
	r.HandleFunc("/api/budgets/{id}", deps.BudgetHandler.Update).Methods("PATCH")

	// Vendors
	r.HandleFunc("/api/vendors", deps.VendorHandler.List).Methods("GET")
	r.HandleFunc("/api/vendors", deps.VendorHandler.Create).Methods("POST")
	r.HandleFunc("/api/vendors/{id}", deps.VendorHandler.Update).Methods("PATCH")
	r.HandleFunc("/api/vendors/{id}", deps.VendorHandler.Delete).Methods("DELETE")

	// Dashboard
	r.HandleFunc("/api/dashboard", deps.DashboardHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/maintenance", deps.DashboardHandler.GetMaintenance).Methods("GET")

	if cfg.Metrics.Enabled {
		r.Handle("/metrics", deps.Metrics.Handler()).Methods("GET")
	}
}

package store

import (
	"context"

	"github.com/homedash/homedash/pkg/bill"
	"github.com/homedash/homedash/pkg/budget"
	"github.com/homedash/homedash/pkg/document"
	"github.com/homedash/homedash/pkg/expense"
	"github.com/homedash/homedash/pkg/task"
	"github.com/homedash/homedash/pkg/vendor"
	"github.com/homedash/homedash/pkg/warranty"
)

func (s *Store) Bills() []bill.Bill {
	s.mustBeInitialized()
	return read(s, s.bills)
}

func (s *Store) AddBill(ctx context.Context, b bill.Bill) bill.Bill {
	s.mustBeInitialized()
	return add(ctx, s, s.bills, b)
}

func (s *Store) UpdateBill(ctx context.Context, id int, patch bill.Patch) (bill.Bill, bool) {
	s.mustBeInitialized()
	return update(ctx, s, s.bills, id, patch.Apply)
}

func (s *Store) DeleteBill(ctx context.Context, id int) bool {
	s.mustBeInitialized()
	return remove(ctx, s, s.bills, id)
}

func (s *Store) Tasks() []task.Task {
	s.mustBeInitialized()
	return read(s, s.tasks)
}

func (s *Store) AddTask(ctx context.Context, t task.Task) task.Task {
	s.mustBeInitialized()
	return add(ctx, s, s.tasks, t)
}

func (s *Store) UpdateTask(ctx context.Context, id int, patch task.Patch) (task.Task, bool) {
	s.mustBeInitialized()
	return update(ctx, s, s.tasks, id, patch.Apply)
}

// ToggleTask flips the task status under the same lock that reads it.
func (s *Store) ToggleTask(ctx context.Context, id int) (task.Task, bool) {
	s.mustBeInitialized()
	return update(ctx, s, s.tasks, id, func(t task.Task) task.Task {
		t.Status = task.Toggle(t.Status)
		return t
	})
}

func (s *Store) DeleteTask(ctx context.Context, id int) bool {
	s.mustBeInitialized()
	return remove(ctx, s, s.tasks, id)
}

// Expenses are a ledger: they can be added but never changed or removed.

func (s *Store) Expenses() []expense.Expense {
	s.mustBeInitialized()
	return read(s, s.expenses)
}

func (s *Store) AddExpense(ctx context.Context, e expense.Expense) expense.Expense {
	s.mustBeInitialized()
	return add(ctx, s, s.expenses, e)
}

func (s *Store) Warranties() []warranty.Warranty {
	s.mustBeInitialized()
	return read(s, s.warranties)
}

func (s *Store) AddWarranty(ctx context.Context, w warranty.Warranty) warranty.Warranty {
	s.mustBeInitialized()
	return add(ctx, s, s.warranties, w)
}

func (s *Store) UpdateWarranty(ctx context.Context, id int, patch warranty.Patch) (warranty.Warranty, bool) {
	s.mustBeInitialized()
	return update(ctx, s, s.warranties, id, patch.Apply)
}

func (s *Store) DeleteWarranty(ctx context.Context, id int) bool {
	s.mustBeInitialized()
	return remove(ctx, s, s.warranties, id)
}

func (s *Store) Documents() []document.Document {
	s.mustBeInitialized()
	return read(s, s.documents)
}

func (s *Store) AddDocument(ctx context.Context, d document.Document) document.Document {
	s.mustBeInitialized()
	return add(ctx, s, s.documents, d)
}

func (s *Store) UpdateDocument(ctx context.Context, id int, patch document.Patch) (document.Document, bool) {
	s.mustBeInitialized()
	return update(ctx, s, s.documents, id, patch.Apply)
}

func (s *Store) DeleteDocument(ctx context.Context, id int) bool {
	s.mustBeInitialized()
	return remove(ctx, s, s.documents, id)
}

// Budgets are adjusted but not removed.

func (s *Store) Budgets() []budget.Budget {
	s.mustBeInitialized()
	return read(s, s.budgets)
}

func (s *Store) AddBudget(ctx context.Context, b budget.Budget) budget.Budget {
	s.mustBeInitialized()
	return add(ctx, s, s.budgets, b)
}

func (s *Store) UpdateBudget(ctx context.Context, id int, patch budget.Patch) (budget.Budget, bool) {
	s.mustBeInitialized()
	return update(ctx, s, s.budgets, id, patch.Apply)
}

func (s *Store) Vendors() []vendor.Vendor {
	s.mustBeInitialized()
	return read(s, s.vendors)
}

func (s *Store) AddVendor(ctx context.Context, v vendor.Vendor) vendor.Vendor {
	s.mustBeInitialized()
	return add(ctx, s, s.vendors, v)
}

func (s *Store) UpdateVendor(ctx context.Context, id int, patch vendor.Patch) (vendor.Vendor, bool) {
	s.mustBeInitialized()
	return update(ctx, s, s.vendors, id, patch.Apply)
}

func (s *Store) DeleteVendor(ctx context.Context, id int) bool {
	s.mustBeInitialized()
	return remove(ctx, s, s.vendors, id)
}

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/homedash/homedash/internal/event_bus"
	"github.com/homedash/homedash/internal/seed"
	"github.com/homedash/homedash/pkg/bill"
	"github.com/homedash/homedash/pkg/budget"
	"github.com/homedash/homedash/pkg/document"
	"github.com/homedash/homedash/pkg/expense"
	"github.com/homedash/homedash/pkg/task"
	"github.com/homedash/homedash/pkg/vendor"
	"github.com/homedash/homedash/pkg/warranty"
	log "github.com/sirupsen/logrus"
)

// ErrUninitialized is the panic value raised when a Store that was not built with New
// is used.
var ErrUninitialized = errors.New("store accessed without initialization")

// Store owns every household collection and is the only way to change them.
// Reads return copies; a mutation is visible to every reader once its method returns.
type Store struct {
	mu  sync.RWMutex
	bus *event_bus.EventBus

	bills      *collection[bill.Bill]
	tasks      *collection[task.Task]
	expenses   *collection[expense.Expense]
	warranties *collection[warranty.Warranty]
	documents  *collection[document.Document]
	budgets    *collection[budget.Budget]
	vendors    *collection[vendor.Vendor]
}

// New creates an empty store. Mutations are announced on bus when it is not nil.
func New(bus *event_bus.EventBus) *Store {
	return &Store{
		bus: bus,
		bills: newCollection("bills",
			func(b bill.Bill) int { return b.ID },
			func(b bill.Bill, id int) bill.Bill { b.ID = id; return b },
			nil),
		tasks: newCollection("tasks",
			func(t task.Task) int { return t.ID },
			func(t task.Task, id int) task.Task { t.ID = id; return t },
			nil),
		expenses: newCollection("expenses",
			func(e expense.Expense) int { return e.ID },
			func(e expense.Expense, id int) expense.Expense { e.ID = id; return e },
			nil),
		warranties: newCollection("warranties",
			func(w warranty.Warranty) int { return w.ID },
			func(w warranty.Warranty, id int) warranty.Warranty { w.ID = id; return w },
			warranty.Warranty.Clone),
		documents: newCollection("documents",
			func(d document.Document) int { return d.ID },
			func(d document.Document, id int) document.Document { d.ID = id; return d },
			document.Document.Clone),
		budgets: newCollection("budgets",
			func(b budget.Budget) int { return b.ID },
			func(b budget.Budget, id int) budget.Budget { b.ID = id; return b },
			nil),
		vendors: newCollection("vendors",
			func(v vendor.Vendor) int { return v.ID },
			func(v vendor.Vendor, id int) vendor.Vendor { v.ID = id; return v },
			vendor.Vendor.Clone),
	}
}

// Sizes reports the current length of every collection, keyed by collection name.
func (s *Store) Sizes() map[string]int {
	s.mustBeInitialized()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		s.bills.name:      len(s.bills.items),
		s.tasks.name:      len(s.tasks.items),
		s.expenses.name:   len(s.expenses.items),
		s.warranties.name: len(s.warranties.items),
		s.documents.name:  len(s.documents.items),
		s.budgets.name:    len(s.budgets.items),
		s.vendors.name:    len(s.vendors.items),
	}
}

// NewSeeded creates a store holding data, added in order through the regular add path.
func NewSeeded(bus *event_bus.EventBus, data seed.Data) *Store {
	s := New(bus)
	ctx := context.Background()
	for _, b := range data.Bills {
		s.AddBill(ctx, b)
	}
	for _, t := range data.Tasks {
		s.AddTask(ctx, t)
	}
	for _, e := range data.Expenses {
		s.AddExpense(ctx, e)
	}
	for _, w := range data.Warranties {
		s.AddWarranty(ctx, w)
	}
	for _, d := range data.Documents {
		s.AddDocument(ctx, d)
	}
	for _, b := range data.Budgets {
		s.AddBudget(ctx, b)
	}
	for _, v := range data.Vendors {
		s.AddVendor(ctx, v)
	}
	log.Infof("Store seeded with %d bills, %d tasks, %d expenses, %d warranties, %d documents, %d budgets, %d vendors",
		len(data.Bills), len(data.Tasks), len(data.Expenses), len(data.Warranties),
		len(data.Documents), len(data.Budgets), len(data.Vendors))
	return s
}

// mustBeInitialized guards every exported method, before any field is touched.
func (s *Store) mustBeInitialized() {
	if s == nil || s.bills == nil {
		panic(ErrUninitialized)
	}
}

func (s *Store) publish(ctx context.Context, change event_bus.CollectionChanged) {
	log.Debugf("Store: %s %s, id %d", change.Collection, change.Op, change.ID)
	if s.bus == nil {
		return
	}
	// Consumers cannot veto a mutation that already happened.
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.CollectionChangedEvent, change)); err != nil {
		log.Warnf("Store: failed to notify about %s %s: %v", change.Collection, change.Op, err)
	}
}

func read[T any](s *Store, c *collection[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.snapshot()
}

func add[T any](ctx context.Context, s *Store, c *collection[T], record T) T {
	s.mu.Lock()
	stored := c.add(record)
	change := event_bus.CollectionChanged{
		Collection: c.name,
		Op:         event_bus.OperationAdded,
		ID:         c.id(stored),
		Size:       len(c.items),
	}
	s.mu.Unlock()

	s.publish(ctx, change)
	return stored
}

func update[T any](ctx context.Context, s *Store, c *collection[T], id int, apply func(T) T) (T, bool) {
	s.mu.Lock()
	updated, ok := c.update(id, apply)
	size := len(c.items)
	s.mu.Unlock()

	if !ok {
		log.Debugf("Store: no %s record with id %d to update", c.name, id)
		return updated, false
	}
	s.publish(ctx, event_bus.CollectionChanged{
		Collection: c.name,
		Op:         event_bus.OperationUpdated,
		ID:         id,
		Size:       size,
	})
	return updated, true
}

func remove[T any](ctx context.Context, s *Store, c *collection[T], id int) bool {
	s.mu.Lock()
	ok := c.remove(id)
	size := len(c.items)
	s.mu.Unlock()

	if !ok {
		log.Debugf("Store: no %s record with id %d to delete", c.name, id)
		return false
	}
	s.publish(ctx, event_bus.CollectionChanged{
		Collection: c.name,
		Op:         event_bus.OperationDeleted,
		ID:         id,
		Size:       size,
	})
	return true
}

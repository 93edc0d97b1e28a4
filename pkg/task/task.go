package task

import "time"

type Type string

const (
	TypeMaintenance Type = "maintenance"
	// TypeBill tasks are reminders only; they do not reference a bill record.
	TypeBill Type = "bill"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

type Task struct {
	ID     int
	Title  string
	Date   time.Time
	Type   Type
	Status Status
}

type Patch struct {
	Title  *string
	Date   *time.Time
	Type   *Type
	Status *Status
}

func (p Patch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}

// Toggle flips a task between pending and completed.
func Toggle(status Status) Status {
	if status == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

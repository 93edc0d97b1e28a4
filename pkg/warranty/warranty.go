package warranty

import (
	"slices"
	"time"
)

// Status is recorded when the warranty is registered and is never reconciled with
// the expiry date. Display code classifies expiry from ExpiryDate instead.
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

type Warranty struct {
	ID           int
	Item         string
	Manufacturer string
	PurchaseDate time.Time
	ExpiryDate   time.Time
	Coverage     string
	// Documents are file names of the attached paperwork.
	Documents []string
	Status    Status
}

// Clone returns a copy that shares no slices with w.
func (w Warranty) Clone() Warranty {
	w.Documents = slices.Clone(w.Documents)
	return w
}

type Patch struct {
	Item         *string
	Manufacturer *string
	PurchaseDate *time.Time
	ExpiryDate   *time.Time
	Coverage     *string
	Documents    *[]string
	Status       *Status
}

func (p Patch) Apply(w Warranty) Warranty {
	w = w.Clone()
	if p.Item != nil {
		w.Item = *p.Item
	}
	if p.Manufacturer != nil {
		w.Manufacturer = *p.Manufacturer
	}
	if p.PurchaseDate != nil {
		w.PurchaseDate = *p.PurchaseDate
	}
	if p.ExpiryDate != nil {
		w.ExpiryDate = *p.ExpiryDate
	}
	if p.Coverage != nil {
		w.Coverage = *p.Coverage
	}
	if p.Documents != nil {
		w.Documents = slices.Clone(*p.Documents)
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	return w
}

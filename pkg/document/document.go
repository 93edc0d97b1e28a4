package document

import (
	"slices"
	"time"
)

// Document describes a household document. URL only references the file; no file
// content is stored.
type Document struct {
	ID         int
	Title      string
	Category   string
	UploadDate time.Time
	URL        string
	Tags       []string
}

// Clone returns a copy that shares no slices with d. Tags are kept as they are.
func (d Document) Clone() Document {
	d.Tags = slices.Clone(d.Tags)
	return d
}

type Patch struct {
	Title      *string
	Category   *string
	UploadDate *time.Time
	URL        *string
	Tags       *[]string
}

func (p Patch) Apply(d Document) Document {
	d = d.Clone()
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.UploadDate != nil {
		d.UploadDate = *p.UploadDate
	}
	if p.URL != nil {
		d.URL = *p.URL
	}
	if p.Tags != nil {
		d.Tags = slices.Clone(*p.Tags)
	}
	return d
}

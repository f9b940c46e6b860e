package site

import "github.com/empreweb/empreweb-backend/internal/content/domain"

// Draft is a local copy of one card being edited; nothing reaches the API until Commit.
type Draft struct {
	original domain.Service
	current  domain.Service
}

func NewDraft(svc domain.Service) *Draft {
	return &Draft{original: svc, current: svc}
}

// Edit sets the editable fields; nil leaves a field untouched.
func (d *Draft) Edit(title, price, desc *string) {
	if title != nil {
		d.current.Title = *title
	}
	if price != nil {
		d.current.Price = *price
	}
	if desc != nil {
		d.current.Description = *desc
	}
}

func (d *Draft) Value() domain.Service { return d.current }

func (d *Draft) Dirty() bool { return d.current != d.original }

// Commit returns the full record to save and makes it the new baseline.
func (d *Draft) Commit() domain.Service {
	d.original = d.current
	return d.current
}

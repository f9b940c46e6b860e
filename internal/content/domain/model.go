package domain

import (
	"strings"
	"time"
)

// Category tags a Service with the storefront section it is rendered in.
type Category string

const (
	CategoryWeb       Category = "web"
	CategoryLanding   Category = "landing"
	CategoryPrincipal Category = "principal"
	CategoryAdicional Category = "adicional"
	CategoryProyecto  Category = "proyecto"
)

// Categories lists every accepted category value.
var Categories = []Category{
	CategoryWeb,
	CategoryLanding,
	CategoryPrincipal,
	CategoryAdicional,
	CategoryProyecto,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// DefaultRating is applied to reviews submitted without a star rating.
const DefaultRating = 5

// Service is an offered plan or feature card.
// It is storage-agnostic and used across repository, HTTP and site layers.
type Service struct {
	ID          string   `json:"_id"`
	Title       string   `json:"titulo"`
	Price       string   `json:"precio"`
	Description string   `json:"desc"`
	Category    Category `json:"categoria"`
	Featured    bool     `json:"destacado"`
}

// Features splits the comma-delimited description into trimmed bullet items.
func (s Service) Features() []string {
	parts := strings.Split(s.Description, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Review is a public testimonial. Rating is expected in [1,5] but not enforced.
type Review struct {
	ID      string `json:"_id"`
	Name    string `json:"nombre"`
	Comment string `json:"comentario"`
	Rating  int    `json:"estrellas"`
}

// Normalize applies the default rating when none was given.
func (r *Review) Normalize() {
	if r.Rating == 0 {
		r.Rating = DefaultRating
	}
}

// ContactSubmission is a lead captured by the contact form. It is never read back through the API.
type ContactSubmission struct {
	ID        string    `json:"_id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Message   string    `json:"mensaje"`
	CreatedAt time.Time `json:"fecha"`
}

// Package repository declares the Content Store contracts implemented by the storage backends.
package repository

import (
	"context"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	// Create assigns svc.ID.
	Create(ctx context.Context, svc *domain.Service) error
	// Replace overwrites every field of the record with id and returns domain.ErrNotFound when it is missing.
	Replace(ctx context.Context, id string, svc domain.Service) (*domain.Service, error)
	// Delete reports whether a record was removed; a missing id is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}

type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id string) (bool, error)
}

type ContactRepository interface {
	Create(ctx context.Context, c *domain.ContactSubmission) error
}

// Store bundles the three collections of one backend.
type Store interface {
	Services() ServiceRepository
	Reviews() ReviewRepository
	Contacts() ContactRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

package site

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

// Lister is the read side of Client.
type Lister interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

type Catalog struct {
	Services []domain.Service
	Reviews  []domain.Review
}

// Sections holds the services of each rendered block, in list order.
type Sections struct {
	Principal []domain.Service
	Web       []domain.Service
	Landing   []domain.Service
	Adicional []domain.Service
}

// LoadCatalog fetches services and reviews concurrently. Any failure yields an empty catalog.
func LoadCatalog(ctx context.Context, l Lister) (Catalog, error) {
	var (
		services []domain.Service
		reviews  []domain.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		services, err = l.ListServices(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = l.ListReviews(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}
	return Catalog{Services: services, Reviews: reviews}, nil
}

func (c Catalog) Sections() Sections {
	var s Sections
	for _, svc := range c.Services {
		switch svc.Category {
		case domain.CategoryPrincipal:
			s.Principal = append(s.Principal, svc)
		case domain.CategoryWeb:
			s.Web = append(s.Web, svc)
		case domain.CategoryLanding:
			s.Landing = append(s.Landing, svc)
		case domain.CategoryAdicional:
			s.Adicional = append(s.Adicional, svc)
		}
	}
	return s
}

// FindService returns the listed service with id.
func (c Catalog) FindService(id string) (domain.Service, bool) {
	for _, svc := range c.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return domain.Service{}, false
}

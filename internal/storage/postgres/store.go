package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
	"github.com/empreweb/empreweb-backend/internal/content/repository"
)

type Store struct {
	db       *sql.DB
	services *ServiceRepository
	reviews  *ReviewRepository
	contacts *ContactRepository
}

var _ repository.Store = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		services: &ServiceRepository{t: table[domain.Service]{db: db, name: "servicios"}},
		reviews:  &ReviewRepository{t: table[domain.Review]{db: db, name: "resenas"}},
		contacts: &ContactRepository{t: table[domain.ContactSubmission]{db: db, name: "contactos"}},
	}
}

func (s *Store) Services() repository.ServiceRepository { return s.services }
func (s *Store) Reviews() repository.ReviewRepository   { return s.reviews }
func (s *Store) Contacts() repository.ContactRepository { return s.contacts }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Close(context.Context) error { return s.db.Close() }

type ServiceRepository struct {
	t table[domain.Service]
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	return r.t.list(ctx)
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	svc.ID = uuid.New().String()
	return r.t.insert(ctx, svc.ID, *svc)
}

func (r *ServiceRepository) Replace(ctx context.Context, id string, svc domain.Service) (*domain.Service, error) {
	svc.ID = id
	ok, err := r.t.replace(ctx, id, svc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &svc, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.t.remove(ctx, id)
}

type ReviewRepository struct {
	t table[domain.Review]
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	return r.t.list(ctx)
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	rev.ID = uuid.New().String()
	return r.t.insert(ctx, rev.ID, *rev)
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.t.remove(ctx, id)
}

type ContactRepository struct {
	t table[domain.ContactSubmission]
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.ContactSubmission) error {
	c.ID = uuid.New().String()
	return r.t.insert(ctx, c.ID, *c)
}

package redisdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
	"github.com/empreweb/empreweb-backend/internal/content/repository"
)

type Options struct {
	Addr     string
	Password string
	DB       int
	PingTO   time.Duration
}

// Open connects to Redis and fails fast when the server does not answer a ping.
func Open(ctx context.Context, opt Options) (*Store, error) {
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewStore(client), nil
}

type Store struct {
	client   *redis.Client
	services *ServiceRepo
	reviews  *ReviewRepo
	contacts *ContactRepo
}

var _ repository.Store = (*Store)(nil)

func NewStore(client *redis.Client) *Store {
	return &Store{
		client:   client,
		services: &ServiceRepo{coll: collection[domain.Service]{client: client, name: "servicios"}},
		reviews:  &ReviewRepo{coll: collection[domain.Review]{client: client, name: "resenas"}},
		contacts: &ContactRepo{coll: collection[domain.ContactSubmission]{client: client, name: "contactos"}},
	}
}

func (s *Store) Services() repository.ServiceRepository { return s.services }
func (s *Store) Reviews() repository.ReviewRepository   { return s.reviews }
func (s *Store) Contacts() repository.ContactRepository { return s.contacts }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close(context.Context) error {
	return s.client.Close()
}

type ServiceRepo struct {
	coll collection[domain.Service]
}

func (r *ServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	return r.coll.list(ctx)
}

func (r *ServiceRepo) Create(ctx context.Context, svc *domain.Service) error {
	svc.ID = uuid.New().String()
	return r.coll.insert(ctx, svc.ID, *svc)
}

func (r *ServiceRepo) Replace(ctx context.Context, id string, svc domain.Service) (*domain.Service, error) {
	svc.ID = id
	ok, err := r.coll.replace(ctx, id, svc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &svc, nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.coll.remove(ctx, id)
}

type ReviewRepo struct {
	coll collection[domain.Review]
}

func (r *ReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	return r.coll.list(ctx)
}

func (r *ReviewRepo) Create(ctx context.Context, rev *domain.Review) error {
	rev.ID = uuid.New().String()
	return r.coll.insert(ctx, rev.ID, *rev)
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.coll.remove(ctx, id)
}

type ContactRepo struct {
	coll collection[domain.ContactSubmission]
}

func (r *ContactRepo) Create(ctx context.Context, c *domain.ContactSubmission) error {
	c.ID = uuid.New().String()
	return r.coll.insert(ctx, c.ID, *c)
}

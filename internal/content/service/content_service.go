package service

import (
	"context"
	"fmt"
	"time"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
	"github.com/empreweb/empreweb-backend/internal/content/repository"
	"github.com/empreweb/empreweb-backend/internal/logging"
)

// Notifier relays a stored contact submission to the business owner.
type Notifier interface {
	Notify(ctx context.Context, c domain.ContactSubmission) error
}

// ContentService handles the catalog, reviews and contact submissions.
type ContentService struct {
	store    repository.Store
	notifier Notifier
	log      logging.Logger
	now      func() time.Time
}

func NewContentService(store repository.Store, notifier Notifier, log logging.Logger) *ContentService {
	return &ContentService{
		store:    store,
		notifier: notifier,
		log:      log.With("component", "content"),
		now:      time.Now,
	}
}

func (s *ContentService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.store.Services().List(ctx)
}

func (s *ContentService) CreateService(ctx context.Context, svc domain.Service) (*domain.Service, error) {
	if err := checkCategory(svc.Category); err != nil {
		return nil, err
	}
	svc.ID = ""
	if err := s.store.Services().Create(ctx, &svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	s.log.Info(ctx, "service created", "id", svc.ID, "categoria", svc.Category)
	return &svc, nil
}

// UpdateService replaces every field of the service; the id never changes.
func (s *ContentService) UpdateService(ctx context.Context, id string, svc domain.Service) (*domain.Service, error) {
	if err := checkCategory(svc.Category); err != nil {
		return nil, err
	}
	updated, err := s.store.Services().Replace(ctx, id, svc)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "service updated", "id", id)
	return updated, nil
}

func (s *ContentService) DeleteService(ctx context.Context, id string) (bool, error) {
	deleted, err := s.store.Services().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete service: %w", err)
	}
	s.log.Info(ctx, "service deleted", "id", id, "deleted", deleted)
	return deleted, nil
}

func (s *ContentService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return s.store.Reviews().List(ctx)
}

func (s *ContentService) CreateReview(ctx context.Context, r domain.Review) (*domain.Review, error) {
	r.ID = ""
	r.Normalize()
	if err := s.store.Reviews().Create(ctx, &r); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	s.log.Info(ctx, "review created", "id", r.ID, "estrellas", r.Rating)
	return &r, nil
}

func (s *ContentService) DeleteReview(ctx context.Context, id string) (bool, error) {
	deleted, err := s.store.Reviews().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	s.log.Info(ctx, "review deleted", "id", id, "deleted", deleted)
	return deleted, nil
}

// SubmitContact stores the submission, then notifies. A notification failure is only logged.
func (s *ContentService) SubmitContact(ctx context.Context, c domain.ContactSubmission) (*domain.ContactSubmission, error) {
	c.ID = ""
	c.CreatedAt = s.now().UTC()
	if err := s.store.Contacts().Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("store contact: %w", err)
	}
	s.log.Info(ctx, "contact stored", "id", c.ID)

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, c); err != nil {
			s.log.Error(ctx, "contact notification failed", "id", c.ID, "error", err)
		}
	}
	return &c, nil
}

// Ping reports store reachability for the health handler.
func (s *ContentService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// An empty category is stored as-is; anything else must be a known one.
func checkCategory(c domain.Category) error {
	if c == "" || c.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrInvalidCategory, c)
}

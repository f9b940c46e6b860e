package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/empreweb/empreweb-backend/internal/content/repository"
)

type Store struct {
	client   *mongo.Client
	services *ServiceRepo
	reviews  *ReviewRepo
	contacts *ContactRepo
}

var _ repository.Store = (*Store)(nil)

func NewStore(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		client:   client,
		services: &ServiceRepo{coll: db.Collection(servicesCollection)},
		reviews:  &ReviewRepo{coll: db.Collection(reviewsCollection)},
		contacts: &ContactRepo{coll: db.Collection(contactsCollection)},
	}
}

func (s *Store) Services() repository.ServiceRepository { return s.services }
func (s *Store) Reviews() repository.ReviewRepository   { return s.reviews }
func (s *Store) Contacts() repository.ContactRepository { return s.contacts }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

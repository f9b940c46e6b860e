package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

type ServiceRepo struct {
	coll *mongo.Collection
}

// insertion order: ObjectIDs grow with creation time
var byID = bson.D{{Key: "_id", Value: 1}}

func (r *ServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(byID))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []serviceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}

	out := make([]domain.Service, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ServiceRepo) Create(ctx context.Context, svc *domain.Service) error {
	res, err := r.coll.InsertOne(ctx, serviceToDoc(*svc))
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		svc.ID = oid.Hex()
	}
	return nil
}

func (r *ServiceRepo) Replace(ctx context.Context, id string, svc domain.Service) (*domain.Service, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var updated serviceDoc
	err := r.coll.FindOneAndReplace(
		ctx,
		bson.M{"_id": oid},
		serviceToDoc(svc),
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("replace service: %w", err)
	}

	out := updated.toDomain()
	return &out, nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete service: %w", err)
	}
	return res.DeletedCount > 0, nil
}

package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

type ReviewRepo struct {
	coll *mongo.Collection
}

func (r *ReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(byID))
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []reviewDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	out := make([]domain.Review, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ReviewRepo) Create(ctx context.Context, rev *domain.Review) error {
	res, err := r.coll.InsertOne(ctx, reviewToDoc(*rev))
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rev.ID = oid.Hex()
	}
	return nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	return res.DeletedCount > 0, nil
}

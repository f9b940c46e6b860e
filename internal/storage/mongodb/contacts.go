package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

type ContactRepo struct {
	coll *mongo.Collection
}

func (r *ContactRepo) Create(ctx context.Context, c *domain.ContactSubmission) error {
	res, err := r.coll.InsertOne(ctx, contactToDoc(*c))
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}

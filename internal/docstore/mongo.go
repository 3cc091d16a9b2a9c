package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/warehouse-service/internal/query"
)

// insertionOrder sorts by creation time with the ObjectID as tie-break, which
// reproduces insertion order for documents written by this service.
var insertionOrder = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

type mongoCollection[T any] struct {
	coll *mongo.Collection
}

// NewMongoCollection returns the named collection of db.
func NewMongoCollection[T any](db *mongo.Database, name string) Collection[T] {
	return &mongoCollection[T]{coll: db.Collection(name)}
}

func (c *mongoCollection[T]) Insert(ctx context.Context, doc *T) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", c.coll.Name(), err)
	}
	return nil
}

func (c *mongoCollection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s by id: %w", c.coll.Name(), err)
	}
	return &doc, nil
}

func (c *mongoCollection[T]) Find(ctx context.Context, filter Fields, limit query.Limit) ([]T, error) {
	result := make([]T, 0)
	// Mongo treats a zero limit as "no limit".
	if limit.Empty() {
		return result, nil
	}

	findOptions := options.Find().SetSort(insertionOrder)
	if n, ok := limit.Value(); ok {
		findOptions.SetLimit(int64(n))
	}

	cursor, err := c.coll.Find(ctx, toFilter(filter), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.coll.Name(), err)
	}
	return query.Apply(result, limit), nil
}

func (c *mongoCollection[T]) FindOne(ctx context.Context, filter Fields) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, toFilter(filter), options.FindOne().SetSort(insertionOrder)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find one in %s: %w", c.coll.Name(), err)
	}
	return &doc, nil
}

func (c *mongoCollection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set Fields) (*T, error) {
	update := bson.M{}
	for k, v := range set {
		if k != "_id" {
			update[k] = v
		}
	}
	if len(update) == 0 {
		return c.FindByID(ctx, id)
	}

	var doc T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", c.coll.Name(), err)
	}
	return &doc, nil
}

func (c *mongoCollection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", c.coll.Name(), err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func toFilter(filter Fields) bson.M {
	out := bson.M{}
	for k, v := range filter {
		out[k] = v
	}
	return out
}

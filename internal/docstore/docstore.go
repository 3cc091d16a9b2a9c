// Package docstore adapts document databases to a small typed collection API:
// insert, find by id, find by exact-match filter, partial update and delete.
package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/warehouse-service/internal/query"
)

// ErrNotFound is returned when no document matches an id or filter.
var ErrNotFound = errors.New("document not found")

// Fields maps document field names to values. It is used both as an exact-match
// filter and as the set of fields written by a partial update.
type Fields map[string]any

// Collection is a typed view over one collection of documents. Documents must carry
// their identifier in a field encoded as "_id"; unfiltered reads return documents in
// insertion order.
type Collection[T any] interface {
	Insert(ctx context.Context, doc *T) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	Find(ctx context.Context, filter Fields, limit query.Limit) ([]T, error)
	FindOne(ctx context.Context, filter Fields) (*T, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set Fields) (*T, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// documentID extracts the "_id" field of a document.
func documentID(doc any) (primitive.ObjectID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("encode document: %w", err)
	}
	id, ok := bson.Raw(raw).Lookup("_id").ObjectIDOK()
	if !ok || id.IsZero() {
		return primitive.NilObjectID, errors.New("document has no _id")
	}
	return id, nil
}

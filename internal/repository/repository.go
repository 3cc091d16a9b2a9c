package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/warehouse-service/internal/docstore"
	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/query"
)

// Collection names, one per entity.
const (
	ProductCollection  = "product"
	CustomerCollection = "customer"
	StaffCollection    = "staff"
	OrderCollection    = "order"
)

// Repository handles persistence for one entity type. Identifiers are the 24-hex
// string form of an ObjectID; a malformed identifier is reported as docstore.ErrNotFound.
type Repository[T any] interface {
	Create(ctx context.Context, doc *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, limit query.Limit) ([]T, error)
	Update(ctx context.Context, id string, fields docstore.Fields) (*T, error)
	Delete(ctx context.Context, id string) error
}

type (
	ProductRepository  = Repository[domain.Product]
	CustomerRepository = Repository[domain.Customer]
	StaffRepository    = Repository[domain.Staff]
)

type documentRepository[T any] struct {
	coll docstore.Collection[T]
}

// NewProductRepository instantiates the repository.
func NewProductRepository(backend *docstore.Backend) ProductRepository {
	return &documentRepository[domain.Product]{coll: docstore.Open[domain.Product](backend, ProductCollection)}
}

// NewCustomerRepository instantiates the repository.
func NewCustomerRepository(backend *docstore.Backend) CustomerRepository {
	return &documentRepository[domain.Customer]{coll: docstore.Open[domain.Customer](backend, CustomerCollection)}
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(backend *docstore.Backend) StaffRepository {
	return &documentRepository[domain.Staff]{coll: docstore.Open[domain.Staff](backend, StaffCollection)}
}

func (r *documentRepository[T]) Create(ctx context.Context, doc *T) error {
	return r.coll.Insert(ctx, doc)
}

func (r *documentRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return r.coll.FindByID(ctx, oid)
}

func (r *documentRepository[T]) List(ctx context.Context, limit query.Limit) ([]T, error) {
	return r.coll.Find(ctx, nil, limit)
}

func (r *documentRepository[T]) Update(ctx context.Context, id string, fields docstore.Fields) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return r.coll.UpdateByID(ctx, oid, fields)
}

func (r *documentRepository[T]) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	return r.coll.DeleteByID(ctx, oid)
}

// ParseID converts a hex identifier. Malformed input can never match a document, so it
// is reported as not found.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", docstore.ErrNotFound, id)
	}
	return oid, nil
}

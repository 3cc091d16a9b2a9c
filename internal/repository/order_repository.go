package repository

import (
	"context"

	"github.com/spec-kit/warehouse-service/internal/docstore"
	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/query"
)

// OrderRepository encapsulates order persistence and the reference lookups.
type OrderRepository interface {
	Repository[domain.Order]
	ListByProduct(ctx context.Context, productID string, limit query.Limit) ([]domain.Order, error)
	GetByProductAndCustomer(ctx context.Context, productID, customerID string) (*domain.Order, error)
}

type orderRepository struct {
	*documentRepository[domain.Order]
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(backend *docstore.Backend) OrderRepository {
	return &orderRepository{
		documentRepository: &documentRepository[domain.Order]{coll: docstore.Open[domain.Order](backend, OrderCollection)},
	}
}

// ListByProduct returns orders for productID in insertion order. A malformed id
// matches nothing.
func (r *orderRepository) ListByProduct(ctx context.Context, productID string, limit query.Limit) ([]domain.Order, error) {
	oid, err := ParseID(productID)
	if err != nil {
		return []domain.Order{}, nil
	}
	return r.coll.Find(ctx, docstore.Fields{domain.OrderFieldProductID: oid}, limit)
}

// GetByProductAndCustomer returns the first order, in insertion order, for the pair.
func (r *orderRepository) GetByProductAndCustomer(ctx context.Context, productID, customerID string) (*domain.Order, error) {
	productOID, err := ParseID(productID)
	if err != nil {
		return nil, err
	}
	customerOID, err := ParseID(customerID)
	if err != nil {
		return nil, err
	}
	return r.coll.FindOne(ctx, docstore.Fields{
		domain.OrderFieldProductID:  productOID,
		domain.OrderFieldCustomerID: customerOID,
	})
}

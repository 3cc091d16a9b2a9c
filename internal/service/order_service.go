package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/warehouse-service/internal/docstore"
	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/query"
	"github.com/spec-kit/warehouse-service/internal/repository"
	apperrors "github.com/spec-kit/warehouse-service/pkg/util/errorutil"
)

const (
	msgOrdersNotFoundForProduct = "Orders not found for the given product"
	msgOrderNotFoundForPair     = "Order not found for the given product and customer"
)

// OrderCreateInput carries the three references of a new order as hex identifiers.
type OrderCreateInput struct {
	ProductID  string
	CustomerID string
	StaffID    string
}

// OrderService creates and looks up orders.
type OrderService struct {
	deps Dependencies
}

// NewOrderService constructs the service.
func NewOrderService(deps Dependencies) *OrderService {
	return &OrderService{deps: deps}
}

// List returns orders in insertion order.
func (s *OrderService) List(ctx context.Context, limit query.Limit) ([]domain.Order, error) {
	orders, err := s.deps.Orders.List(ctx, limit)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return orders, nil
}

// Create resolves every reference before writing. An unresolvable reference rejects
// the request and nothing is stored.
func (s *OrderService) Create(ctx context.Context, in OrderCreateInput) (*domain.Order, error) {
	product, err := s.deps.Products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, referenceError(err, "Product", "product_id")
	}
	customer, err := s.deps.Customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, referenceError(err, "Customer", "customer_id")
	}
	member, err := s.deps.Staff.GetByID(ctx, in.StaffID)
	if err != nil {
		return nil, referenceError(err, "Staff member", "staff_id")
	}

	order := &domain.Order{
		ProductID:  product.ID,
		CustomerID: customer.ID,
		StaffID:    member.ID,
	}
	stampNew(order.Meta(), s.deps.now())
	if err := s.deps.Orders.Create(ctx, order); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	publish(ctx, s.deps, events.NewEvent(events.EventOrderCreated, repository.OrderCollection, order.ID.Hex(), order.CreatedAt, order))
	return order, nil
}

// ListByProduct returns the orders of a product. The limit is applied after the
// existence check, so a zero limit on a known product yields an empty list.
func (s *OrderService) ListByProduct(ctx context.Context, productID string, limit query.Limit) ([]domain.Order, error) {
	orders, err := s.deps.Orders.ListByProduct(ctx, productID, query.NoLimit())
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(orders) == 0 {
		return nil, apperrors.NewNotFound(msgOrdersNotFoundForProduct)
	}
	return query.Apply(orders, limit), nil
}

// GetByProductAndCustomer returns the earliest order matching both references.
func (s *OrderService) GetByProductAndCustomer(ctx context.Context, productID, customerID string) (*domain.Order, error) {
	order, err := s.deps.Orders.GetByProductAndCustomer(ctx, productID, customerID)
	if err != nil {
		return nil, mapStoreError(err, msgOrderNotFoundForPair)
	}
	return order, nil
}

func referenceError(err error, entity, field string) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return apperrors.NewBadRequest(fmt.Sprintf("%s referenced by %s not found", entity, field))
	}
	return apperrors.NewInternalError(err)
}

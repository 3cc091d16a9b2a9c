package service

import (
	"context"

	"github.com/spec-kit/warehouse-service/internal/docstore"
	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/query"
	"github.com/spec-kit/warehouse-service/internal/repository"
)

// ProductCreateInput carries the required product fields.
type ProductCreateInput struct {
	Name   string
	Price  float64
	Amount int64
}

// ProductUpdateInput carries the mutable product fields; nil fields keep their value.
// The name is fixed at creation.
type ProductUpdateInput struct {
	Price  *float64
	Amount *int64
}

func (in ProductUpdateInput) fields() docstore.Fields {
	set := docstore.Fields{}
	if in.Price != nil {
		set["price"] = *in.Price
	}
	if in.Amount != nil {
		set["amount"] = *in.Amount
	}
	return set
}

// ProductService manages the product catalogue.
type ProductService struct {
	products lifecycle[domain.Product, *domain.Product]
}

// NewProductService constructs the service.
func NewProductService(deps Dependencies) *ProductService {
	return &ProductService{products: lifecycle[domain.Product, *domain.Product]{
		deps:       deps,
		repo:       deps.Products,
		collection: repository.ProductCollection,
		notFound:   "Product not found",
		created:    events.EventProductCreated,
		updated:    events.EventProductUpdated,
		deleted:    events.EventProductDeleted,
	}}
}

// List returns products in insertion order.
func (s *ProductService) List(ctx context.Context, limit query.Limit) ([]domain.Product, error) {
	return s.products.list(ctx, limit)
}

// Create stores a new product.
func (s *ProductService) Create(ctx context.Context, in ProductCreateInput) (*domain.Product, error) {
	product := &domain.Product{Name: in.Name, Price: in.Price, Amount: in.Amount}
	if err := s.products.create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get fetches a product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.get(ctx, id)
}

// Update applies a partial update.
func (s *ProductService) Update(ctx context.Context, id string, in ProductUpdateInput) (*domain.Product, error) {
	return s.products.update(ctx, id, in.fields())
}

// Delete removes a product permanently.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.products.delete(ctx, id)
}

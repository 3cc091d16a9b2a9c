package service

import (
	"context"

	"github.com/spec-kit/warehouse-service/internal/docstore"
	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/query"
	"github.com/spec-kit/warehouse-service/internal/repository"
)

// CustomerCreateInput carries the required customer fields.
type CustomerCreateInput struct {
	FirstName  string
	LastName   string
	Street     string
	PostalCode string
	Age        int
}

// CustomerUpdateInput carries the only mutable customer field.
type CustomerUpdateInput struct {
	Age *int
}

func (in CustomerUpdateInput) fields() docstore.Fields {
	set := docstore.Fields{}
	if in.Age != nil {
		set["age"] = *in.Age
	}
	return set
}

// CustomerService manages customers.
type CustomerService struct {
	customers lifecycle[domain.Customer, *domain.Customer]
}

// NewCustomerService constructs the service.
func NewCustomerService(deps Dependencies) *CustomerService {
	return &CustomerService{customers: lifecycle[domain.Customer, *domain.Customer]{
		deps:       deps,
		repo:       deps.Customers,
		collection: repository.CustomerCollection,
		notFound:   "Customer not found",
		created:    events.EventCustomerCreated,
		updated:    events.EventCustomerUpdated,
		deleted:    events.EventCustomerDeleted,
	}}
}

func (s *CustomerService) List(ctx context.Context, limit query.Limit) ([]domain.Customer, error) {
	return s.customers.list(ctx, limit)
}

func (s *CustomerService) Create(ctx context.Context, in CustomerCreateInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Street:     in.Street,
		PostalCode: in.PostalCode,
		Age:        in.Age,
	}
	if err := s.customers.create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.get(ctx, id)
}

func (s *CustomerService) Update(ctx context.Context, id string, in CustomerUpdateInput) (*domain.Customer, error) {
	return s.customers.update(ctx, id, in.fields())
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.delete(ctx, id)
}

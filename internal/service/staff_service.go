package service

import (
	"context"

	"github.com/spec-kit/warehouse-service/internal/docstore"
	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/query"
	"github.com/spec-kit/warehouse-service/internal/repository"
)

// StaffCreateInput carries the required staff fields.
type StaffCreateInput struct {
	FirstName     string
	LastName      string
	EmployeeSince domain.Date
	Age           int
}

// StaffUpdateInput carries the mutable staff fields: last name and age.
type StaffUpdateInput struct {
	LastName *string
	Age      *int
}

func (in StaffUpdateInput) fields() docstore.Fields {
	set := docstore.Fields{}
	if in.LastName != nil {
		set["last_name"] = *in.LastName
	}
	if in.Age != nil {
		set["age"] = *in.Age
	}
	return set
}

// StaffService manages warehouse staff members.
type StaffService struct {
	staff lifecycle[domain.Staff, *domain.Staff]
}

// NewStaffService constructs the service.
func NewStaffService(deps Dependencies) *StaffService {
	return &StaffService{staff: lifecycle[domain.Staff, *domain.Staff]{
		deps:       deps,
		repo:       deps.Staff,
		collection: repository.StaffCollection,
		notFound:   "Staff member not found",
		created:    events.EventStaffCreated,
		updated:    events.EventStaffUpdated,
		deleted:    events.EventStaffDeleted,
	}}
}

// List returns staff members in insertion order.
func (s *StaffService) List(ctx context.Context, limit query.Limit) ([]domain.Staff, error) {
	return s.staff.list(ctx, limit)
}

// Create stores a new staff member.
func (s *StaffService) Create(ctx context.Context, in StaffCreateInput) (*domain.Staff, error) {
	member := &domain.Staff{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		EmployeeSince: in.EmployeeSince,
		Age:           in.Age,
	}
	if err := s.staff.create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Get fetches a staff member by id.
func (s *StaffService) Get(ctx context.Context, id string) (*domain.Staff, error) {
	return s.staff.get(ctx, id)
}

// Update applies a partial update.
func (s *StaffService) Update(ctx context.Context, id string, in StaffUpdateInput) (*domain.Staff, error) {
	return s.staff.update(ctx, id, in.fields())
}

// Delete removes a staff member permanently.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.staff.delete(ctx, id)
}

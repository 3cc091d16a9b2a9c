package dto

import "github.com/spec-kit/warehouse-service/internal/domain"

// CreateStaffRequest payload. employee_since is a YYYY-MM-DD string.
type CreateStaffRequest struct {
	FirstName     *string      `json:"first_name" validate:"required"`
	LastName      *string      `json:"last_name" validate:"required"`
	EmployeeSince *domain.Date `json:"employee_since" validate:"required"`
	Age           *int         `json:"age" validate:"required"`
}

// UpdateStaffRequest payload. Only last_name and age can change.
type UpdateStaffRequest struct {
	LastName *string `json:"last_name"`
	Age      *int    `json:"age"`
}

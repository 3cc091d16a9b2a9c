package dto

// CreateCustomerRequest payload.
type CreateCustomerRequest struct {
	FirstName  *string `json:"first_name" validate:"required"`
	LastName   *string `json:"last_name" validate:"required"`
	Street     *string `json:"street" validate:"required"`
	PostalCode *string `json:"postal_code" validate:"required"`
	Age        *int    `json:"age" validate:"required"`
}

// UpdateCustomerRequest payload. Only age can change.
type UpdateCustomerRequest struct {
	Age *int `json:"age"`
}

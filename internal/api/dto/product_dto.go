package dto

// CreateProductRequest payload. Pointer fields distinguish a missing key from a zero value.
type CreateProductRequest struct {
	Name   *string  `json:"name" validate:"required"`
	Price  *float64 `json:"price" validate:"required"`
	Amount *int64   `json:"amount" validate:"required"`
}

// UpdateProductRequest payload. Only price and amount can change; other keys are ignored.
type UpdateProductRequest struct {
	Price  *float64 `json:"price"`
	Amount *int64   `json:"amount"`
}

package dto

// CreateOrderRequest references existing documents by their hex identifiers.
type CreateOrderRequest struct {
	ProductID  *string `json:"product_id" validate:"required"`
	CustomerID *string `json:"customer_id" validate:"required"`
	StaffID    *string `json:"staff_id" validate:"required"`
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warehouse-service/internal/api/dto"
	"github.com/spec-kit/warehouse-service/internal/service"
)

// CustomersHandler serves /customers.
type CustomersHandler struct {
	service *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customerService *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{service: customerService}
}

// List GET /customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.service.List(c.UserContext(), limitParam(c))
	if err != nil {
		return err
	}
	return sendList(c, customers)
}

// Create POST /customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := bindCreate(c, &req); err != nil {
		return err
	}
	customer, err := h.service.Create(c.UserContext(), service.CustomerCreateInput{
		FirstName:  *req.FirstName,
		LastName:   *req.LastName,
		Street:     *req.Street,
		PostalCode: *req.PostalCode,
		Age:        *req.Age,
	})
	if err != nil {
		return err
	}
	return sendCreated(c, customer)
}

// Get GET /customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	customer, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// Update PUT /customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCustomerRequest
	if err := bindUpdate(c, &req); err != nil {
		return err
	}
	customer, err := h.service.Update(c.UserContext(), c.Params("id"), service.CustomerUpdateInput{
		Age: req.Age,
	})
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// Delete DELETE /customers/:id.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

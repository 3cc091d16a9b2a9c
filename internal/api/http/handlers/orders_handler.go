package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warehouse-service/internal/api/dto"
	"github.com/spec-kit/warehouse-service/internal/service"
)

// OrdersHandler serves /orders.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// List GET /orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	orders, err := h.service.List(c.UserContext(), limitParam(c))
	if err != nil {
		return err
	}
	return sendList(c, orders)
}

// Create POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := bindCreate(c, &req); err != nil {
		return err
	}
	order, err := h.service.Create(c.UserContext(), service.OrderCreateInput{
		ProductID:  *req.ProductID,
		CustomerID: *req.CustomerID,
		StaffID:    *req.StaffID,
	})
	if err != nil {
		return err
	}
	return sendCreated(c, order)
}

// ListByProduct GET /orders/:product_id.
func (h *OrdersHandler) ListByProduct(c *fiber.Ctx) error {
	orders, err := h.service.ListByProduct(c.UserContext(), c.Params("product_id"), limitParam(c))
	if err != nil {
		return err
	}
	return sendList(c, orders)
}

// GetByProductAndCustomer GET /orders/:product_id/:customer_id.
func (h *OrdersHandler) GetByProductAndCustomer(c *fiber.Ctx) error {
	order, err := h.service.GetByProductAndCustomer(c.UserContext(), c.Params("product_id"), c.Params("customer_id"))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

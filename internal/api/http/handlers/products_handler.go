package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warehouse-service/internal/api/dto"
	"github.com/spec-kit/warehouse-service/internal/service"
)

// ProductsHandler serves /products.
type ProductsHandler struct {
	service *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(productService *service.ProductService) *ProductsHandler {
	return &ProductsHandler{service: productService}
}

// List GET /products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext(), limitParam(c))
	if err != nil {
		return err
	}
	return sendList(c, products)
}

// Create POST /products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := bindCreate(c, &req); err != nil {
		return err
	}
	product, err := h.service.Create(c.UserContext(), service.ProductCreateInput{
		Name:   *req.Name,
		Price:  *req.Price,
		Amount: *req.Amount,
	})
	if err != nil {
		return err
	}
	return sendCreated(c, product)
}

// Get GET /products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Update PUT /products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := bindUpdate(c, &req); err != nil {
		return err
	}
	product, err := h.service.Update(c.UserContext(), c.Params("id"), service.ProductUpdateInput{
		Price:  req.Price,
		Amount: req.Amount,
	})
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Delete DELETE /products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

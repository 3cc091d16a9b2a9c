package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warehouse-service/internal/api/dto"
	"github.com/spec-kit/warehouse-service/internal/service"
)

// StaffHandler serves /staff.
type StaffHandler struct {
	service *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{service: staffService}
}

// List GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	members, err := h.service.List(c.UserContext(), limitParam(c))
	if err != nil {
		return err
	}
	return sendList(c, members)
}

// Create POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := bindCreate(c, &req); err != nil {
		return err
	}
	member, err := h.service.Create(c.UserContext(), service.StaffCreateInput{
		FirstName:     *req.FirstName,
		LastName:      *req.LastName,
		EmployeeSince: *req.EmployeeSince,
		Age:           *req.Age,
	})
	if err != nil {
		return err
	}
	return sendCreated(c, member)
}

// Get GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	member, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(member)
}

// Update PUT /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateStaffRequest
	if err := bindUpdate(c, &req); err != nil {
		return err
	}
	member, err := h.service.Update(c.UserContext(), c.Params("id"), service.StaffUpdateInput{
		LastName: req.LastName,
		Age:      req.Age,
	})
	if err != nil {
		return err
	}
	return c.JSON(member)
}

// Delete DELETE /staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

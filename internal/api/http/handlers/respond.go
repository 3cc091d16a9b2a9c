package handlers

import "github.com/gofiber/fiber/v2"

// sendList always renders a JSON array, never null.
func sendList[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(items)
}

func sendCreated(c *fiber.Ctx, doc any) error {
	return c.Status(fiber.StatusCreated).JSON(doc)
}

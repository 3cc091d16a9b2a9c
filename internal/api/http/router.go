package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/warehouse-service/internal/api/http/handlers"
	"github.com/spec-kit/warehouse-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Products  *handlers.ProductsHandler
	Customers *handlers.CustomersHandler
	Staff     *handlers.StaffHandler
	Orders    *handlers.OrdersHandler
	Metrics   *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	products := app.Group("/products")
	products.Get("", cfg.Products.List)
	products.Post("", cfg.Products.Create)
	products.Get("/:id", cfg.Products.Get)
	products.Put("/:id", cfg.Products.Update)
	products.Delete("/:id", cfg.Products.Delete)

	customers := app.Group("/customers")
	customers.Get("", cfg.Customers.List)
	customers.Post("", cfg.Customers.Create)
	customers.Get("/:id", cfg.Customers.Get)
	customers.Put("/:id", cfg.Customers.Update)
	customers.Delete("/:id", cfg.Customers.Delete)

	staff := app.Group("/staff")
	staff.Get("", cfg.Staff.List)
	staff.Post("", cfg.Staff.Create)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Put("/:id", cfg.Staff.Update)
	staff.Delete("/:id", cfg.Staff.Delete)

	orders := app.Group("/orders")
	orders.Get("", cfg.Orders.List)
	orders.Post("", cfg.Orders.Create)
	orders.Get("/:product_id", cfg.Orders.ListByProduct)
	orders.Get("/:product_id/:customer_id", cfg.Orders.GetByProductAndCustomer)
}

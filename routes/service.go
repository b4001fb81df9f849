package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendaja/agenda-api/controllers"
)

// SetupServiceRoutes configures all service related routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/servicos")
	service.Post("/", controllers.CreateService)
	service.Get("/", controllers.GetAllServices)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendaja/agenda-api/controllers"
)

// SetupHiringRoutes configures all hiring related routes
func SetupHiringRoutes(app *fiber.App) {
	hiring := app.Group("/contratacoes")
	hiring.Post("/", controllers.CreateHiring)
	hiring.Get("/cliente/:id", controllers.GetClientHirings)
	hiring.Patch("/:id/cancelar", controllers.CancelHiring)
}

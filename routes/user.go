package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendaja/agenda-api/controllers"
)

// SetupUserRoutes configures all user related routes
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/usuarios")
	user.Post("/", controllers.CreateUser)
	user.Get("/", controllers.GetAllUsers)
}

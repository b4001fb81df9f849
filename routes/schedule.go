package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendaja/agenda-api/controllers"
)

// SetupScheduleRoutes configures all schedule slot related routes
func SetupScheduleRoutes(app *fiber.App) {
	schedule := app.Group("/agendas")
	schedule.Get("/", controllers.GetAgendas)
	schedule.Post("/", controllers.CreateSlot)
	schedule.Get("/disponiveis", controllers.GetAvailableSlots)
}

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendaja/agenda-api/db"
	"github.com/agendaja/agenda-api/models"
)

// GetAgendas keeps the original placeholder body
func GetAgendas(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Rota de agendas funcionando 🚀",
	})
}

// CreateSlot opens a new schedule slot, available by default
func CreateSlot(c *fiber.Ctx) error {
	slot := new(models.ScheduleSlot)
	if err := c.BodyParser(slot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := db.DB.Create(slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(slot)
}

// GetAvailableSlots lists slots that are still open for reservation
func GetAvailableSlots(c *fiber.Ctx) error {
	slots := []models.ScheduleSlot{}
	if err := db.DB.Where("available = ?", true).Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(slots)
}

package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/agendaja/agenda-api/cache"
	"github.com/agendaja/agenda-api/db"
	"github.com/agendaja/agenda-api/models"
)

// GetAllServices returns all services with variations and provider joined.
// The listing is served from the Redis cache when warm.
func GetAllServices(c *fiber.Ctx) error {
	if payload, ok := cache.GetServices(c.Context()); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(payload)
	}

	services := []models.Service{}
	if err := db.DB.
		Preload("Variations").
		Preload("Provider").
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if payload, err := json.Marshal(services); err == nil {
		cache.SetServices(c.Context(), payload)
	}

	return c.JSON(services)
}

// CreateService inserts the service and all its variations as one composite
// write and returns the created graph.
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	cache.InvalidateServices(c.Context())

	return c.JSON(service)
}

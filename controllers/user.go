package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendaja/agenda-api/db"
	"github.com/agendaja/agenda-api/models"
)

// CreateUser inserts a user as given; the password hash arrives ready from
// the caller and is stored verbatim. Email uniqueness is enforced by the
// database constraint.
func CreateUser(c *fiber.Ctx) error {
	user := new(models.User)
	if err := c.BodyParser(user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := db.DB.Create(user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(user)
}

// GetAllUsers returns every user record
func GetAllUsers(c *fiber.Ctx) error {
	users := []models.User{}
	if err := db.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(users)
}

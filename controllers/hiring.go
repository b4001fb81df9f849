package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/agendaja/agenda-api/db"
	"github.com/agendaja/agenda-api/models"
	"github.com/agendaja/agenda-api/reservation"
)

func hiringService() *reservation.Service {
	return reservation.NewService(reservation.NewGormRepository(db.DB))
}

// CreateHiring reserves a schedule slot for a client. The slot claim and the
// hiring insert happen atomically; a taken or missing slot answers 400 with
// no writes.
func CreateHiring(c *fiber.Ctx) error {
	var req reservation.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	hiring, err := hiringService().Reserve(c.Context(), req)
	if err != nil {
		if errors.Is(err, reservation.ErrSlotUnavailable) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Slot indisponível",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(hiring)
}

// GetClientHirings lists a client's hirings with variation and slot joined
func GetClientHirings(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid client id",
		})
	}

	hirings, err := hiringService().ListByClient(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(hirings)
}

// CancelHiring transitions a hiring to CANCELADA and frees its slot
func CancelHiring(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid hiring id",
		})
	}

	hiring, err := hiringService().Cancel(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, reservation.ErrHiringNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Contratação não encontrada",
			})
		}
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(hiring)
}

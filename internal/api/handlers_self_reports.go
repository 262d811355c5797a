package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sosw-app/sosw/internal/services"
)

func (handler *Handler) InsertSelfReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	payload := selfReportPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	// Reports are voluntary unless the client marks them as prompted.
	voluntary := true
	if payload.Voluntary != nil {
		voluntary = *payload.Voluntary
	}

	input := services.SelfReportInput{
		Timestamp:     payload.Timestamp,
		StressLevel:   payload.StressLevel,
		Valence:       payload.Valence,
		Arousal:       payload.Arousal,
		Activity:      payload.Activity,
		Location:      payload.Location,
		SocialContext: payload.SocialContext,
	}

	report, validationErrors, err := handler.reportService.Insert(user.ID, input, voluntary, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store self-report")
	}
	if validationErrors != nil {
		return fieldErrors(c, validationErrors)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": report.ID})
}

package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sosw-app/sosw/internal/push"
)

const (
	emaPushTitle     = "Stress report time!"
	emaPushBody      = "Please log your current situation and stress levels."
	emaPushChannelID = "sosw.app.push"
)

func (handler *Handler) SendEmaPush(c *fiber.Ctx) error {
	payload := emaPushPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if payload.UserID == 0 {
		return fieldErrors(c, map[string]string{"user_id": "Invalid user id provided!"})
	}
	exists, err := handler.authService.UserExists(payload.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to look up user")
	}
	if !exists {
		return fieldErrors(c, map[string]string{"user_id": "Invalid user id provided!"})
	}

	target, err := handler.authService.FindByID(payload.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to look up user")
	}

	message := push.Message{
		Token:     target.FcmToken,
		Title:     emaPushTitle,
		Body:      emaPushBody,
		ChannelID: emaPushChannelID,
	}
	if err := handler.pushSender.Send(c.UserContext(), message); err != nil {
		if errors.Is(err, push.ErrInvalidToken) {
			return fieldErrors(c, map[string]string{"fcm_token": "Device token rejected by the push service"})
		}
		return apiError(c, fiber.StatusBadGateway, "push delivery failed")
	}

	if err := handler.reportService.LogPrompt(target.ID, time.Now().In(handler.location)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to record prompt")
	}

	return c.Status(fiber.StatusOK).Send(nil)
}

package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sosw-app/sosw/internal/services"
)

func (handler *Handler) SignUp(c *fiber.Ctx) error {
	payload := signUpPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	input := services.SignUpInput{
		Email:       payload.Email,
		FullName:    payload.FullName,
		Gender:      payload.Gender,
		DateOfBirth: payload.DateOfBirth,
		FcmToken:    payload.FcmToken,
		Password:    payload.Password,
	}

	user, validationErrors, err := handler.authService.SignUp(input, time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if validationErrors != nil {
		return fieldErrors(c, validationErrors)
	}

	return c.Status(fiber.StatusCreated).JSON(publicUser(user))
}

func (handler *Handler) SignIn(c *fiber.Ctx) error {
	payload := signInPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.SignIn(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrIncorrectCredentials) {
			return fieldErrors(c, map[string]string{"credentials": "Incorrect credentials"})
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to sign in")
	}

	token, err := handler.buildToken(&user, authTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(fiber.Map{"token": token})
}

func (handler *Handler) SetFcmToken(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	payload := fcmTokenPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	fcmToken, validationErrors := services.ValidateFcmToken(payload.FcmToken)
	if validationErrors != nil {
		return fieldErrors(c, validationErrors)
	}

	if err := handler.authService.SetFcmToken(user.ID, fcmToken); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update token")
	}

	return c.Status(fiber.StatusOK).Send(nil)
}

package api

import "github.com/gofiber/fiber/v2"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// fieldErrors renders validation failures as a field-to-message JSON object
// with a 400 status, mirroring the shape mobile clients already parse.
func fieldErrors(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errs)
}

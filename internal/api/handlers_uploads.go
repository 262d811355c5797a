package api

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/sosw-app/sosw/internal/services"
)

func (handler *Handler) UploadPPG(c *fiber.Ctx) error {
	return handler.uploadSensorFiles(c, services.CategoryPPG)
}

func (handler *Handler) UploadAccelerometer(c *fiber.Ctx) error {
	return handler.uploadSensorFiles(c, services.CategoryAccelerometer)
}

func (handler *Handler) UploadOffBody(c *fiber.Ctx) error {
	return handler.uploadSensorFiles(c, services.CategoryOffBody)
}

// uploadSensorFiles validates the whole batch against the category's
// filename rules before any byte reaches disk, then writes every file into
// the caller's dump directory.
func (handler *Handler) uploadSensorFiles(c *fiber.Ctx, category services.SensorCategory) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return fieldErrors(c, map[string]string{"files": "A multipart form with files is required"})
	}

	parts := form.File["files"]
	files := make([]services.UploadFile, 0, len(parts))
	for _, part := range parts {
		data, err := readMultipartFile(part)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "failed to read uploaded file")
		}
		files = append(files, services.UploadFile{Name: part.Filename, Data: data})
	}

	if validationErrors := services.ValidateUploadBatch(category, files); validationErrors != nil {
		return fieldErrors(c, validationErrors)
	}

	if err := handler.uploadService.Store(user.Email, files); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store files")
	}

	return c.Status(fiber.StatusOK).Send(nil)
}

func readMultipartFile(part *multipart.FileHeader) ([]byte, error) {
	file, err := part.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

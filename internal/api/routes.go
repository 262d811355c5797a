package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handler.SignUp)
	auth.Post("/signin", handler.SignIn)
	auth.Put("/fcm-token", handler.AuthRequired, handler.SetFcmToken)

	reports := api.Group("/self-reports", handler.AuthRequired)
	reports.Post("", handler.InsertSelfReport)

	uploads := api.Group("/uploads", handler.AuthRequired)
	uploads.Post("/ppg", handler.UploadPPG)
	uploads.Post("/acc", handler.UploadAccelerometer)
	uploads.Post("/offbody", handler.UploadOffBody)

	pushPrompts := api.Group("/push", handler.AuthRequired, handler.AdminOnly)
	pushPrompts.Post("/ema", handler.SendEmaPush)
}

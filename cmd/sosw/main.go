package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sosw-app/sosw/internal/api"
	"github.com/sosw-app/sosw/internal/config"
	"github.com/sosw-app/sosw/internal/db"
	"github.com/sosw-app/sosw/internal/push"
	"github.com/sosw-app/sosw/internal/services"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()

	location := loadLocation(cfg.Timezone, zapLogger)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	if cfg.AdminEmail != "" {
		setup := services.NewSetupService(db.NewUserRepository(database))
		promoted, err := setup.PromoteAdmin(cfg.AdminEmail)
		if err != nil {
			zapLogger.Fatal("admin promotion failed", zap.Error(err))
		}
		if promoted {
			zapLogger.Info("admin role granted", zap.String("email", cfg.AdminEmail))
		}
	}

	sender := push.NewClient(cfg.FCMEndpoint, cfg.FCMServerKey, zapLogger)
	handler := api.NewHandler(database, cfg.SecretKey, cfg.DataDumpDir, location, sender)

	app := fiber.New(fiber.Config{
		AppName:               "SOSW",
		DisableStartupMessage: true,
		BodyLimit:             64 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("sosw listening",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DBPath),
		zap.String("dump_dir", cfg.DataDumpDir),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}

func loadLocation(name string, zapLogger *zap.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		zapLogger.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		return time.UTC
	}
	return location
}

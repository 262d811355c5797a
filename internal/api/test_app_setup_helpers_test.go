package api

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sosw-app/sosw/internal/db"
	"github.com/sosw-app/sosw/internal/push"
	"gorm.io/gorm"
)

type stubPushSender struct {
	err      error
	messages []push.Message
}

func (sender *stubPushSender) Send(_ context.Context, message push.Message) error {
	sender.messages = append(sender.messages, message)
	return sender.err
}

type testApp struct {
	app      *fiber.App
	database *gorm.DB
	sender   *stubPushSender
	dumpDir  string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "sosw-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	dumpDir := t.TempDir()
	sender := &stubPushSender{}
	handler := NewHandler(database, "test-secret-key", dumpDir, time.UTC, sender)

	app := fiber.New()
	RegisterRoutes(app, handler)

	return &testApp{app: app, database: database, sender: sender, dumpDir: dumpDir}
}

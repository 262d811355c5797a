package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBPath       string
	SecretKey    string
	DataDumpDir  string
	FCMEndpoint  string
	FCMServerKey string
	Timezone     string
	AdminEmail   string
}

// Load reads configuration from the environment after loading an optional
// .env file. Explicit env vars win over .env values.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "sosw.db")),
		SecretKey:    getEnv("SECRET_KEY", "change_me_in_production"),
		DataDumpDir:  getEnv("DATA_DUMP_DIR", filepath.Join("data", "dumps")),
		FCMEndpoint:  getEnv("FCM_ENDPOINT", "https://fcm.googleapis.com/v1/projects/sosw/messages:send"),
		FCMServerKey: getEnv("FCM_SERVER_KEY", ""),
		Timezone:     getEnv("TZ", "UTC"),
		AdminEmail:   getEnv("ADMIN_EMAIL", ""),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

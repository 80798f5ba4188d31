package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Log      LogConfig
	DB       DBConfig
	Telegram TelegramConfig
}

type HTTPConfig struct {
	Addr    string
	GinMode string
}

type LogConfig struct {
	Level  string
	Format string // "console" or "json"
}

type DBConfig struct {
	Enabled     bool // audit trail is written only when set
	AutoMigrate bool
	Host        string
	Port        int
	User        string
	Password    string
	Database    string
}

type TelegramConfig struct {
	MessageToken string // token for sending menu change notifications to admin
	AdminChatID  int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	adminID, _ := strconv.ParseInt(getEnv("ADMIN_ID", "0"), 10, 64)

	return &Config{
		HTTP: HTTPConfig{
			Addr:    getEnv("HTTP_ADDR", ":8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		DB: DBConfig{
			Enabled:     getBool("DB_ENABLED"),
			AutoMigrate: getBool("AUTO_MIGRATE"),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        port,
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Database:    getEnv("DB_NAME", "restaurant"),
		},
		Telegram: TelegramConfig{
			MessageToken: getEnv("MESSAGE_TOKEN", ""),
			AdminChatID:  adminID,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getBool accepts "1" or "true" (any case), same as AUTO_MIGRATE always has.
func getBool(key string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	return v == "1" || strings.EqualFold(v, "true")
}

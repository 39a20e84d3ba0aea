package config

import (
	"strconv"
	"time"

	"os"

	"github.com/joho/godotenv"

	"tradehub/utils"
)

// Config carries all process-level settings. It is built once at startup
// and passed down explicitly; nothing reads the environment after Load.
type Config struct {
	Port          string
	BaseURL       string
	MySQLDSN      string
	SessionSecret string
	SessionTTL    time.Duration
	TokenSecret   string
	TokenMaxAge   time.Duration
	UploadDir     string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailSender   string
}

// Load reads configuration from the environment, with a .env file as
// fallback. Secrets have no defaults and must be set.
func Load() *Config {
	_ = godotenv.Load()

	port := getEnv("PORT", "8080")
	c := &Config{
		Port:          port,
		BaseURL:       getEnv("BASE_URL", "http://localhost:"+port),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),
		SessionSecret: mustEnv("SESSION_SECRET"),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		TokenSecret:   mustEnv("TOKEN_SECRET"),
		TokenMaxAge:   getDuration("TOKEN_MAX_AGE", time.Hour),
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getInt("SMTP_PORT", 587),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailSender:    getEnv("MAIL_SENDER", os.Getenv("SMTP_USERNAME")),
	}

	utils.Info("config loaded", map[string]any{
		"port":       c.Port,
		"mysql":      c.MySQLDSN != "",
		"upload_dir": c.UploadDir,
	})
	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.Warn("invalid integer in env, using default", map[string]any{"key": key, "value": v})
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Warn("invalid duration in env, using default", map[string]any{"key": key, "value": v})
		return def
	}
	return d
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Fatal("missing required env", map[string]any{"key": key})
	}
	return v
}

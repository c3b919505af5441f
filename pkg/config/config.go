package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	StorageBucket   string

	AllowedOrigins []string

	SuperAdminEmail string

	RateLimitMax    int
	RateLimitWindow time.Duration

	MaxUploadBytes int64
	UploadURLTTL   time.Duration
	DownloadURLTTL time.Duration

	SendGridKey string
	EmailFrom   string

	OptimizerURL string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		AllowedOrigins:  getEnvAsList("ALLOWED_ORIGINS", "*"),
		SuperAdminEmail: getEnv("SUPER_ADMIN_EMAIL", ""),
		RateLimitMax:    getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitWindow: getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		MaxUploadBytes:  getEnvAsInt64("MAX_UPLOAD_BYTES", 200*1024*1024),
		UploadURLTTL:    getEnvAsDuration("UPLOAD_URL_TTL", 30*time.Minute),
		DownloadURLTTL:  getEnvAsDuration("DOWNLOAD_URL_TTL", 15*time.Minute),
		SendGridKey:     getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:       getEnv("EMAIL_FROM", "no-reply@gyomutime.app"),
		OptimizerURL:    getEnv("OPTIMIZER_URL", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

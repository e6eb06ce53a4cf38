package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/propertyhub/listings-api/internal/utils"
)

const AppName = "listings-api"

type Config struct {
	Env     string
	AppPort string
	DBUrl   string

	JWTSecret string

	// CORS
	AllowedOrigins []string

	// Media host (S3-compatible)
	MediaEndpoint      string
	MediaAccessKey     string
	MediaSecretKey     string
	MediaBucket        string
	MediaUseSSL        bool
	MediaPublicBaseURL string

	// Transactional email; empty key means log-only delivery
	SendgridAPIKey    string
	SendgridFromEmail string
	SendgridFromName  string

	SeedData bool
}

// LoadConfig reads .env when present, then validates the runtime environment.
// Missing required vars are fatal at startup rather than surprises later.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("no .env file found; using process environment")
	}

	cfg := &Config{
		Env:     mustGetenv("ENV"),
		AppPort: mustGetenv("APP_PORT"),
		DBUrl:   mustGetenv("DATABASE_URL"),

		JWTSecret: mustGetenv("JWT_SECRET"),

		MediaEndpoint:      mustGetenv("MEDIA_ENDPOINT"),
		MediaAccessKey:     mustGetenv("MEDIA_ACCESS_KEY"),
		MediaSecretKey:     mustGetenv("MEDIA_SECRET_KEY"),
		MediaBucket:        getenvDefault("MEDIA_BUCKET", "listings"),
		MediaUseSSL:        os.Getenv("MEDIA_USE_SSL") == "true",
		MediaPublicBaseURL: mustGetenv("MEDIA_PUBLIC_BASE_URL"),

		SendgridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendgridFromEmail: getenvDefault("SENDGRID_FROM_EMAIL", "no-reply@propertyhub.local"),
		SendgridFromName:  getenvDefault("SENDGRID_FROM_NAME", "PropertyHub"),

		SeedData: os.Getenv("SEED_DATA") == "true",
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(o))
		}
	} else {
		cfg.AllowedOrigins = []string{"*"}
	}

	utils.DevMode = cfg.Env != "production"

	utils.Logger.WithField("env", cfg.Env).Info("config loaded")
	return cfg
}

func mustGetenv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("%s env var is missing", key)
	}
	return v
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

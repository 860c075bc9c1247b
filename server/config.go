package server

import (
	"fmt"
	"os"

	gallery "github.com/aguasmedia/gallery"
	"github.com/aguasmedia/gallery/logger"
	"github.com/aguasmedia/gallery/postgres"
)

// Config is the process-wide configuration, read once at startup and
// read-only afterward.
type Config struct {
	Env          gallery.Environment
	Port         string
	ClientOrigin string

	GoogleClientID string
	JWTSecret      string

	DriveCredentialsFile string
	DriveFolderID        string

	DB postgres.CxnConfig

	LogLevel logger.LogLevel
}

// NewConfig reads configuration from the environment.
//
// Missing GOOGLE_CLIENT_ID or JWT_SECRET is a hard failure: the process
// must never come up unable to verify identities or sign credentials.
func NewConfig() (Config, error) {
	cfg := Config{
		Env:          envVarOrEnv("ENVIRONMENT", gallery.Development),
		Port:         envVarOrString("PORT", "5000"),
		ClientOrigin: envVarOrString("CLIENT_ORIGIN", "http://localhost:3000"),

		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		JWTSecret:      os.Getenv("JWT_SECRET"),

		DriveCredentialsFile: envVarOrString("DRIVE_CREDENTIALS_FILE", "service-account.json"),
		DriveFolderID:        os.Getenv("DRIVE_FOLDER_ID"),

		DB: postgres.CxnConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     envVarOrString("DATABASE_HOST", "localhost"),
			Port:     envVarOrString("DATABASE_PORT", "5432"),
			Name:     envVarOrString("DATABASE_NAME", "gallery"),
			User:     envVarOrString("DATABASE_USER", "postgres"),
			Password: os.Getenv("DATABASE_PASSWORD"),
			SSLMode:  os.Getenv("DATABASE_SSLMODE"),
		},

		LogLevel: logger.NewLogLevel(envVarOrString("LOG_LEVEL", "INFO")),
	}

	if cfg.GoogleClientID == "" {
		return Config{}, fmt.Errorf("%w: GOOGLE_CLIENT_ID must be set", gallery.ErrBadConfig)
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("%w: JWT_SECRET must be set", gallery.ErrBadConfig)
	}

	if cfg.LogLevel == logger.LogLevelUnk {
		cfg.LogLevel = logger.LogLevelInfo
	}

	return cfg, nil
}

// envVarOrString gets the environment variable for the provided key,
// or returns the provided default when unset.
func envVarOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	return val
}

// envVarOrEnv gets the environment variable from the provided key,
// casts it into an Environment,
// or returns the provided default Environment if key is not a valid Environment.
func envVarOrEnv(key string, def gallery.Environment) gallery.Environment {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	env := gallery.Environment(val)
	if err := env.Valid(); err != nil {
		return def
	}

	return env
}

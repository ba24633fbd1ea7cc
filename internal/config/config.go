package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort string

	MongoURI      string
	MongoDatabase string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioSSL       bool
	MinioPublicURL string

	// Origins allowed to call the HTTP surface, comma-separated in the
	// CORS_ALLOW_ORIGINS variable.
	AllowOrigins []string
}

// LoadConfig loads configuration from environment variables. A .env file is
// honored when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	minioSSL := false
	if sslEnv := os.Getenv("MINIO_SSL"); sslEnv != "" {
		val, err := strconv.ParseBool(sslEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid MINIO_SSL value: %v", err)
		}
		minioSSL = val
	}

	allowOrigins := []string{"*"}
	if originsEnv := os.Getenv("CORS_ALLOW_ORIGINS"); originsEnv != "" {
		allowOrigins = nil
		for _, origin := range strings.Split(originsEnv, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				allowOrigins = append(allowOrigins, trimmed)
			}
		}
	}

	cfg := &Config{
		AppPort:        os.Getenv("APP_PORT"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDatabase:  os.Getenv("MONGO_DATABASE"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    os.Getenv("MINIO_BUCKET"),
		MinioSSL:       minioSSL,
		MinioPublicURL: os.Getenv("MINIO_PUBLIC_URL"),
		AllowOrigins:   allowOrigins,
	}

	// Basic validation for required fields
	if cfg.MongoURI == "" || cfg.MongoDatabase == "" {
		return nil, fmt.Errorf("mongodb configuration is incomplete")
	}
	if cfg.MinioEndpoint == "" || cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" || cfg.MinioBucket == "" {
		return nil, fmt.Errorf("minio configuration is incomplete")
	}
	if cfg.MinioPublicURL == "" {
		scheme := "http"
		if cfg.MinioSSL {
			scheme = "https"
		}
		cfg.MinioPublicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinioEndpoint)
	}
	return cfg, nil
}

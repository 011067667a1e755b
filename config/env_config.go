package config

import (
	"os"
	"strconv"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Port     string
		Database string
		Username string
		Password string
	}
	Minio struct {
		Endpoint     string
		RootUser     string
		RootPassword string
		UseSSL       bool
		MediaBucket  string
		PublicURL    string
	}
	CORS struct {
		AllowDomains string
	}
	Server struct {
		Port string
	}
	Upload struct {
		Dir string
	}
	Telemetry struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("POSTGRES_HOST")
	if config.Postgres.Host == "" {
		config.Postgres.Host = "localhost"
	}
	config.Postgres.Port = os.Getenv("POSTGRES_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}
	config.Postgres.Database = os.Getenv("POSTGRES_DB")
	if config.Postgres.Database == "" {
		config.Postgres.Database = "real_estate"
	}
	config.Postgres.Username = os.Getenv("POSTGRES_USER")
	if config.Postgres.Username == "" {
		config.Postgres.Username = "postgres"
	}
	config.Postgres.Password = os.Getenv("POSTGRES_PASSWORD")

	// MinIO
	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_ROOT_USER")
	config.Minio.RootPassword = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Minio.UseSSL, _ = strconv.ParseBool(os.Getenv("MINIO_USE_SSL"))
	config.Minio.MediaBucket = os.Getenv("MINIO_MEDIA_BUCKET")
	if config.Minio.MediaBucket == "" {
		config.Minio.MediaBucket = "media-files"
	}
	config.Minio.PublicURL = os.Getenv("MINIO_PUBLIC_URL")

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")

	// Server
	config.Server.Port = os.Getenv("PORT")
	if config.Server.Port == "" {
		config.Server.Port = "3001"
	}

	// Upload staging
	config.Upload.Dir = os.Getenv("UPLOAD_DIR")
	if config.Upload.Dir == "" {
		config.Upload.Dir = "uploads"
	}

	// OpenTelemetry
	config.Telemetry.OTLPEndpoint = os.Getenv("OTLP_ENDPOINT")
	config.Telemetry.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Telemetry.ServiceName == "" {
		config.Telemetry.ServiceName = "real-estate-backend"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}

	return &config
}

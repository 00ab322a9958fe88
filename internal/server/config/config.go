// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the exercise tracker server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint; empty disables it.
//   - StorageDriver / DatabaseDSN: "postgres" (pgx DSN) or "sqlite" (file path, file: URI or ":memory:").
//   - LogFormat / LogLevel: see logging.New.
//   - CORSAllowedOrigin: value of Access-Control-Allow-Origin.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint:
//     object storage for log exports; an empty bucket disables export.
//   - ExportURLValidity: lifetime of presigned export links.
type Config struct {
	EndpointAddrHTTP  string        `env:"HTTP_ADDR"`
	EndpointAddrGRPC  string        `env:"GRPC_ADDR"`
	StorageDriver     string        `env:"STORAGE_DRIVER"`
	DatabaseDSN       string        `env:"DATABASE_DSN"`
	LogFormat         string        `env:"LOG_FORMAT"`
	LogLevel          string        `env:"LOG_LEVEL"`
	CORSAllowedOrigin string        `env:"CORS_ALLOWED_ORIGIN"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"`
	S3RootUser        string        `env:"S3_ROOT_USER"`
	S3RootPassword    string        `env:"S3_ROOT_PASSWORD"`
	S3Bucket          string        `env:"S3_BUCKET"`
	S3Region          string        `env:"S3_REGION"`
	S3BaseEndpoint    string        `env:"S3_BASE_ENDPOINT"`
	ExportURLValidity time.Duration `env:"EXPORT_URL_VALIDITY"`
}

// LoadDefaults populates Config with development defaults: a local SQLite
// file and no object storage.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.EndpointAddrGRPC = ":50051"
	c.StorageDriver = "sqlite"
	c.DatabaseDSN = "file:exercisetracker.db?_pragma=busy_timeout(5000)"
	c.LogFormat = "json"
	c.LogLevel = "info"
	c.CORSAllowedOrigin = "*"
	c.ShutdownTimeout = 10 * time.Second
	c.S3RootUser = ""
	c.S3RootPassword = ""
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.ExportURLValidity = 15 * time.Minute
}

// ExportEnabled reports whether log export to object storage is configured.
func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

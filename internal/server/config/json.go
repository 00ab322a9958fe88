package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/flagx"
	"github.com/dmitrijs2005/exercisetracker/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP  string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc"`
	StorageDriver     string         `json:"storage_driver"`
	DatabaseDSN       string         `json:"database_dsn"`
	LogFormat         string         `json:"log_format"`
	LogLevel          string         `json:"log_level"`
	CORSAllowedOrigin string         `json:"cors_allowed_origin"`
	ShutdownTimeout   timex.Duration `json:"shutdown_timeout"`
	S3RootUser        string         `json:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password"`
	S3Bucket          string         `json:"s3_bucket"`
	S3Region          string         `json:"s3_region"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint"`
	ExportURLValidity timex.Duration `json:"export_url_validity"`
}

// parseJson loads the file named by -c/-config (or $CONFIG) over config.
// Keys missing from the file keep their current values. An unreadable file
// or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{
		EndpointAddrHTTP:  config.EndpointAddrHTTP,
		EndpointAddrGRPC:  config.EndpointAddrGRPC,
		StorageDriver:     config.StorageDriver,
		DatabaseDSN:       config.DatabaseDSN,
		LogFormat:         config.LogFormat,
		LogLevel:          config.LogLevel,
		CORSAllowedOrigin: config.CORSAllowedOrigin,
		ShutdownTimeout:   timex.Duration{Duration: config.ShutdownTimeout},
		S3RootUser:        config.S3RootUser,
		S3RootPassword:    config.S3RootPassword,
		S3Bucket:          config.S3Bucket,
		S3Region:          config.S3Region,
		S3BaseEndpoint:    config.S3BaseEndpoint,
		ExportURLValidity: timex.Duration{Duration: config.ExportURLValidity},
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.StorageDriver = c.StorageDriver
	config.DatabaseDSN = c.DatabaseDSN
	config.LogFormat = c.LogFormat
	config.LogLevel = c.LogLevel
	config.CORSAllowedOrigin = c.CORSAllowedOrigin
	config.ShutdownTimeout = time.Duration(c.ShutdownTimeout.Duration)
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.ExportURLValidity = time.Duration(c.ExportURLValidity.Duration)
}

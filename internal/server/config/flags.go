package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/exercisetracker/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":3000")
//	-g string     gRPC bind address, empty disables gRPC
//	-s string     storage driver: postgres or sqlite
//	-d string     database DSN
//	-f string     log format: json, text or zap
//	-l string     log level
//	-o string     CORS allowed origin
//	-t duration   shutdown timeout (e.g., "10s")
//	-u string     S3 root user
//	-p string     S3 root password
//	-b string     S3 bucket name, empty disables export
//	-r string     S3 region
//	-e string     S3 base endpoint (e.g., "http://127.0.0.1:9000")
//	-x duration   validity of presigned export URLs (e.g., "15m")
//
// os.Args is filtered down to these flags first, so the -c/-config flag
// consumed by parseJson does not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-s", "-d", "-f", "-l", "-o", "-t", "-u", "-p", "-b", "-r", "-e", "-x"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port, empty to disable")
	fs.StringVar(&config.StorageDriver, "s", config.StorageDriver, "storage driver (postgres|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json|text|zap)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.CORSAllowedOrigin, "o", config.CORSAllowedOrigin, "CORS allowed origin")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "shutdown timeout")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket for log exports")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.DurationVar(&config.ExportURLValidity, "x", config.ExportURLValidity, "export URL validity")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

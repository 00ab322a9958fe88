// Package server initializes and runs the exercise tracker. It opens the
// configured store, wires services into the HTTP API and the gRPC health
// endpoint, and shuts everything down on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/logging"
	"github.com/dmitrijs2005/exercisetracker/internal/server/config"
	"github.com/dmitrijs2005/exercisetracker/internal/server/export"
	"github.com/dmitrijs2005/exercisetracker/internal/server/httpapi"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/exercisetracker/internal/server/services"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/exercisetracker/internal/server/grpc"
)

// readinessInterval is how often the gRPC health status re-checks storage.
const readinessInterval = 5 * time.Second

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	router     *gin.Engine
	grpcServer *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, m, err := repomanager.Open(ctx, c.StorageDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var exporter services.Exporter
	if c.ExportEnabled() {
		e, err := export.NewS3Exporter(ctx, export.Options{
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
			Bucket:       c.S3Bucket,
			URLValidity:  c.ExportURLValidity,
			UsePathStyle: c.S3BaseEndpoint != "",
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("export init error: %w", err)
		}
		exporter = e
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httpapi.NewRouter(httpapi.Options{
		Users:         services.NewUserService(db, m),
		Logs:          services.NewLogService(db, m, time.Now, exporter),
		Logger:        logger,
		AllowedOrigin: c.CORSAllowedOrigin,
		Ready:         db.PingContext,
	})

	app := &App{config: c, logger: logger, db: db, router: router}
	if c.EndpointAddrGRPC != "" {
		app.grpcServer = gs.NewGRPCServer(c.EndpointAddrGRPC, logger)
	}

	logger.Info(ctx, "app initialized",
		"storage_driver", c.StorageDriver,
		"export_enabled", exporter != nil,
		"grpc_enabled", app.grpcServer != nil)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// serveHTTP serves the API on lis until ctx is cancelled, then drains
// in-flight requests for up to ShutdownTimeout.
func (app *App) serveHTTP(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())
		errCh <- srv.Serve(lis)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	lis, err := net.Listen("tcp", app.config.EndpointAddrHTTP)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := app.serveHTTP(ctx, lis); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpcServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives or a server fails,
// then closes the store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.grpcServer != nil {
		wg.Add(2)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
		go func() {
			defer wg.Done()
			app.grpcServer.MonitorReadiness(ctx, readinessInterval, app.db.PingContext)
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}

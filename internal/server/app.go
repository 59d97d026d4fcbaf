// Package server wires the chirpy server together: storage, services, the
// REST API and the gRPC ops listener, and runs them until shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/chirpy/internal/filex"
	"github.com/dmitrijs2005/chirpy/internal/logging"
	"github.com/dmitrijs2005/chirpy/internal/server/auth"
	"github.com/dmitrijs2005/chirpy/internal/server/config"
	"github.com/dmitrijs2005/chirpy/internal/server/httpapi"
	"github.com/dmitrijs2005/chirpy/internal/server/metrics"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/chirpy/internal/server/services"

	gs "github.com/dmitrijs2005/chirpy/internal/server/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *http.Server
	grpc   *gs.GRPCServer
}

// NewApp connects to the database, applies migrations and builds every
// component. cfg must already be validated.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)
	ctx := context.Background()

	logger.Info(ctx, "config loaded", "config", cfg)

	db, err := repomanager.OpenDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	if cfg.FileserverRoot != "" {
		root, err := filex.EnsureDir(cfg.FileserverRoot)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("fileserver root: %w", err)
		}
		cfg.FileserverRoot = root
	}

	return newApp(cfg, logger, db, rm), nil
}

func newApp(cfg *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) *App {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	hasher := auth.BcryptHasher{}
	sessions := services.NewSessionService(db, rm, hasher, cfg, logger)

	h := httpapi.NewHandler(httpapi.Deps{
		Sessions: sessions,
		Users:    services.NewUserService(db, rm, hasher),
		Chirps:   services.NewChirpService(db, rm),
		Webhooks: services.NewWebhookService(db, rm, cfg.PolkaKey, logger),
		Admin:    services.NewAdminService(db, rm, cfg.Platform, logger),
		Metrics:  metrics.New(),
		Logger:   logger,
	})

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		http: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           httpapi.NewRouter(h, cfg.FileserverRoot),
			ReadHeaderTimeout: 5 * time.Second,
		},
		grpc: gs.NewGRPCServer(cfg.GRPCAddr, logger, sessions),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.http.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "http shutdown", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.http.Addr)
	if err := app.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if app.config.GRPCAddr == "" {
		return
	}
	if err := app.grpc.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives or a listener
// fails, then closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}

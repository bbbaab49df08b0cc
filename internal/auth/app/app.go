package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/instamedia/internal/auth/http"
	"github.com/aussiebroadwan/instamedia/internal/auth/mail"
	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/internal/auth/store"
	"github.com/aussiebroadwan/instamedia/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/instamedia/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/instamedia/pkg/cryptox"
	"github.com/aussiebroadwan/instamedia/pkg/jwtx"
	"github.com/aussiebroadwan/instamedia/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	codec  *jwtx.Codec
	hasher *cryptox.Argon2Hasher
	mailer service.Mailer

	// Services
	accountService    *service.AccountService
	activationService *service.ActivationService
	resetService      *service.ResetService
	sessionService    *service.SessionService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// Option customises an Application before its dependencies are built.
type Option func(*Application)

// WithMailer replaces the SMTP or log mailer.
func WithMailer(m service.Mailer) Option {
	return func(app *Application) { app.mailer = m }
}

// WithLogOutput redirects the service log.
func WithLogOutput(w io.Writer) Option {
	return func(app *Application) {
		app.logger = newLogger(app.cfg, w)
	}
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config, opts ...Option) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg:    cfg,
		logger: newLogger(cfg, nil),
	}
	for _, opt := range opts {
		opt(app)
	}

	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewArgon2Hasher(pepper)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	codec, err := InitTokenCodec(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.codec = codec

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

func newLogger(cfg Config, out io.Writer) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "auth-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  out,
	})
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase opens the configured store and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initMailer picks the SMTP relay when one is configured
func (app *Application) initMailer() {
	if app.mailer != nil {
		return
	}

	var sender mail.Sender
	if app.cfg.SMTP.Host != "" {
		sender = mail.NewSMTPSender(app.cfg.SMTP)
		app.logger.Info("smtp mailer enabled", "host", app.cfg.SMTP.Host, "port", app.cfg.SMTP.Port)
	} else {
		sender = mail.LogSender{Logger: app.logger}
		app.logger.Warn("EMAIL_HOST not set; account emails are written to the log")
	}

	app.mailer = mail.NewNotifier(sender, app.cfg.FrontendURL)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	policy := service.PasswordPolicy{MinEntropyBits: app.cfg.PasswordMinEntropy}

	app.accountService = &service.AccountService{
		Store:  app.db,
		Hasher: app.hasher,
		Tokens: app.codec,
		Mailer: app.mailer,
		Policy: policy,
	}
	app.activationService = &service.ActivationService{
		Store:  app.db,
		Tokens: app.codec,
	}
	app.resetService = &service.ResetService{
		Store:  app.db,
		Hasher: app.hasher,
		Tokens: app.codec,
		Mailer: app.mailer,
		Policy: policy,
	}
	app.sessionService = &service.SessionService{Tokens: app.codec}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		httpapi.NewCookieBinder(app.cfg.Production()),
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.FrontendURL,
	)

	// Wire services to router
	router.AccountService = app.accountService
	router.ActivationService = app.activationService
	router.ResetService = app.resetService
	router.SessionService = app.sessionService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/helioslabs/phonebook/internal/api/http"
	"github.com/helioslabs/phonebook/internal/api/mail"
	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/internal/api/store"
	"github.com/helioslabs/phonebook/internal/api/store/drivers/sqlite"
	"github.com/helioslabs/phonebook/pkg/cryptox"
	"github.com/helioslabs/phonebook/pkg/jwtx"
	"github.com/helioslabs/phonebook/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the phonebook API with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	mailer mail.Mailer

	// Services
	authService     *service.AuthService
	avatarService   *service.AvatarService
	contactsService *service.ContactsService
	janitorService  *service.JanitorService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "phonebook-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initMailer()
	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.janitorService.Start()

	app.logger.Info("phonebook api starting", "port", app.cfg.Port, "version", BuildVersion)

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
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down phonebook api...")

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

	app.janitorService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("phonebook api stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer picks SMTP when configured, otherwise a logging stand-in so
// local development never needs a relay.
func (app *Application) initMailer() {
	if app.cfg.SMTPHost != "" {
		app.mailer = mail.NewSMTPMailer(
			app.cfg.SMTPHost,
			app.cfg.SMTPPort,
			app.cfg.SMTPUser,
			app.cfg.SMTPPassword,
			app.cfg.SMTPFrom,
		)
		app.logger.Info("mailer configured", "host", app.cfg.SMTPHost)
		return
	}
	app.mailer = &mail.LogMailer{Logger: app.logger}
	app.logger.Warn("no SMTP configured, mail will be logged only")
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	secret := []byte(app.cfg.JWTSecret)
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256(secret, app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	app.authService = &service.AuthService{
		Store:      app.db,
		Signer:     signer,
		Verifier:   verifier,
		Mailer:     app.mailer,
		Logger:     app.logger,
		Issuer:     app.cfg.Issuer,
		BaseURL:    app.cfg.BaseURL,
		SessionTTL: app.cfg.SessionTTL,
	}

	app.avatarService = &service.AvatarService{
		Store:     app.db,
		Logger:    app.logger,
		PublicDir: app.cfg.PublicDir,
		TmpDir:    app.cfg.TmpDir,
	}

	app.contactsService = &service.ContactsService{Store: app.db}

	app.janitorService = service.NewJanitorService(
		app.cfg.TmpDir,
		app.logger,
		app.cfg.JanitorInterval,
		app.cfg.JanitorMaxAge,
	)

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.cfg.PublicDir,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.AvatarService = app.avatarService
	router.ContactsService = app.contactsService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/smtp"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/leaguehub/internal/league/http"
	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/internal/league/store"
	"github.com/aussiebroadwan/leaguehub/internal/league/store/drivers/sqlite"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/jwtx"
	"github.com/aussiebroadwan/leaguehub/pkg/mailx"
	"github.com/aussiebroadwan/leaguehub/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the league service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	authn  httpx.Middleware
	mailer mailx.Mailer

	// Services
	leagueService       *service.LeagueService
	inviteService       *service.InviteService
	membershipService   *service.MembershipService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "league-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initAuthn(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("league service starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down league service...")

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

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("league service stopped")
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

// initAuthn builds the authentication middleware. In jwks mode tokens from
// the external auth provider are verified against its published key set; in
// static mode identities come from debug headers (dev and e2e only).
func (app *Application) initAuthn() error {
	switch app.cfg.AuthMode {
	case "static":
		if app.cfg.Env == "prod" {
			return fmt.Errorf("static auth mode is not allowed in prod")
		}
		app.logger.Warn("static auth mode enabled, identities come from debug headers")
		app.authn = httpx.DebugHeaderAuthn()
		return nil

	case "jwks":
		if app.cfg.JWKSURL == "" {
			return fmt.Errorf("LEAGUE_JWKS_URL is required in jwks auth mode")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		keys, err := jwtx.LoadRemoteKeySet(ctx, nil, app.cfg.JWKSURL)
		if err != nil {
			return fmt.Errorf("failed to load JWKS: %w", err)
		}

		verifier, err := jwtx.NewVerifier(app.cfg.JWTAlgorithm, keys, app.cfg.JWTIssuer, app.cfg.JWTAudience)
		if err != nil {
			return fmt.Errorf("failed to build token verifier: %w", err)
		}

		app.logger.Info("token verification enabled",
			"jwks_url", app.cfg.JWKSURL,
			"algorithm", app.cfg.JWTAlgorithm,
		)
		app.authn = httpx.AuthnMiddleware(verifier)
		return nil

	default:
		return fmt.Errorf("unknown auth mode %q", app.cfg.AuthMode)
	}
}

// initMailer picks the outbound mail transport. Without a relay configured
// invite mail is logged instead of sent.
func (app *Application) initMailer() {
	if app.cfg.SMTPAddr == "" {
		app.mailer = mailx.NewLogMailer(app.logger)
		return
	}

	var auth smtp.Auth
	if user := os.Getenv("LEAGUE_SMTP_USER"); user != "" {
		host, _, err := net.SplitHostPort(app.cfg.SMTPAddr)
		if err != nil {
			host = app.cfg.SMTPAddr
		}
		auth = smtp.PlainAuth("", user, os.Getenv("LEAGUE_SMTP_PASSWORD"), host)
	}
	app.mailer = mailx.NewSMTPMailer(app.cfg.SMTPAddr, app.cfg.SMTPFrom, auth)
	app.logger.Info("smtp mail delivery enabled", "relay", app.cfg.SMTPAddr)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.leagueService = &service.LeagueService{Store: app.db}
	app.inviteService = &service.InviteService{
		Store:         app.db,
		AcceptBaseURL: app.cfg.AcceptBaseURL,
		Mailer:        app.mailer,
	}
	app.membershipService = &service.MembershipService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.InviteRetention,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.authn,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.LeagueService = app.leagueService
	router.InviteService = app.inviteService
	router.MembershipService = app.membershipService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

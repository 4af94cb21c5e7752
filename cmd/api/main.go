package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yhoon3002/schedule-bot/config"
	_ "github.com/yhoon3002/schedule-bot/docs" // Swagger docs
	"github.com/yhoon3002/schedule-bot/internal/calendar"
	"github.com/yhoon3002/schedule-bot/internal/chat"
	chatRemote "github.com/yhoon3002/schedule-bot/internal/chat/remote"
	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/internal/connection/authcode"
	connRepo "github.com/yhoon3002/schedule-bot/internal/connection/repository"
	connGoogle "github.com/yhoon3002/schedule-bot/internal/connection/repository/google"
	connRemote "github.com/yhoon3002/schedule-bot/internal/connection/repository/remote"
	eventRepo "github.com/yhoon3002/schedule-bot/internal/event/repository"
	eventGoogle "github.com/yhoon3002/schedule-bot/internal/event/repository/google"
	eventRemote "github.com/yhoon3002/schedule-bot/internal/event/repository/remote"
	"github.com/yhoon3002/schedule-bot/internal/httpserver"
	"github.com/yhoon3002/schedule-bot/internal/page"
	pageHTTP "github.com/yhoon3002/schedule-bot/internal/page/delivery/http"
	"github.com/yhoon3002/schedule-bot/internal/session"
	"github.com/yhoon3002/schedule-bot/pkg/goauth"
	"github.com/yhoon3002/schedule-bot/pkg/localtime"
	"github.com/yhoon3002/schedule-bot/pkg/log"
)

// @title       Schedule Bot API
// @description Google Calendar connection, grid data, event editor, and chat relay for the schedule page.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Schedule Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend mode: %s", cfg.Backend.Mode)

	// 3. Page-local clock
	clock, err := localtime.NewClock(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		clock, _ = localtime.NewClock("UTC")
	}

	// 4. Session provider
	var store session.Storage = &session.MemoryStorage{}
	if cfg.Session.StoragePath != "" {
		store = session.NewFileStorage(cfg.Session.StoragePath)
	}
	provider := session.NewProvider(logger, store)

	// 5. Google consent flow (optional: without credentials the page
	// cannot start a new connection, but existing sessions keep working)
	var oauthClient *goauth.Client
	var redirect *authcode.Redirect
	var codes connection.AuthCodeProvider = authcode.Disabled{}

	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		oauthClient = goauth.New(goauth.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
		})
		redirect = authcode.NewRedirect(logger, oauthClient, cfg.Google.LoginTimeout)
		codes = redirect
		logger.Infof(ctx, "✅ Google consent flow initialized, callback at %s", cfg.Google.RedirectURL)
	} else {
		logger.Warn(ctx, "Consent flow disabled: GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET is missing")
	}

	// 6. Calendar backend
	var authRepo connRepo.AuthRepository
	var eventsRepo eventRepo.EventRepository
	var assistant chat.Assistant = chat.Unavailable{}

	switch cfg.Backend.Mode {
	case config.BackendModeGoogle:
		if oauthClient == nil {
			logger.Error(ctx, "The google backend requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET")
			return
		}
		tokens := goauth.NewStore(cfg.Google.TokenDir)
		authRepo = connGoogle.New(logger, oauthClient, tokens)
		eventsRepo = eventGoogle.New(logger, oauthClient, tokens, clock)
		logger.Infof(ctx, "Using the Google Calendar API directly, tokens in %s", cfg.Google.TokenDir)
	default:
		authRepo = connRemote.New(logger, cfg.Backend.BaseURL, cfg.Backend.Timeout)
		eventsRepo = eventRemote.New(logger, cfg.Backend.BaseURL, cfg.Backend.Timeout)
		assistant = chatRemote.New(logger, cfg.Backend.BaseURL, cfg.Backend.Timeout)
		logger.Infof(ctx, "Using the remote scheduling backend at %s", cfg.Backend.BaseURL)
	}

	// 7. Page bundles
	registry := page.NewRegistry(page.Deps{
		Logger:    logger,
		AuthRepo:  authRepo,
		EventRepo: eventsRepo,
		Codes:     codes,
		Assistant: assistant,
		Provider:  provider,
		Clock:     clock,
		Flags: calendar.ListFlags{
			IncludeHolidays:  cfg.Calendar.IncludeHolidays,
			IncludeBirthdays: cfg.Calendar.IncludeBirthdays,
		},
	})
	pageHandler := pageHTTP.New(logger, registry, redirect)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		PageHandler:     pageHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

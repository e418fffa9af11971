package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"libadmin/docs"
	"libadmin/internal/apiclient"
	"libadmin/internal/auth"
	"libadmin/internal/config"
	"libadmin/internal/form"
	"libadmin/internal/handler"
	"libadmin/internal/kv"
	"libadmin/internal/router"
	"libadmin/internal/service"
	"libadmin/internal/workspace"
)

// @title Library Admin Dashboard API
// @version 1.0
// @description Session-backed admin dashboard over the library REST API.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name dashboard_session
func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}()

	store, closeStore := newStore(cfg, logger)
	defer closeStore()

	validator := form.New()
	jwtService := auth.NewJWTService(cfg.SessionSecret, cfg.SessionTTL)

	registry := workspace.NewRegistry(workspace.Config{
		NewAPI: workspace.ClientFactory(cfg.APIBaseURL,
			apiclient.WithHTTPClient(&http.Client{Timeout: cfg.APITimeout}),
			apiclient.WithTracerProvider(tp),
			apiclient.WithLogger(logger),
		),
		SessionTTL:      cfg.SessionTTL,
		NotificationTTL: cfg.NotificationTTL,
		List: service.Options{
			PerPage:     cfg.PerPage,
			SearchDelay: cfg.SearchDebounce,
		},
		Logger: logger,
	}, auth.NewSessionStore(store), validator)
	defer registry.CloseAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	router.Register(e, jwtService, registry, validator, router.Handlers{
		Auth:          handler.NewAuthHandler(registry, jwtService, cfg.SessionTTL, cfg.CookieSecure, logger),
		Books:         handler.NewBookHandler(),
		Users:         handler.NewUserHandler(),
		Categories:    handler.NewCategoryHandler(),
		Stock:         handler.NewStockHandler(),
		Loans:         handler.NewLoanHandler(),
		Dashboard:     handler.NewDashboardHandler(),
		Notifications: handler.NewNotificationHandler(),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	logger.Info("swagger documentation available", "url", swaggerURL(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go registry.Run(ctx, cfg.SessionSweep)

	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info("server starting", "addr", addr, "api", cfg.APIBaseURL, "session_store", cfg.SessionStore)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
}

// newStore picks the durable session storage. Redis is preferred; an
// unreachable Redis is logged and kept, since sessions then fail closed.
func newStore(cfg *config.Config, logger *slog.Logger) (kv.Store, func()) {
	if cfg.SessionStore == "memory" {
		logger.Warn("using in-memory session store; sessions are lost on restart")
		return kv.NewMemory(), func() {}
	}

	r := kv.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.Ping(ctx); err != nil {
		logger.Warn("redis unreachable", "addr", cfg.RedisAddr, "error", err)
	}
	return r, func() { _ = r.Close() }
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

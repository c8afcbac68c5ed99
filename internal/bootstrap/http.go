package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/config"
	httpx "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/http"
)

const shutdownTimeout = 10 * time.Second

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Health   httpx.HealthCheck
	Logger   *slog.Logger
}

// BuildHandler assembles the router from the service container.
func BuildHandler(cfg HTTPServerConfig) (http.Handler, error) {
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		Auth:         cfg.Services.Auth,
		Vacancies:    cfg.Services.Vacancies,
		Applications: cfg.Services.Applications,
		Interviews:   cfg.Services.Interviews,
		Decisions:    cfg.Services.Decisions,
		Profiles:     cfg.Services.Profiles,
		Dashboards:   cfg.Services.Dashboards,
		Cookies: httpx.CookieOptions{
			Domain: appCfg.HTTP.CookieDomain,
			Secure: appCfg.HTTP.SecureCookies(),
		},
		Health: cfg.Health,
		IsDev:  appCfg.IsDev,
		Logger: cfg.Logger,
	}
	if appCfg.HTTP.CompressionEnabled {
		if cfg.Logger != nil {
			cfg.Logger.Info("HTTP compression enabled", "level", appCfg.HTTP.CompressionLevel)
		}
		services.Compression = &httpx.CompressionConfig{Level: appCfg.HTTP.CompressionLevel}
	}

	return httpx.NewRouter(services)
}

// StartHTTPServer builds the handler and serves it in the background.
// Listen failures are sent on errCh.
func StartHTTPServer(cfg HTTPServerConfig, errCh chan<- error) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	handler, err := BuildHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("build http handler: %w", err)
	}

	addr := ":8080"
	if cfg.Config != nil && cfg.Config.HTTP.Addr != "" {
		addr = cfg.Config.HTTP.Addr
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	return server, nil
}

// ShutdownHTTPServer drains in-flight requests, giving up after ten seconds.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}
	return nil
}

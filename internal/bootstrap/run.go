package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/config"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/apiclient"
)

// Run wires the portal from cfg and serves it until SIGINT/SIGTERM or a
// server failure.
func Run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	var redisClient redis.UniversalClient
	if cfg.Session.Store == config.SessionStoreRedis {
		client, err := ConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		redisClient = client
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	sessions, err := BuildSessionStore(cfg.Session, redisClient)
	if err != nil {
		return err
	}

	api, err := apiclient.New(apiclient.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		TokenPath: cfg.API.TokenPath,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	auth, err := BuildAuthService(ctx, AuthDeps{
		Auth:     cfg.Auth,
		API:      api,
		Sessions: sessions.Store,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	services := NewServices(ServiceDeps{API: api, Auth: auth, Logger: logger})

	errCh := make(chan error, 1)
	server, err := StartHTTPServer(HTTPServerConfig{
		Config:   cfg,
		Services: services,
		Health:   sessions.Health,
		Logger:   logger,
	}, errCh)
	if err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		logger.InfoContext(ctx, "shutdown signal received")
		return ShutdownHTTPServer(ctx, server, logger)
	case err := <-errCh:
		logger.ErrorContext(ctx, "server error", "error", err)
		if stopErr := ShutdownHTTPServer(ctx, server, logger); stopErr != nil {
			logger.ErrorContext(ctx, "graceful stop failed", "error", stopErr)
		}
		return err
	case <-ctx.Done():
		return ShutdownHTTPServer(context.WithoutCancel(ctx), server, logger)
	}
}

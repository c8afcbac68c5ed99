package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/config"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}

	logger := bootstrap.InitLogger(cfg.IsDev)
	logStartupInfo(ctx, logger, &cfg)
	if err := bootstrap.Run(ctx, &cfg, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting recruitment portal",
		"addr", cfg.HTTP.Addr,
		"api_base_url", cfg.API.BaseURL,
		"auth_mode", cfg.Auth.Mode,
		"session_store", cfg.Session.Store,
		"verify_tokens", cfg.Auth.VerifyTokens(),
		"dev", cfg.IsDev,
	)
}

package main

import (
	"context"
	"log/slog"
	"os"

	_ "eventra/docs"
	"eventra/internal/app"
	"eventra/internal/config"
)

// @title Eventra API
// @version 1.0
// @description Campus event management with transactional ticket and resource booking.
// @host localhost:8080
// @BasePath /
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(context.Background(), logger); err != nil {
		logger.Error("eventra exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	return application.Run(ctx)
}

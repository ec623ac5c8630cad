package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"diorama/internal/config"
	"diorama/internal/session"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", config.DefaultPath, "path to the TOML config file")
	initConfig := flag.Bool("init-config", false, "write the default config to -config and exit")
	flag.Parse()

	if *initConfig {
		if err := config.Save(*configPath, config.Default()); err != nil {
			slog.Error("write config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		slog.Info("config written", "path", *configPath)
		return
	}

	cfg, err := config.Load(*configPath)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)
	if err != nil {
		logger.Warn("using default config", "path", *configPath, "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := session.New(cfg, logger)
	if err := s.WatchConfig(ctx, *configPath); err != nil {
		logger.Warn("config reload disabled", "error", err)
	}
	if err := s.Run(ctx); err != nil {
		logger.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}

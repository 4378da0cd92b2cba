package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"reskin-calc/internal/config"
	"reskin-calc/internal/service"
	"reskin-calc/internal/storage"
	redisstore "reskin-calc/internal/storage/redis"
	"reskin-calc/pkg/api"
	"reskin-calc/pkg/logger"
)

// ENTRY POINT

func main() {
	zapLogger, err := logger.New()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	drafts := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.DraftTTL)
	defer drafts.Close()

	quotes, err := storage.NewPostgresStorage(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to init PostgreSQL storage", zap.Error(err))
	}
	defer quotes.Close()

	if err := storage.RunMigrations(ctx, quotes.DB(), zapLogger); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	apiClient := api.NewClient(cfg.APIBaseURL, cfg.APIKey, cfg.HTTPRequestTimeout, zapLogger)

	calc := service.New(cfg, apiClient, quotes, drafts, zapLogger)

	if err := calc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Fatal("Calculator stopped with error", zap.Error(err))
	}

	zapLogger.Info("Calculator shutdown gracefully")
}

// Lore Hub API server entrypoint.
//
// @title        Lore Hub API
// @version      1.0
// @description  Role-gated administrative API for users and campaign data.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lorehub/lore-hub-api/internal/api"
	"github.com/lorehub/lore-hub-api/internal/infrastructure/config"
	mongodb "github.com/lorehub/lore-hub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/lorehub/lore-hub-api/internal/infrastructure/db/redis"
	"github.com/lorehub/lore-hub-api/internal/infrastructure/queue"
	"github.com/lorehub/lore-hub-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewAuditDispatcher(0, auditRepo, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret:  cfg.JWTSecret,
		BcryptCost: cfg.BcryptCost,
		TokenTTL:   24 * time.Hour,
		Audit:      dispatcher,
		Logger:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("lore hub api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

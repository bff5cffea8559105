package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloomday/bloomday/internal/api"
	"github.com/bloomday/bloomday/internal/pkg/config"
	"github.com/bloomday/bloomday/internal/pkg/logger"
	"github.com/bloomday/bloomday/internal/pkg/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal(ctx, err)
	}

	svc, err := api.NewAPIService(cfg, store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(cfg.HTTPAddr)
	logger.Infof(ctx, "listening on %s", cfg.HTTPAddr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}

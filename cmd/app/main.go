package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tourze/raffle-core/internal/activity"
	"github.com/tourze/raffle-core/internal/config"
	"github.com/tourze/raffle-core/internal/database"
	"github.com/tourze/raffle-core/internal/database/postgres"
	"github.com/tourze/raffle-core/internal/handler"
	"github.com/tourze/raffle-core/internal/logger"
	"github.com/tourze/raffle-core/internal/prizeorder"
	"github.com/tourze/raffle-core/internal/raffle"
	"github.com/tourze/raffle-core/internal/scheduler"
	"github.com/tourze/raffle-core/internal/server"
	"github.com/tourze/raffle-core/internal/sweeper"
	"github.com/tourze/raffle-core/internal/worker"
)

const (
	sweepWorkers   = 1
	sweepQueueSize = 4

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		false,
	))

	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), config.DefaultMaxConnections, config.DefaultMaxConnIdleTime, config.DefaultMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Repositories
	raffleRepo := postgres.NewRaffleRepository(dbPool)
	activityRepo := postgres.NewActivityRepository(dbPool)
	prizeOrderRepo := postgres.NewPrizeOrderRepository(dbPool)
	sweeperRepo := postgres.NewSweeperRepository(dbPool)

	// Services
	raffleService := raffle.NewService(raffleRepo, raffle.NewRand())
	activityService := activity.NewService(activityRepo, cfg.ActivityCacheSize, cfg.ActivityCacheTTL)
	prizeOrderService := prizeorder.NewService(prizeOrderRepo)

	// Background retention sweep
	pool := worker.NewPool(sweepWorkers, sweepQueueSize)
	pool.Start()
	defer pool.Stop()

	sched := scheduler.New(pool)
	defer sched.Stop()
	sched.Schedule(cfg.SweepInterval, sweeper.New(sweeperRepo, cfg.SweepRetention))
	slog.Info("Retention sweep scheduled", "interval", cfg.SweepInterval, "retention", cfg.SweepRetention)

	srv := server.NewServer(cfg.Port, dbPool, raffleService, activityService, prizeOrderService)

	// Run the server until interrupted, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}

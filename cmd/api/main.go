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

	"golang.org/x/sync/errgroup"

	"github.com/baharkarakas/point-ledger/internal/api"
	"github.com/baharkarakas/point-ledger/internal/config"
	"github.com/baharkarakas/point-ledger/internal/db"
	"github.com/baharkarakas/point-ledger/internal/logger"
	"github.com/baharkarakas/point-ledger/internal/metrics"
	repo "github.com/baharkarakas/point-ledger/internal/repository"
	"github.com/baharkarakas/point-ledger/internal/repository/memory"
	"github.com/baharkarakas/point-ledger/internal/repository/postgres"
	"github.com/baharkarakas/point-ledger/internal/services"
	"github.com/baharkarakas/point-ledger/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("exit", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	wp := worker.NewPool(cfg.WorkerCount, 1024)
	defer wp.Stop()

	metrics.Init()
	pointSvc := services.NewPointService(
		repos.Balances,
		repos.Histories,
		services.WithPolicy(services.Policy{
			MaxChargeAmount: cfg.MaxChargeAmount,
			MaxBalance:      cfg.MaxBalance,
		}),
		services.WithAuditor(services.NewAuditor(repos.AuditLogs, wp, log)),
		services.WithLogger(log),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.NewRouter(cfg, log, pointSvc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", "port", cfg.HTTPPort, "store", cfg.StoreBackend,
			"max_charge", cfg.MaxChargeAmount, "max_balance", cfg.MaxBalance)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.Set, func(), error) {
	if cfg.StoreBackend != "postgres" {
		return memory.NewRepositories(), func() {}, nil
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, 10)
	if err != nil {
		return repo.Set{}, nil, err
	}
	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool, log); err != nil {
			pool.Close()
			return repo.Set{}, nil, err
		}
	}
	return postgres.NewRepositories(pool), pool.Close, nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freedomradio/ecirs/internal/api"
	"github.com/freedomradio/ecirs/internal/core/service"
	"github.com/freedomradio/ecirs/internal/infrastructure/config"
	mongodb "github.com/freedomradio/ecirs/internal/infrastructure/db/mongo"
	redisdb "github.com/freedomradio/ecirs/internal/infrastructure/db/redis"
	"github.com/freedomradio/ecirs/internal/infrastructure/queue"
	"github.com/freedomradio/ecirs/pkg/logger"
)

// @title                      FREEDOM ECIRS Billing API
// @version                    1.0
// @description                Contracts, invoices and receipts billing API for the Freedom Radio network.
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("index creation failed")
	}

	// Ledger pipeline: postings flow from invoice/receipt services through the
	// sharded dispatcher into the ledger service.
	ledgerService := service.NewLedgerService(
		mongodb.NewClientRepository(db),
		mongodb.NewLedgerRepository(db),
		redisdb.NewPostingDedup(rdb),
		log,
	)
	dispatcher := queue.NewDispatcher(cfg.LedgerWorkers, ledgerService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

type indexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	repos := []indexEnsurer{
		mongodb.NewUserRepository(db),
		mongodb.NewClientRepository(db),
		mongodb.NewContractRepository(db),
		mongodb.NewInvoiceRepository(db),
		mongodb.NewReceiptRepository(db),
		mongodb.NewLedgerRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

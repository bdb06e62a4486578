package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Lexv0lk/secondhand-market/internal/gateway/domain"
	redisstore "github.com/Lexv0lk/secondhand-market/internal/gateway/infrastructure/redis"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/metrics"
	"github.com/Lexv0lk/secondhand-market/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 5 * time.Second

type MarketApp struct {
	cfg    MarketConfig
	logger logging.Logger

	server      *http.Server
	dbpool      *pgxpool.Pool
	redisClient *redis.Client
}

func NewMarketApp(cfg MarketConfig, logger logging.Logger) *MarketApp {
	return &MarketApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *MarketApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg
	dbURL := cfg.DbSettings.GetUrl()

	applied, err := database.MigrateDatabase(ctx, dbURL, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if len(applied) > 0 {
		logger.Info("database migrated", "versions", applied)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	var guard domain.IdempotencyGuard
	if cfg.Redis.Addr != "" {
		a.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})

		// The guard stays installed so idempotency resumes once redis comes back.
		if err := a.redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis is unreachable, duplicate purchases will pass through", "addr", cfg.Redis.Addr, "error", err.Error())
		}

		guard = redisstore.NewIdempotencyStore(a.redisClient, redisstore.IdempotencyKeyTTL)
	}

	router := NewRouter(cfg, dbpool, guard, metrics.NewRegistry(), logger)

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "port", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *MarketApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("failed to close redis client", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("market stopped")
}

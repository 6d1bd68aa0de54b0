package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/config"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/health"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/infra/repository"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/infra/sqlstore"
)

type storage struct {
	routes   domain.RouteRepository
	outlets  domain.OutletRepository
	visits   domain.VisitRepository
	settings domain.SettingsRepository
	deps     []health.Dependency
	close    func() error
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		return openPostgres(ctx, cfg.Storage)
	default:
		return openRedis(ctx, cfg.Redis)
	}
}

func openRedis(ctx context.Context, cfg *config.RedisConfig) (*storage, error) {
	client := redis.NewClient(cfg.Options())

	if err := redisotel.InstrumentTracing(client); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return nil, errors.Join(err, client.Close())
	}

	if err := redisotel.InstrumentMetrics(client); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return nil, errors.Join(err, client.Close())
	}

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return nil, errors.Join(err, client.Close())
	}

	slog.Info("redis connected", slog.String("addr", cfg.Addr))

	return &storage{
		routes:   repository.NewRouteRepository(client),
		outlets:  repository.NewOutletRepository(client),
		visits:   repository.NewVisitRepository(client),
		settings: repository.NewSettingsRepository(client),
		deps:     []health.Dependency{health.RedisDependency(client)},
		close:    client.Close,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.StorageConfig) (*storage, error) {
	db, err := sqlstore.Open(ctx, sqlstore.Options{
		DSN:          cfg.DSN,
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	})
	if err != nil {
		slog.Error("failed to connect postgres",
			slog.String("event", "postgres.connect.fail"),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlstore.Migrate(ctx, db); err != nil {
		return nil, errors.Join(fmt.Errorf("migrate postgres: %w", err), sqlDB.Close())
	}

	return &storage{
		routes:   sqlstore.NewRouteStore(db),
		outlets:  sqlstore.NewOutletStore(db),
		visits:   sqlstore.NewVisitStore(db),
		settings: sqlstore.NewSettingsStore(db),
		deps:     []health.Dependency{health.PostgresDependency(db)},
		close:    sqlDB.Close,
	}, nil
}

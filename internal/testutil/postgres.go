package testutil

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const postgresImage = "postgres:17-alpine"

// SetupPostgresContainer returns a gorm handle to a fresh, empty database.
func SetupPostgresContainer(ctx context.Context, t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	container := runOrSkip(t, "postgres", func() (*postgres.PostgresContainer, error) {
		return postgres.Run(ctx, postgresImage,
			postgres.WithDatabase("bts_test"),
			postgres.WithUsername("bts"),
			postgres.WithPassword("bts"),
			postgres.BasicWaitStrategies(),
		)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate(ctx, t, "postgres", container)
		t.Skipf("failed to get postgres connection string: %v", err)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		terminate(ctx, t, "postgres", container)
		t.Skipf("failed to connect to postgres: %v", err)
	}

	return db, func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				t.Logf("failed to close postgres connection: %v", err)
			}
		}
		terminate(ctx, t, "postgres", container)
	}
}

package handler

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/calendar"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/cleanup"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/migration"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/plan"
)

type Planner interface {
	GenerateForDate(ctx context.Context, resolver *calendar.Resolver, date civil.Date) (*plan.Result, error)
	Recalculate(ctx context.Context, resolver *calendar.Resolver, days int) (*plan.HorizonResult, error)
	Rebuild(ctx context.Context, resolver *calendar.Resolver) (*plan.RebuildResult, error)
	ListForDate(ctx context.Context, date civil.Date) ([]domain.PlannedVisit, error)
}

type Cleaner interface {
	CleanupStale(ctx context.Context, resolver *calendar.Resolver, retentionDays int) (*cleanup.Result, error)
}

type RouteMigrator interface {
	MigrateRoutes(ctx context.Context) (*migration.Result, error)
}

type ZoneSource interface {
	Resolver(ctx context.Context) (*calendar.Resolver, error)
	Set(ctx context.Context, name string) (*calendar.Resolver, error)
}

package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/calendar"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/cleanup"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/plan"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/session"
)

type Cleaner interface {
	CleanupStale(ctx context.Context, resolver *calendar.Resolver, retentionDays int) (*cleanup.Result, error)
}

type Recalculator interface {
	Recalculate(ctx context.Context, resolver *calendar.Resolver, days int) (*plan.HorizonResult, error)
}

type ResolverSource interface {
	Resolver(ctx context.Context) (*calendar.Resolver, error)
}

type MaintenanceConfig struct {
	Spec          string
	HorizonDays   int
	RetentionDays int
}

type MaintenanceResult struct {
	Cleanup *cleanup.Result
	Horizon *plan.HorizonResult
}

// MaintenanceJob removes stale visits and refills the planning horizon on a
// cron schedule, acting as the system operator.
type MaintenanceJob struct {
	cfg     MaintenanceConfig
	cleaner Cleaner
	planner Recalculator
	zones   ResolverSource

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
}

func NewMaintenanceJob(cfg MaintenanceConfig, cleaner Cleaner, planner Recalculator, zones ResolverSource) *MaintenanceJob {
	return &MaintenanceJob{
		cfg:     cfg,
		cleaner: cleaner,
		planner: planner,
		zones:   zones,
	}
}

// Start schedules the job. The schedule is evaluated in the zone active at start.
func (j *MaintenanceJob) Start(ctx context.Context) error {
	schedule, err := cron.ParseStandard(j.cfg.Spec)
	if err != nil {
		return fmt.Errorf("parse maintenance schedule %q: %w", j.cfg.Spec, err)
	}

	resolver, err := j.zones.Resolver(ctx)
	if err != nil {
		return fmt.Errorf("resolve time zone: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cron != nil {
		return errors.New("maintenance job already started")
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c := cron.New(cron.WithLocation(resolver.Location()))
	c.Schedule(schedule, cron.FuncJob(func() {
		if _, err := j.RunOnce(runCtx); err != nil {
			slog.ErrorContext(runCtx, "maintenance run failed",
				slog.String("event", "maintenance.failed"),
				slog.String("error", err.Error()),
			)
		}
	}))
	c.Start()

	j.cron = c
	j.cancel = cancel

	slog.InfoContext(ctx, "maintenance job scheduled",
		slog.String("spec", j.cfg.Spec),
		slog.String("time_zone", resolver.Name()),
	)

	return nil
}

// Stop cancels in-flight work and waits for a running job to return.
func (j *MaintenanceJob) Stop() {
	j.mu.Lock()
	c, cancel := j.cron, j.cancel
	j.cron, j.cancel = nil, nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if c != nil {
		<-c.Stop().Done()
	}
}

// RunOnce cleans stale visits, then recalculates the horizon. A cleanup
// failure does not prevent the recalculation.
func (j *MaintenanceJob) RunOnce(ctx context.Context) (*MaintenanceResult, error) {
	resolver, err := j.zones.Resolver(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve time zone: %w", err)
	}

	ctx = session.WithOperator(ctx, session.SystemOperator())
	ctx = plan.WithTrigger(ctx, plan.TriggerMaintenance)

	result := &MaintenanceResult{}
	var errs []error

	cleaned, err := j.cleaner.CleanupStale(ctx, resolver, j.cfg.RetentionDays)
	if err != nil {
		errs = append(errs, fmt.Errorf("cleanup: %w", err))
	} else {
		result.Cleanup = cleaned
	}

	horizon, err := j.planner.Recalculate(ctx, resolver, j.cfg.HorizonDays)
	if err != nil {
		errs = append(errs, fmt.Errorf("recalculate: %w", err))
	}
	result.Horizon = horizon

	attrs := []any{slog.String("time_zone", resolver.Name())}
	if result.Cleanup != nil {
		attrs = append(attrs, slog.Int("removed_count", result.Cleanup.RemovedCount))
	}
	if result.Horizon != nil {
		attrs = append(attrs, slog.Int("created_count", result.Horizon.CreatedCount))
	}
	slog.InfoContext(ctx, "maintenance run finished", attrs...)

	return result, errors.Join(errs...)
}

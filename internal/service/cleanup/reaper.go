package cleanup

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/civil"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/calendar"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/metrics"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/tracing"
)

const DefaultRetentionDays = 30

type Failure struct {
	VisitID string `json:"visit_id"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

type Result struct {
	Cutoff       string    `json:"cutoff"`
	ScannedCount int       `json:"scanned_count"`
	RemovedCount int       `json:"removed_count"`
	FailedCount  int       `json:"failed_count"`
	Failures     []Failure `json:"failures,omitempty"`
}

// Reaper deletes scheduled visits that were never acted on and have aged out.
type Reaper struct {
	visitRepo   domain.VisitRepository
	planMetrics *metrics.PlanMetrics
}

func NewReaper(visitRepo domain.VisitRepository, planMetrics *metrics.PlanMetrics) *Reaper {
	return &Reaper{
		visitRepo:   visitRepo,
		planMetrics: planMetrics,
	}
}

// CleanupStale removes every scheduled visit dated strictly before today minus
// retentionDays. Postponed and completed visits are kept regardless of age.
func (r *Reaper) CleanupStale(ctx context.Context, resolver *calendar.Resolver, retentionDays int) (*Result, error) {
	if retentionDays < 0 {
		retentionDays = DefaultRetentionDays
	}

	cutoff := resolver.Today().AddDays(-retentionDays)

	ctx, span := tracing.StartCleanupSpan(ctx, retentionDays, cutoff.String())
	defer span.End()

	visits, err := r.visitRepo.GetAll(ctx)
	if err != nil {
		err = fmt.Errorf("load visits: %w", err)
		slog.ErrorContext(ctx, "failed to load visits for cleanup",
			slog.String("error", err.Error()),
		)
		tracing.RecordCleanupResult(span, 0, 0, 0, err)
		return nil, err
	}

	result := &Result{
		Cutoff:       cutoff.String(),
		ScannedCount: len(visits),
	}

	for i := range visits {
		v := &visits[i]
		if !isStale(v, resolver, cutoff) {
			continue
		}

		if err := r.visitRepo.Delete(ctx, v.ID); err != nil {
			slog.WarnContext(ctx, "failed to delete stale visit",
				slog.String("visit_id", v.ID),
				slog.String("planned_date", v.PlannedDate),
				slog.String("error", err.Error()),
			)
			result.FailedCount++
			result.Failures = append(result.Failures, Failure{
				VisitID: v.ID,
				Message: err.Error(),
				Err:     err,
			})
			continue
		}

		result.RemovedCount++
	}

	if r.planMetrics != nil {
		r.planMetrics.RecordStaleVisitsRemoved(ctx, result.RemovedCount)
	}
	tracing.RecordCleanupResult(span, result.ScannedCount, result.RemovedCount, result.FailedCount, nil)

	slog.InfoContext(ctx, "stale visit cleanup completed",
		slog.String("cutoff", result.Cutoff),
		slog.Int("scanned_count", result.ScannedCount),
		slog.Int("removed_count", result.RemovedCount),
		slog.Int("failed_count", result.FailedCount),
	)

	return result, nil
}

func isStale(v *domain.PlannedVisit, resolver *calendar.Resolver, cutoff civil.Date) bool {
	if v.Status != domain.VisitStatusScheduled {
		return false
	}

	date, ok := calendar.ParseDate(v.PlannedDate)
	if !ok {
		if v.CreatedAt.IsZero() {
			return false
		}
		date = resolver.DateOf(v.CreatedAt)
	}

	return date.Before(cutoff)
}

package migration

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/tracing"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/routeday"
)

type Failure struct {
	OutletCode string `json:"outlet_code"`
	Message    string `json:"error"`
	Err        error  `json:"-"`
}

type Result struct {
	MigratedCount  int       `json:"migrated_count"`
	UnchangedCount int       `json:"unchanged_count"`
	SkippedCount   int       `json:"skipped_count"`
	FailedCount    int       `json:"failed_count"`
	Failures       []Failure `json:"failures,omitempty"`
}

// Service rewrites stored route records into their canonical shape so that
// legacy day representations no longer reach the planner.
type Service struct {
	routeRepo domain.RouteRepository
	now       func() time.Time
}

func NewService(routeRepo domain.RouteRepository) *Service {
	return &Service{
		routeRepo: routeRepo,
		now:       time.Now,
	}
}

func (s *Service) MigrateRoutes(ctx context.Context) (*Result, error) {
	ctx, span := tracing.StartRouteMigrationSpan(ctx)
	defer span.End()

	records, err := s.routeRepo.GetAll(ctx)
	if err != nil {
		err = fmt.Errorf("load routes: %w", err)
		tracing.RecordRouteMigrationResult(span, 0, 0, 0, err)
		return nil, err
	}

	result := &Result{}
	for _, rec := range records {
		if rec.OutletCode == "" {
			result.SkippedCount++
			continue
		}

		canonical := Canonicalize(rec)
		if dropsDays(rec, canonical) {
			slog.WarnContext(ctx, "skipping route whose stored days resolve to none",
				slog.String("outlet_code", rec.OutletCode),
				slog.Any("day_of_week", rec.DayOfWeek),
				slog.Any("days_of_week", rec.DaysOfWeek),
			)
			result.SkippedCount++
			continue
		}
		if isCanonical(rec, canonical) {
			result.UnchangedCount++
			continue
		}
		canonical.UpdatedAt = s.now().UTC()

		if err := s.routeRepo.Put(ctx, canonical); err != nil {
			slog.WarnContext(ctx, "failed to migrate route",
				slog.String("outlet_code", rec.OutletCode),
				slog.String("error", err.Error()),
			)
			result.FailedCount++
			result.Failures = append(result.Failures, Failure{
				OutletCode: rec.OutletCode,
				Message:    err.Error(),
				Err:        err,
			})
			continue
		}

		result.MigratedCount++
	}

	tracing.RecordRouteMigrationResult(span, result.MigratedCount, result.SkippedCount, result.FailedCount, nil)

	slog.InfoContext(ctx, "route migration completed",
		slog.Int("migrated_count", result.MigratedCount),
		slog.Int("unchanged_count", result.UnchangedCount),
		slog.Int("skipped_count", result.SkippedCount),
		slog.Int("failed_count", result.FailedCount),
	)

	return result, nil
}

// Canonicalize returns rec with legacy fields folded into DaysOfWeek and cleared.
// UpdatedAt is carried over unchanged.
func Canonicalize(rec domain.RouteRecord) domain.RouteRecord {
	route := routeday.Resolve(rec)
	return domain.RouteRecord{
		OutletCode:    route.OutletCode,
		DaysOfWeek:    route.DaysOfWeek,
		OperatorEmail: route.OperatorEmail,
		Frequency:     route.Frequency.String(),
		Priority:      route.Priority,
		UpdatedAt:     rec.UpdatedAt,
	}
}

// dropsDays reports whether rewriting rec as canonical would erase day data it
// still stores, as with an out-of-range DayOfWeek next to a valid DaysOfWeek.
func dropsDays(rec, canonical domain.RouteRecord) bool {
	if len(canonical.DaysOfWeek) > 0 {
		return false
	}
	return len(rec.DaysOfWeek) > 0 || len(rec.Schedule.Days()) > 0
}

func isCanonical(rec, canonical domain.RouteRecord) bool {
	return !rec.IsLegacy() &&
		slices.Equal(rec.DaysOfWeek, canonical.DaysOfWeek) &&
		rec.OperatorEmail == canonical.OperatorEmail &&
		rec.Frequency == canonical.Frequency &&
		rec.Priority == canonical.Priority
}

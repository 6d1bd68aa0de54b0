package plan

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/calendar"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/metrics"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/tracing"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/routeday"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/weekcycle"
)

type Service struct {
	routeRepo   domain.RouteRepository
	outletRepo  domain.OutletRepository
	visitRepo   domain.VisitRepository
	session     domain.SessionProvider
	runRecorder domain.PlanRunRecorder
	planMetrics *metrics.PlanMetrics
}

func NewService(
	routeRepo domain.RouteRepository,
	outletRepo domain.OutletRepository,
	visitRepo domain.VisitRepository,
	session domain.SessionProvider,
	runRecorder domain.PlanRunRecorder,
	planMetrics *metrics.PlanMetrics,
) *Service {
	return &Service{
		routeRepo:   routeRepo,
		outletRepo:  outletRepo,
		visitRepo:   visitRepo,
		session:     session,
		runRecorder: runRecorder,
		planMetrics: planMetrics,
	}
}

// Generate plans visits for the calendar date target falls on in the resolver's zone.
func (s *Service) Generate(ctx context.Context, resolver *calendar.Resolver, target time.Time) (*Result, error) {
	return s.GenerateForDate(ctx, resolver, resolver.DateOf(target))
}

// GenerateForDate creates one scheduled visit for every route due on date that
// the current operator owns and that has no visit for date yet. Failures on a
// single route are collected in the result; only failing to load routes or
// existing visits aborts the run.
func (s *Service) GenerateForDate(ctx context.Context, resolver *calendar.Resolver, date civil.Date) (*Result, error) {
	plannedDate := date.String()

	operator := s.session.CurrentOperator(ctx)
	if operator == nil {
		slog.DebugContext(ctx, "skipping plan generation for anonymous caller",
			slog.String("planned_date", plannedDate),
		)
		return &Result{
			PlannedDate: plannedDate,
			TimeZone:    resolver.Name(),
			Items:       []ResultItem{},
			Anonymous:   true,
		}, nil
	}

	ctx, span := tracing.StartGenerateSpan(ctx, plannedDate, resolver.Name())
	defer span.End()

	startedAt := time.Now()
	trigger := TriggerFromContext(ctx)

	records, err := s.routeRepo.GetAll(ctx)
	if err != nil {
		err = fmt.Errorf("load routes: %w", err)
		slog.ErrorContext(ctx, "failed to load routes for planning",
			slog.String("planned_date", plannedDate),
			slog.String("error", err.Error()),
		)
		tracing.RecordGenerateResult(span, 0, 0, 0, 0, err)
		return nil, err
	}

	visits, err := s.visitRepo.GetAll(ctx)
	if err != nil {
		err = fmt.Errorf("load visits: %w", err)
		slog.ErrorContext(ctx, "failed to load existing visits for planning",
			slog.String("planned_date", plannedDate),
			slog.String("error", err.Error()),
		)
		tracing.RecordGenerateResult(span, 0, 0, 0, 0, err)
		return nil, err
	}

	planned := make(map[string]struct{}, len(visits))
	for i := range visits {
		planned[visits[i].SlotKey()] = struct{}{}
	}

	slog.DebugContext(ctx, "loaded planning inputs",
		slog.String("planned_date", plannedDate),
		slog.Int("route_count", len(records)),
		slog.Int("visit_count", len(visits)),
	)

	result := &Result{
		PlannedDate: plannedDate,
		TimeZone:    resolver.Name(),
		Items:       make([]ResultItem, 0, len(records)),
	}
	plannedAt := resolver.Midnight(date)

	for _, rec := range records {
		route := routeday.Resolve(rec)

		if !s.isDue(route, operator, date) {
			result.FilteredCount++
			s.recordOutcome(ctx, metrics.OutcomeFiltered)
			continue
		}

		key := domain.SlotKey(plannedDate, route.OutletCode)
		if _, ok := planned[key]; ok {
			result.ExistingCount++
			result.Items = append(result.Items, ResultItem{
				OutletCode: route.OutletCode,
				Outcome:    OutcomeExisting,
				SkipReason: "visit already planned",
			})
			s.recordOutcome(ctx, metrics.OutcomeExisting)
			continue
		}

		visit, err := s.createVisit(ctx, route, operator, plannedDate, plannedAt)
		if err != nil {
			slog.WarnContext(ctx, "failed to plan visit for route",
				slog.String("planned_date", plannedDate),
				slog.String("outlet_code", route.OutletCode),
				slog.String("error", err.Error()),
			)
			result.FailedCount++
			result.Failures = append(result.Failures, newFailure(route.OutletCode, err))
			result.Items = append(result.Items, ResultItem{
				OutletCode: route.OutletCode,
				Outcome:    OutcomeFailed,
			})
			s.recordOutcome(ctx, metrics.OutcomeFailed)
			continue
		}

		planned[key] = struct{}{}
		result.CreatedCount++
		result.Items = append(result.Items, ResultItem{
			OutletCode: route.OutletCode,
			VisitID:    visit.ID,
			Outcome:    OutcomeCreated,
			Priority:   visit.Priority,
		})
		s.recordOutcome(ctx, metrics.OutcomeCreated)
	}

	if s.planMetrics != nil {
		s.planMetrics.RecordVisitsCreated(ctx, result.CreatedCount)
		s.planMetrics.RecordGenerationDuration(ctx, trigger, time.Since(startedAt))
	}

	tracing.RecordGenerateResult(span, result.CreatedCount, result.ExistingCount, result.FilteredCount, result.FailedCount, nil)

	slog.InfoContext(ctx, "plan generation completed",
		slog.String("planned_date", plannedDate),
		slog.String("time_zone", resolver.Name()),
		slog.String("trigger", trigger),
		slog.Int("created_count", result.CreatedCount),
		slog.Int("existing_count", result.ExistingCount),
		slog.Int("filtered_count", result.FilteredCount),
		slog.Int("failed_count", result.FailedCount),
	)

	s.recordRun(ctx, trigger, operator, result)

	return result, nil
}

// Recalculate runs generation for today and the following days-1 dates in
// ascending order. days is capped at MaxHorizonDays. A day that fails as a
// whole is reported and the remaining days still run; an error is returned
// only when every day failed.
func (s *Service) Recalculate(ctx context.Context, resolver *calendar.Resolver, days int) (*HorizonResult, error) {
	today := resolver.Today()

	if days > MaxHorizonDays {
		slog.WarnContext(ctx, "planning horizon capped",
			slog.Int("requested_days", days),
			slog.Int("max_days", MaxHorizonDays),
		)
		days = MaxHorizonDays
	}

	horizon := &HorizonResult{
		StartDate: today.String(),
		Results:   []*Result{},
	}
	if days <= 0 {
		return horizon, nil
	}

	if s.session.CurrentOperator(ctx) == nil {
		horizon.Anonymous = true
		return horizon, nil
	}

	ctx, span := tracing.StartRecalculateSpan(ctx, days, resolver.Name())
	defer span.End()

	for i := 0; i < days; i++ {
		date := today.AddDays(i)

		result, err := s.GenerateForDate(ctx, resolver, date)
		if err != nil {
			horizon.DayFailures = append(horizon.DayFailures, DayFailure{
				PlannedDate: date.String(),
				Message:     err.Error(),
				Err:         err,
			})
			continue
		}
		horizon.add(result)
	}
	horizon.Days = days

	var err error
	if len(horizon.DayFailures) == days {
		errs := make([]error, 0, len(horizon.DayFailures))
		for _, f := range horizon.DayFailures {
			errs = append(errs, f.Err)
		}
		err = fmt.Errorf("recalculate %d days from %s: %w", days, horizon.StartDate, errors.Join(errs...))
	}

	tracing.RecordRecalculateResult(span, days-len(horizon.DayFailures), horizon.CreatedCount, horizon.FailedCount, err)

	slog.InfoContext(ctx, "plan horizon recalculated",
		slog.String("start_date", horizon.StartDate),
		slog.Int("days", days),
		slog.Int("created_count", horizon.CreatedCount),
		slog.Int("failed_count", horizon.FailedCount),
		slog.Int("failed_days", len(horizon.DayFailures)),
	)

	return horizon, err
}

// Rebuild purges every visit and regenerates today's plan. Only admins may
// rebuild.
func (s *Service) Rebuild(ctx context.Context, resolver *calendar.Resolver) (*RebuildResult, error) {
	operator := s.session.CurrentOperator(ctx)
	if operator == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !operator.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if err := s.visitRepo.Clear(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to purge visits",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("purge visits: %w", err)
	}

	slog.InfoContext(ctx, "purged all visits before rebuild",
		slog.String("operator_email", operator.Email),
	)

	result, err := s.GenerateForDate(WithTrigger(ctx, TriggerRebuild), resolver, resolver.Today())
	if err != nil {
		return &RebuildResult{Purged: true}, err
	}

	return &RebuildResult{Purged: true, Result: result}, nil
}

// ListForDate returns the visits planned on date that the current operator
// may see, ordered by priority and then outlet code.
func (s *Service) ListForDate(ctx context.Context, date civil.Date) ([]domain.PlannedVisit, error) {
	operator := s.session.CurrentOperator(ctx)
	if operator == nil {
		return nil, domain.ErrUnauthenticated
	}

	visits, err := s.visitRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load visits: %w", err)
	}

	plannedDate := date.String()
	out := make([]domain.PlannedVisit, 0)
	for _, v := range visits {
		if v.PlannedDate != plannedDate {
			continue
		}
		if !operator.Owns(v.OperatorEmail) {
			continue
		}
		out = append(out, v)
	}

	slices.SortStableFunc(out, func(a, b domain.PlannedVisit) int {
		return cmp.Or(
			cmp.Compare(a.Priority, b.Priority),
			cmp.Compare(a.OutletCode, b.OutletCode),
		)
	})

	return out, nil
}

func (s *Service) isDue(route domain.Route, operator *domain.Operator, date civil.Date) bool {
	if route.OutletCode == "" {
		return false
	}
	if !routeday.Matches(route, date) {
		return false
	}
	if !operator.Owns(route.OperatorEmail) {
		return false
	}
	return weekcycle.MatchesDate(date, route.Frequency)
}

func (s *Service) createVisit(
	ctx context.Context,
	route domain.Route,
	operator *domain.Operator,
	plannedDate string,
	plannedAt time.Time,
) (*domain.PlannedVisit, error) {
	outlet, err := s.outletRepo.GetByCode(ctx, route.OutletCode)
	if err != nil {
		if !errors.Is(err, domain.ErrOutletNotFound) {
			return nil, fmt.Errorf("load outlet: %w", err)
		}
		slog.DebugContext(ctx, "outlet not found, planning with empty snapshot",
			slog.String("outlet_code", route.OutletCode),
		)
		outlet = nil
	}

	operatorEmail := route.OperatorEmail
	if operatorEmail == "" {
		operatorEmail = domain.NormalizeEmail(operator.Email)
	}

	visit := domain.NewScheduledVisit(route, outlet, plannedDate, plannedAt, operatorEmail, route.Priority)

	if err := s.visitRepo.Put(ctx, visit); err != nil {
		return nil, fmt.Errorf("save visit: %w", err)
	}

	return visit, nil
}

func (s *Service) recordOutcome(ctx context.Context, outcome string) {
	if s.planMetrics != nil {
		s.planMetrics.RecordRouteEvaluated(ctx, outcome)
	}
}

func (s *Service) recordRun(ctx context.Context, trigger string, operator *domain.Operator, result *Result) {
	if s.runRecorder == nil {
		return
	}

	record := domain.PlanRunRecord{
		RunID:         uuid.NewString(),
		Trigger:       trigger,
		PlannedDate:   result.PlannedDate,
		TimeZone:      result.TimeZone,
		OperatorEmail: domain.NormalizeEmail(operator.Email),
		CreatedCount:  result.CreatedCount,
		ExistingCount: result.ExistingCount,
		FilteredCount: result.FilteredCount,
		FailedCount:   result.FailedCount,
		RecordedAt:    time.Now().UTC(),
	}

	if err := s.runRecorder.RecordRuns(ctx, []domain.PlanRunRecord{record}); err != nil {
		slog.WarnContext(ctx, "failed to record plan run",
			slog.String("planned_date", result.PlannedDate),
			slog.String("error", err.Error()),
		)
	}
}

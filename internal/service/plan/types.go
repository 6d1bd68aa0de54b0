package plan

import (
	"errors"
	"fmt"
)

// Route evaluation outcomes reported per item.
const (
	OutcomeCreated  = "created"
	OutcomeExisting = "existing"
	OutcomeFailed   = "failed"
)

// MaxHorizonDays bounds the number of days a single Recalculate run plans.
const MaxHorizonDays = 60

// Triggers identify what started a generation run.
const (
	TriggerManual      = "manual"
	TriggerHTTP        = "http"
	TriggerVisitsPage  = "visits_page"
	TriggerRebuild     = "rebuild"
	TriggerMaintenance = "maintenance"
	TriggerRouteImport = "route_import"
)

type ResultItem struct {
	OutletCode string `json:"outlet_code"`
	VisitID    string `json:"visit_id,omitempty"`
	Outcome    string `json:"outcome"`
	Priority   int    `json:"priority,omitempty"`
	SkipReason string `json:"skip_reason,omitempty"`
}

// Failure is a route that could not be planned. The rest of the batch is unaffected.
type Failure struct {
	OutletCode string `json:"outlet_code"`
	Message    string `json:"error"`
	Err        error  `json:"-"`
}

func newFailure(outletCode string, err error) Failure {
	return Failure{
		OutletCode: outletCode,
		Message:    err.Error(),
		Err:        err,
	}
}

type Result struct {
	PlannedDate   string       `json:"planned_date"`
	TimeZone      string       `json:"time_zone,omitempty"`
	CreatedCount  int          `json:"created_count"`
	ExistingCount int          `json:"existing_count"`
	FilteredCount int          `json:"filtered_count"`
	FailedCount   int          `json:"failed_count"`
	Items         []ResultItem `json:"items"`
	Failures      []Failure    `json:"failures,omitempty"`
	Anonymous     bool         `json:"anonymous,omitempty"`
}

// Err joins the per-route failures, or returns nil when there were none.
func (r *Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, fmt.Errorf("%s: %w", f.OutletCode, f.Err))
	}
	return errors.Join(errs...)
}

// DayFailure is a horizon day whose generation failed as a whole.
type DayFailure struct {
	PlannedDate string `json:"planned_date"`
	Message     string `json:"error"`
	Err         error  `json:"-"`
}

type HorizonResult struct {
	StartDate    string       `json:"start_date"`
	Days         int          `json:"days"`
	CreatedCount int          `json:"created_count"`
	FailedCount  int          `json:"failed_count"`
	Results      []*Result    `json:"results"`
	DayFailures  []DayFailure `json:"day_failures,omitempty"`
	Anonymous    bool         `json:"anonymous,omitempty"`
}

func (h *HorizonResult) add(r *Result) {
	h.Results = append(h.Results, r)
	h.CreatedCount += r.CreatedCount
	h.FailedCount += r.FailedCount
}

// RebuildResult reports a purge of every visit followed by generation for today.
type RebuildResult struct {
	Purged bool    `json:"purged"`
	Result *Result `json:"result"`
}

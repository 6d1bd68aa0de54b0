package domain

import (
	"context"
	"time"
)

type PlanRunRecord struct {
	RunID         string
	Trigger       string
	PlannedDate   string
	TimeZone      string
	OperatorEmail string
	CreatedCount  int
	ExistingCount int
	FilteredCount int
	FailedCount   int
	RecordedAt    time.Time
}

type PlanRunRecorder interface {
	RecordRuns(ctx context.Context, records []PlanRunRecord) error
	Close() error
}

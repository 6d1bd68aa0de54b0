//go:build gcloud

package runrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt    time.Time `bigquery:"recorded_at"`
	RunID         string    `bigquery:"run_id"`
	Trigger       string    `bigquery:"trigger"`
	PlannedDate   string    `bigquery:"planned_date"`
	TimeZone      string    `bigquery:"time_zone"`
	OperatorEmail string    `bigquery:"operator_email"`
	CreatedCount  int64     `bigquery:"created_count"`
	ExistingCount int64     `bigquery:"existing_count"`
	FilteredCount int64     `bigquery:"filtered_count"`
	FailedCount   int64     `bigquery:"failed_count"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PlanRunRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan run recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, plan run recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, plan run recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	slog.InfoContext(ctx, "plan run recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordRuns(ctx context.Context, records []domain.PlanRunRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		recordedAt := record.RecordedAt
		if recordedAt.IsZero() {
			recordedAt = now
		}
		rows = append(rows, &bigQueryRecord{
			RecordedAt:    recordedAt,
			RunID:         record.RunID,
			Trigger:       record.Trigger,
			PlannedDate:   record.PlannedDate,
			TimeZone:      record.TimeZone,
			OperatorEmail: record.OperatorEmail,
			CreatedCount:  int64(record.CreatedCount),
			ExistingCount: int64(record.ExistingCount),
			FilteredCount: int64(record.FilteredCount),
			FailedCount:   int64(record.FailedCount),
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert plan runs to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

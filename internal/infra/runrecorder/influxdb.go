//go:build !gcloud

package runrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

const planRunMeasurement = "plan_run"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PlanRunRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan run recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, plan run recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)

	slog.InfoContext(ctx, "plan run recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket),
	}, nil
}

// RecordRuns writes one point per record. Write failures are logged and do not
// fail the run.
func (r *influxDBRecorder) RecordRuns(ctx context.Context, records []domain.PlanRunRecord) error {
	for _, record := range records {
		if err := r.writeAPI.WritePoint(ctx, newRunPoint(record)); err != nil {
			slog.WarnContext(ctx, "failed to write plan run to InfluxDB",
				slog.String("error", err.Error()),
				slog.String("run_id", record.RunID),
				slog.String("planned_date", record.PlannedDate),
			)
		}
	}
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}

func newRunPoint(record domain.PlanRunRecord) *write.Point {
	runID := record.RunID
	if runID == "" {
		runID = "default"
	}

	recordedAt := record.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	return influxdb2.NewPoint(
		planRunMeasurement,
		map[string]string{
			"run_id":       runID,
			"trigger":      record.Trigger,
			"planned_date": record.PlannedDate,
			"time_zone":    record.TimeZone,
		},
		map[string]any{
			"operator_email": record.OperatorEmail,
			"created_count":  record.CreatedCount,
			"existing_count": record.ExistingCount,
			"filtered_count": record.FilteredCount,
			"failed_count":   record.FailedCount,
		},
		recordedAt,
	)
}

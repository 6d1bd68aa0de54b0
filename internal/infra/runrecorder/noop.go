package runrecorder

import (
	"context"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.PlanRunRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordRuns(_ context.Context, _ []domain.PlanRunRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}

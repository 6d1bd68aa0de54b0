package cleanup

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/calendar"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

func newResolver(t *testing.T) *calendar.Resolver {
	t.Helper()
	clock := func() time.Time { return time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC) }
	r, err := calendar.NewResolver("Europe/Moscow", calendar.WithClock(clock))
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func daysAgo(n int) string {
	return time.Date(2024, 3, 6-n, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

func TestReaper_CleanupStale(t *testing.T) {
	visits := []domain.PlannedVisit{
		{ID: "kept-30", PlannedDate: daysAgo(30), Status: domain.VisitStatusScheduled},
		{ID: "gone-31", PlannedDate: daysAgo(31), Status: domain.VisitStatusScheduled},
		{ID: "completed-60", PlannedDate: daysAgo(60), Status: domain.VisitStatusCompleted},
		{ID: "postponed-90", PlannedDate: daysAgo(90), Status: domain.VisitStatusPostponed},
		{ID: "today", PlannedDate: daysAgo(0), Status: domain.VisitStatusScheduled},
		{ID: "undated-old", Status: domain.VisitStatusScheduled, CreatedAt: time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)},
		{ID: "undated-recent", Status: domain.VisitStatusScheduled, CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "undated-no-created", Status: domain.VisitStatusScheduled},
	}

	ctrl := gomock.NewController(t)
	visitRepo := domain.NewMockVisitRepository(ctrl)

	var deleted []string
	visitRepo.EXPECT().GetAll(gomock.Any()).Return(visits, nil)
	visitRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}).AnyTimes()

	result, err := NewReaper(visitRepo, nil).CleanupStale(context.Background(), newResolver(t), 30)
	if err != nil {
		t.Fatalf("CleanupStale() error = %v", err)
	}

	want := []string{"gone-31", "undated-old"}
	if !slices.Equal(deleted, want) {
		t.Errorf("deleted = %v, want %v", deleted, want)
	}
	if result.RemovedCount != 2 {
		t.Errorf("RemovedCount = %d, want 2", result.RemovedCount)
	}
	if result.Cutoff != "2024-02-05" {
		t.Errorf("Cutoff = %s, want 2024-02-05", result.Cutoff)
	}
	if result.ScannedCount != len(visits) {
		t.Errorf("ScannedCount = %d, want %d", result.ScannedCount, len(visits))
	}
}

func TestReaper_RetentionBoundary(t *testing.T) {
	tests := []struct {
		name      string
		retention int
		age       int
		wantGone  bool
	}{
		{name: "age equals retention is kept", retention: 30, age: 30, wantGone: false},
		{name: "one day past retention is removed", retention: 30, age: 31, wantGone: true},
		{name: "zero retention removes yesterday", retention: 0, age: 1, wantGone: true},
		{name: "zero retention keeps today", retention: 0, age: 0, wantGone: false},
		{name: "negative retention uses default", retention: -1, age: 30, wantGone: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			visitRepo := domain.NewMockVisitRepository(ctrl)

			visitRepo.EXPECT().GetAll(gomock.Any()).Return([]domain.PlannedVisit{
				{ID: "v1", PlannedDate: daysAgo(tt.age), Status: domain.VisitStatusScheduled},
			}, nil)
			if tt.wantGone {
				visitRepo.EXPECT().Delete(gomock.Any(), "v1").Return(nil)
			}

			result, err := NewReaper(visitRepo, nil).CleanupStale(context.Background(), newResolver(t), tt.retention)
			if err != nil {
				t.Fatalf("CleanupStale() error = %v", err)
			}
			if got := result.RemovedCount == 1; got != tt.wantGone {
				t.Errorf("removed = %v, want %v", got, tt.wantGone)
			}
		})
	}
}

func TestReaper_DeleteFailuresAreCollected(t *testing.T) {
	ctrl := gomock.NewController(t)
	visitRepo := domain.NewMockVisitRepository(ctrl)

	deleteErr := errors.New("delete refused")
	visitRepo.EXPECT().GetAll(gomock.Any()).Return([]domain.PlannedVisit{
		{ID: "a", PlannedDate: daysAgo(40), Status: domain.VisitStatusScheduled},
		{ID: "b", PlannedDate: daysAgo(41), Status: domain.VisitStatusScheduled},
	}, nil)
	visitRepo.EXPECT().Delete(gomock.Any(), "a").Return(deleteErr)
	visitRepo.EXPECT().Delete(gomock.Any(), "b").Return(nil)

	result, err := NewReaper(visitRepo, nil).CleanupStale(context.Background(), newResolver(t), 30)
	if err != nil {
		t.Fatalf("CleanupStale() error = %v", err)
	}
	if result.RemovedCount != 1 || result.FailedCount != 1 {
		t.Fatalf("removed=%d failed=%d, want 1 and 1", result.RemovedCount, result.FailedCount)
	}
	if result.Failures[0].VisitID != "a" || !errors.Is(result.Failures[0].Err, deleteErr) {
		t.Errorf("failure = %+v", result.Failures[0])
	}
}

func TestReaper_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	visitRepo := domain.NewMockVisitRepository(ctrl)

	loadErr := errors.New("timeout")
	visitRepo.EXPECT().GetAll(gomock.Any()).Return(nil, loadErr)

	_, err := NewReaper(visitRepo, nil).CleanupStale(context.Background(), newResolver(t), 30)
	if !errors.Is(err, loadErr) {
		t.Errorf("CleanupStale() error = %v, want %v", err, loadErr)
	}
}

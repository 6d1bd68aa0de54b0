package routeday

import (
	"slices"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestISOWeekday(t *testing.T) {
	// 2024-03-04 is a Monday.
	monday := civil.Date{Year: 2024, Month: time.March, Day: 4}
	for i := 0; i < 7; i++ {
		d := monday.AddDays(i)
		if got := ISOWeekday(d); got != i+1 {
			t.Errorf("ISOWeekday(%v) = %d, want %d", d, got, i+1)
		}
	}
}

func TestResolve_Days(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.RouteRecord
		want []int
	}{
		{
			name: "legacy dayOfWeek wins over daysOfWeek",
			rec:  domain.RouteRecord{DayOfWeek: intPtr(3), DaysOfWeek: []int{1, 5}},
			want: []int{3},
		},
		{
			name: "legacy dayOfWeek wins over schedule",
			rec:  domain.RouteRecord{DayOfWeek: intPtr(7), Schedule: &domain.LegacySchedule{Mon: true}},
			want: []int{7},
		},
		{
			name: "out of range dayOfWeek never matches",
			rec:  domain.RouteRecord{DayOfWeek: intPtr(9), DaysOfWeek: []int{1}},
			want: []int{},
		},
		{
			name: "zero dayOfWeek is treated as unset",
			rec:  domain.RouteRecord{DayOfWeek: intPtr(0), DaysOfWeek: []int{2}},
			want: []int{2},
		},
		{
			name: "daysOfWeek deduped sorted and filtered",
			rec:  domain.RouteRecord{DaysOfWeek: []int{5, 1, 5, 0, 8, 3}},
			want: []int{1, 3, 5},
		},
		{
			name: "daysOfWeek wins over schedule",
			rec:  domain.RouteRecord{DaysOfWeek: []int{2}, Schedule: &domain.LegacySchedule{Fri: true}},
			want: []int{2},
		},
		{
			name: "schedule flags",
			rec:  domain.RouteRecord{Schedule: &domain.LegacySchedule{Tue: true, Sun: true}},
			want: []int{2, 7},
		},
		{
			name: "nothing present",
			rec:  domain.RouteRecord{OutletCode: "OUT-9"},
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.rec).DaysOfWeek
			if !slices.Equal(got, tt.want) {
				t.Errorf("Resolve().DaysOfWeek = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_Normalizes(t *testing.T) {
	updated := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := domain.RouteRecord{
		OutletCode:    "OUT-001",
		DaysOfWeek:    []int{3},
		OperatorEmail: "  Ivan@Example.COM ",
		WeekCode:      "2,2",
		UpdatedAt:     updated,
	}

	got := Resolve(rec)

	if got.OperatorEmail != "ivan@example.com" {
		t.Errorf("OperatorEmail = %q", got.OperatorEmail)
	}
	if got.Frequency != domain.FrequencyEvenWeek {
		t.Errorf("Frequency = %q, want %q", got.Frequency, domain.FrequencyEvenWeek)
	}
	if got.Priority != domain.DefaultPriority {
		t.Errorf("Priority = %d, want %d", got.Priority, domain.DefaultPriority)
	}
	if !got.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, updated)
	}
}

func TestClampPriority(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 3},
		{in: 1, want: 1},
		{in: 5, want: 5},
		{in: 9, want: 5},
		{in: -2, want: 1},
	}
	for _, tt := range tests {
		if got := ClampPriority(tt.in); got != tt.want {
			t.Errorf("ClampPriority(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMatches_LegacyPrecedence(t *testing.T) {
	route := Resolve(domain.RouteRecord{DayOfWeek: intPtr(3), DaysOfWeek: []int{1, 5}})

	monday := civil.Date{Year: 2024, Month: time.March, Day: 4}
	for i := 0; i < 7; i++ {
		d := monday.AddDays(i)
		want := i == 2
		if got := Matches(route, d); got != want {
			t.Errorf("Matches(%v) = %v, want %v", d, got, want)
		}
	}
}

func TestMatches_EmptyFailsClosed(t *testing.T) {
	route := domain.Route{OutletCode: "OUT-1"}

	monday := civil.Date{Year: 2024, Month: time.March, Day: 4}
	for i := 0; i < 7; i++ {
		if Matches(route, monday.AddDays(i)) {
			t.Fatalf("route with no days matched %v", monday.AddDays(i))
		}
	}
}

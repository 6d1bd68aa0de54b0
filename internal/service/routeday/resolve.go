package routeday

import (
	"slices"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/weekcycle"
)

const (
	minWeekday = 1
	maxWeekday = 7
)

// Resolve folds the persisted day representations of rec into a canonical
// route. Precedence: a single legacy DayOfWeek, then DaysOfWeek, then the
// legacy per-weekday flags. A record carrying none of them resolves to an
// empty day set and never matches.
func Resolve(rec domain.RouteRecord) domain.Route {
	return domain.Route{
		OutletCode:    rec.OutletCode,
		DaysOfWeek:    resolveDays(rec),
		OperatorEmail: domain.NormalizeEmail(rec.OperatorEmail),
		Frequency:     weekcycle.Normalize(rec.RawFrequency()),
		Priority:      ClampPriority(rec.Priority),
		UpdatedAt:     rec.UpdatedAt,
	}
}

// ClampPriority treats zero as unset and bounds everything else to the valid range.
func ClampPriority(p int) int {
	switch {
	case p == 0:
		return domain.DefaultPriority
	case p < domain.MinPriority:
		return domain.MinPriority
	case p > domain.MaxPriority:
		return domain.MaxPriority
	default:
		return p
	}
}

func resolveDays(rec domain.RouteRecord) []int {
	// Zero is the unset value of the legacy field.
	if rec.DayOfWeek != nil && *rec.DayOfWeek != 0 {
		if validWeekday(*rec.DayOfWeek) {
			return []int{*rec.DayOfWeek}
		}
		return []int{}
	}

	if len(rec.DaysOfWeek) > 0 {
		return canonicalDays(rec.DaysOfWeek)
	}

	if rec.Schedule != nil {
		return rec.Schedule.Days()
	}

	return []int{}
}

func canonicalDays(days []int) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		if validWeekday(d) && !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return out
}

func validWeekday(d int) bool {
	return d >= minWeekday && d <= maxWeekday
}

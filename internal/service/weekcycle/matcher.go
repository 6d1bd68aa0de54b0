package weekcycle

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

const cycleLength = 4

// ISOWeek returns the ISO-8601 week number of d (1..53).
func ISOWeek(d civil.Date) int {
	_, week := d.In(time.UTC).ISOWeek()
	return week
}

// Normalize maps a free-form frequency label onto a known code. Unrecognized
// input falls back to weekly.
func Normalize(raw string) domain.Frequency {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ",", ".")

	if s == "" {
		return domain.FrequencyWeekly
	}
	if f := domain.Frequency(s); f.IsValid() {
		return f
	}

	switch {
	case strings.Contains(s, "еж"):
		return domain.FrequencyWeekly
	case strings.Contains(s, "2"):
		return domain.FrequencyOddWeek
	case strings.Contains(s, "месяц"), strings.Contains(s, "4"):
		return domain.FrequencyCycle1
	default:
		return domain.FrequencyWeekly
	}
}

// Matches reports whether a route with frequency f is due in the given ISO week.
// f must already be normalized; any other code never matches.
func Matches(isoWeek int, f domain.Frequency) bool {
	switch f {
	case domain.FrequencyWeekly:
		return true
	case domain.FrequencyOddWeek:
		return isoWeek%2 == 1
	case domain.FrequencyEvenWeek:
		return isoWeek%2 == 0
	case domain.FrequencyCycle1:
		return cyclePosition(isoWeek) == 1
	case domain.FrequencyCycle2:
		return cyclePosition(isoWeek) == 2
	case domain.FrequencyCycle3:
		return cyclePosition(isoWeek) == 3
	case domain.FrequencyCycle4:
		return cyclePosition(isoWeek) == 4
	default:
		return false
	}
}

func MatchesDate(d civil.Date, f domain.Frequency) bool {
	return Matches(ISOWeek(d), f)
}

func cyclePosition(isoWeek int) int {
	return ((isoWeek-1)%cycleLength+cycleLength)%cycleLength + 1
}

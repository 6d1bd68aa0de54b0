package routeday

import (
	"slices"
	"time"

	"cloud.google.com/go/civil"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

// ISOWeekday returns the ISO weekday number of d, 1 for Monday through 7 for Sunday.
func ISOWeekday(d civil.Date) int {
	wd := d.In(time.UTC).Weekday()
	if wd == time.Sunday {
		return maxWeekday
	}
	return int(wd)
}

// Matches reports whether d falls on one of the route's canonical weekdays.
func Matches(route domain.Route, d civil.Date) bool {
	if len(route.DaysOfWeek) == 0 {
		return false
	}
	return slices.Contains(route.DaysOfWeek, ISOWeekday(d))
}

package domain

import (
	"time"
)

const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = 3
)

// Route is the canonical, resolved recurrence rule for one outlet.
type Route struct {
	OutletCode    string
	DaysOfWeek    []int
	OperatorEmail string
	Frequency     Frequency
	Priority      int
	UpdatedAt     time.Time
}

// LegacySchedule is the per-weekday flag map older route records carry.
type LegacySchedule struct {
	Mon bool `json:"mon"`
	Tue bool `json:"tue"`
	Wed bool `json:"wed"`
	Thu bool `json:"thu"`
	Fri bool `json:"fri"`
	Sat bool `json:"sat"`
	Sun bool `json:"sun"`
}

// Days returns the ISO weekday numbers whose flag is set, ascending.
func (s *LegacySchedule) Days() []int {
	if s == nil {
		return nil
	}

	flags := [7]bool{s.Mon, s.Tue, s.Wed, s.Thu, s.Fri, s.Sat, s.Sun}
	days := make([]int, 0, len(flags))
	for i, set := range flags {
		if set {
			days = append(days, i+1)
		}
	}
	return days
}

// RouteRecord is a route as persisted, including the legacy day representations.
type RouteRecord struct {
	OutletCode    string          `json:"outletCode"`
	DayOfWeek     *int            `json:"dayOfWeek,omitempty"`
	DaysOfWeek    []int           `json:"daysOfWeek,omitempty"`
	Schedule      *LegacySchedule `json:"schedule,omitempty"`
	OperatorEmail string          `json:"operatorEmail"`
	Frequency     string          `json:"frequency,omitempty"`
	WeekCode      string          `json:"weekCode,omitempty"`
	Priority      int             `json:"priority,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// RawFrequency returns the persisted frequency, falling back to the legacy week code.
func (r *RouteRecord) RawFrequency() string {
	if r.Frequency != "" {
		return r.Frequency
	}
	return r.WeekCode
}

// IsLegacy reports whether the record still carries a pre-migration shape.
func (r *RouteRecord) IsLegacy() bool {
	return r.DayOfWeek != nil || r.Schedule != nil || r.WeekCode != ""
}

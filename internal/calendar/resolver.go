package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

var civilDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Resolver maps instants to civil dates in one IANA zone.
type Resolver struct {
	name string
	loc  *time.Location
	now  func() time.Time
}

type Option func(*Resolver)

// WithClock replaces the wall clock used by Today.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// hostZoneName is the name time.LoadLocation maps to the machine's own zone.
const hostZoneName = "Local"

// NewResolver loads the named zone. An empty name selects DefaultTimeZone.
// The host zone is rejected so dates never follow the machine's clock settings.
func NewResolver(name string, opts ...Option) (*Resolver, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTimeZone
	}
	if name == hostZoneName {
		return nil, fmt.Errorf("%w: %s: host zone is not allowed", domain.ErrInvalidTimeZone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidTimeZone, name, err)
	}

	r := &Resolver{
		name: name,
		loc:  loc,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Resolver) Name() string {
	return r.name
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

// DateOf returns the calendar date that t falls on in the resolver's zone.
func (r *Resolver) DateOf(t time.Time) civil.Date {
	return civil.DateOf(t.In(r.loc))
}

func (r *Resolver) Today() civil.Date {
	return r.DateOf(r.now())
}

// Midnight returns the instant the given date begins in the resolver's zone.
// On days where midnight is skipped by a DST jump, the first instant of the
// day is returned.
func (r *Resolver) Midnight(d civil.Date) time.Time {
	return d.In(r.loc)
}

// ParseDate parses a strict YYYY-MM-DD string. Surrounding whitespace is ignored.
func ParseDate(s string) (civil.Date, bool) {
	s = strings.TrimSpace(s)
	if !civilDatePattern.MatchString(s) {
		return civil.Date{}, false
	}

	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, false
	}

	return d, true
}

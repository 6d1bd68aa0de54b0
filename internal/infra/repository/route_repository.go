package repository

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

type routeRecord struct {
	OutletCode    string                 `json:"outletCode"`
	DayOfWeek     *int                   `json:"dayOfWeek,omitempty"`
	DaysOfWeek    []int                  `json:"daysOfWeek,omitempty"`
	Schedule      *domain.LegacySchedule `json:"schedule,omitempty"`
	OperatorEmail string                 `json:"operatorEmail"`
	Frequency     string                 `json:"frequency,omitempty"`
	WeekCode      string                 `json:"weekCode,omitempty"`
	Priority      int                    `json:"priority,omitempty"`
	UpdatedAt     timestamp              `json:"updatedAt"`
}

type routeRepository struct {
	client *redis.Client
}

func NewRouteRepository(client *redis.Client) domain.RouteRepository {
	return &routeRepository{
		client: client,
	}
}

// GetAll returns every stored route ordered by outlet code. Records that fail
// to decode are logged and left out.
func (r *routeRepository) GetAll(ctx context.Context) ([]domain.RouteRecord, error) {
	raw, err := r.client.HGetAll(ctx, routesKey).Result()
	if err != nil {
		return nil, err
	}

	routes := make([]domain.RouteRecord, 0, len(raw))
	for code, data := range raw {
		var record routeRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			slog.WarnContext(ctx, "skipping undecodable route record",
				slog.String("outlet_code", code),
				slog.String("error", err.Error()),
			)
			continue
		}
		if record.OutletCode == "" {
			record.OutletCode = code
		}
		routes = append(routes, record.toDomain())
	}

	slices.SortFunc(routes, func(a, b domain.RouteRecord) int {
		return strings.Compare(a.OutletCode, b.OutletCode)
	})

	return routes, nil
}

func (r *routeRepository) Put(ctx context.Context, route domain.RouteRecord) error {
	if route.OutletCode == "" {
		return ErrInvalidRouteData
	}

	data, err := json.Marshal(newRouteRecord(route))
	if err != nil {
		return ErrInvalidRouteData
	}

	return r.client.HSet(ctx, routesKey, route.OutletCode, data).Err()
}

func newRouteRecord(route domain.RouteRecord) routeRecord {
	updatedAt := route.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	return routeRecord{
		OutletCode:    route.OutletCode,
		DayOfWeek:     route.DayOfWeek,
		DaysOfWeek:    route.DaysOfWeek,
		Schedule:      route.Schedule,
		OperatorEmail: route.OperatorEmail,
		Frequency:     route.Frequency,
		WeekCode:      route.WeekCode,
		Priority:      route.Priority,
		UpdatedAt:     timestamp(updatedAt),
	}
}

func (rec routeRecord) toDomain() domain.RouteRecord {
	return domain.RouteRecord{
		OutletCode:    rec.OutletCode,
		DayOfWeek:     rec.DayOfWeek,
		DaysOfWeek:    rec.DaysOfWeek,
		Schedule:      rec.Schedule,
		OperatorEmail: rec.OperatorEmail,
		Frequency:     rec.Frequency,
		WeekCode:      rec.WeekCode,
		Priority:      rec.Priority,
		UpdatedAt:     time.Time(rec.UpdatedAt),
	}
}

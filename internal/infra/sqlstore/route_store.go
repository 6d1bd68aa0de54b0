package sqlstore

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

type routeStore struct {
	db *gorm.DB
}

func NewRouteStore(db *gorm.DB) domain.RouteRepository {
	return &routeStore{db: db}
}

func (s *routeStore) GetAll(ctx context.Context) ([]domain.RouteRecord, error) {
	var models []routeModel
	if err := s.db.WithContext(ctx).Order("outlet_code").Find(&models).Error; err != nil {
		return nil, err
	}

	routes := make([]domain.RouteRecord, 0, len(models))
	for _, m := range models {
		routes = append(routes, m.toDomain())
	}
	return routes, nil
}

func (s *routeStore) Put(ctx context.Context, route domain.RouteRecord) error {
	if route.OutletCode == "" {
		return ErrInvalidRouteData
	}

	model := newRouteModel(route)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&model).Error
}

func newRouteModel(route domain.RouteRecord) routeModel {
	updatedAt := route.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	var scheduleDays IntArray
	if route.Schedule != nil {
		scheduleDays = IntArray(route.Schedule.Days())
	}

	var daysOfWeek IntArray
	if route.DaysOfWeek != nil {
		daysOfWeek = IntArray(route.DaysOfWeek)
	}

	return routeModel{
		OutletCode:    route.OutletCode,
		DayOfWeek:     route.DayOfWeek,
		DaysOfWeek:    daysOfWeek,
		ScheduleDays:  scheduleDays,
		OperatorEmail: route.OperatorEmail,
		Frequency:     route.Frequency,
		WeekCode:      route.WeekCode,
		Priority:      route.Priority,
		UpdatedAt:     updatedAt,
	}
}

func (m routeModel) toDomain() domain.RouteRecord {
	var daysOfWeek []int
	if m.DaysOfWeek != nil {
		daysOfWeek = []int(m.DaysOfWeek)
	}

	return domain.RouteRecord{
		OutletCode:    m.OutletCode,
		DayOfWeek:     m.DayOfWeek,
		DaysOfWeek:    daysOfWeek,
		Schedule:      scheduleFromDays(m.ScheduleDays),
		OperatorEmail: m.OperatorEmail,
		Frequency:     m.Frequency,
		WeekCode:      m.WeekCode,
		Priority:      m.Priority,
		UpdatedAt:     m.UpdatedAt,
	}
}

// scheduleFromDays rebuilds the legacy flag map from the stored weekday list.
// A NULL column means the route never had a schedule.
func scheduleFromDays(days IntArray) *domain.LegacySchedule {
	if days == nil {
		return nil
	}

	var s domain.LegacySchedule
	flags := [7]*bool{&s.Mon, &s.Tue, &s.Wed, &s.Thu, &s.Fri, &s.Sat, &s.Sun}
	for _, d := range days {
		if d >= 1 && d <= 7 {
			*flags[d-1] = true
		}
	}
	return &s
}

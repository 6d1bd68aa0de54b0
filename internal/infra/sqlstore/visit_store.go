package sqlstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

type visitStore struct {
	db *gorm.DB
}

func NewVisitStore(db *gorm.DB) domain.VisitRepository {
	return &visitStore{db: db}
}

func (s *visitStore) GetAll(ctx context.Context) ([]domain.PlannedVisit, error) {
	var models []visitModel
	if err := s.db.WithContext(ctx).Order("planned_date, id").Find(&models).Error; err != nil {
		return nil, err
	}

	visits := make([]domain.PlannedVisit, 0, len(models))
	for _, m := range models {
		visits = append(visits, m.toDomain())
	}
	return visits, nil
}

func (s *visitStore) Put(ctx context.Context, visit *domain.PlannedVisit) error {
	if visit == nil || visit.ID == "" {
		return ErrInvalidVisitData
	}

	m := newVisitModel(visit)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&m).Error
}

// Delete removes the visit. Deleting a visit that does not exist is not an error.
func (s *visitStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&visitModel{}).Error
}

func (s *visitStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&visitModel{}).Error
}

func newVisitModel(v *domain.PlannedVisit) visitModel {
	visitType := v.Type
	if visitType == "" {
		visitType = domain.VisitTypeManual
	}

	return visitModel{
		ID:            v.ID,
		PlannedDate:   v.PlannedDate,
		PlannedAt:     v.PlannedAt,
		OutletCode:    v.OutletCode,
		OutletName:    v.OutletName,
		INN:           v.INN,
		Address:       v.Address,
		PaymentTerms:  v.PaymentTerms,
		Direction:     v.Direction,
		CreditLimit:   v.CreditLimit,
		Debt:          v.Debt,
		Status:        v.Status.String(),
		Type:          string(visitType),
		OperatorEmail: v.OperatorEmail,
		Priority:      v.Priority,
		CreatedAt:     v.CreatedAt,
	}
}

func (m visitModel) toDomain() domain.PlannedVisit {
	return domain.PlannedVisit{
		ID:            m.ID,
		PlannedDate:   m.PlannedDate,
		PlannedAt:     m.PlannedAt,
		OutletCode:    m.OutletCode,
		OutletName:    m.OutletName,
		INN:           m.INN,
		Address:       m.Address,
		PaymentTerms:  m.PaymentTerms,
		Direction:     m.Direction,
		CreditLimit:   m.CreditLimit,
		Debt:          m.Debt,
		Status:        domain.ParseVisitStatus(m.Status),
		Type:          domain.VisitType(m.Type),
		OperatorEmail: m.OperatorEmail,
		Priority:      m.Priority,
		CreatedAt:     m.CreatedAt,
	}
}

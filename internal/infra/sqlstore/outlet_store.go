package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

type outletStore struct {
	db *gorm.DB
}

func NewOutletStore(db *gorm.DB) domain.OutletRepository {
	return &outletStore{db: db}
}

func (s *outletStore) GetByCode(ctx context.Context, code string) (*domain.Outlet, error) {
	var m outletModel
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOutletNotFound
		}
		return nil, err
	}

	return &domain.Outlet{
		Code:         m.Code,
		Name:         m.Name,
		City:         m.City,
		INN:          m.INN,
		Address:      m.Address,
		PaymentTerms: m.PaymentTerms,
		Direction:    m.Direction,
		CreditLimit:  m.CreditLimit,
		Debt:         m.Debt,
	}, nil
}

func (s *outletStore) Put(ctx context.Context, outlet *domain.Outlet) error {
	if outlet == nil || outlet.Code == "" {
		return ErrInvalidOutletData
	}

	m := outletModel{
		Code:         outlet.Code,
		Name:         outlet.Name,
		City:         outlet.City,
		INN:          outlet.INN,
		Address:      outlet.Address,
		PaymentTerms: outlet.PaymentTerms,
		Direction:    outlet.Direction,
		CreditLimit:  outlet.CreditLimit,
		Debt:         outlet.Debt,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&m).Error
}

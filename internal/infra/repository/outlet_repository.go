package repository

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

type outletRecord struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	City         string `json:"city,omitempty"`
	INN          string `json:"inn,omitempty"`
	Address      string `json:"address,omitempty"`
	PaymentTerms string `json:"paymentTerms,omitempty"`
	Direction    string `json:"direction,omitempty"`
	CreditLimit  amount `json:"creditLimit"`
	Debt         amount `json:"debt"`
}

type outletRepository struct {
	client *redis.Client
}

func NewOutletRepository(client *redis.Client) domain.OutletRepository {
	return &outletRepository{
		client: client,
	}
}

func (r *outletRepository) GetByCode(ctx context.Context, code string) (*domain.Outlet, error) {
	data, err := r.client.HGet(ctx, outletsKey, code).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrOutletNotFound
		}
		return nil, err
	}

	var record outletRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidOutletData
	}
	if record.Code == "" {
		record.Code = code
	}

	return &domain.Outlet{
		Code:         record.Code,
		Name:         record.Name,
		City:         record.City,
		INN:          record.INN,
		Address:      record.Address,
		PaymentTerms: record.PaymentTerms,
		Direction:    record.Direction,
		CreditLimit:  decimal.Decimal(record.CreditLimit),
		Debt:         decimal.Decimal(record.Debt),
	}, nil
}

func (r *outletRepository) Put(ctx context.Context, outlet *domain.Outlet) error {
	if outlet == nil || outlet.Code == "" {
		return ErrInvalidOutletData
	}

	data, err := json.Marshal(outletRecord{
		Code:         outlet.Code,
		Name:         outlet.Name,
		City:         outlet.City,
		INN:          outlet.INN,
		Address:      outlet.Address,
		PaymentTerms: outlet.PaymentTerms,
		Direction:    outlet.Direction,
		CreditLimit:  amount(outlet.CreditLimit),
		Debt:         amount(outlet.Debt),
	})
	if err != nil {
		return ErrInvalidOutletData
	}

	return r.client.HSet(ctx, outletsKey, outlet.Code, data).Err()
}

package domain

import "github.com/shopspring/decimal"

type Outlet struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	City         string          `json:"city,omitempty"`
	INN          string          `json:"inn,omitempty"`
	Address      string          `json:"address,omitempty"`
	PaymentTerms string          `json:"paymentTerms,omitempty"`
	Direction    string          `json:"direction,omitempty"`
	CreditLimit  decimal.Decimal `json:"creditLimit"`
	Debt         decimal.Decimal `json:"debt"`
}

package session

import (
	"context"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

const systemEmail = "system@bigtelesales.local"

type operatorKey struct{}

func WithOperator(ctx context.Context, operator *domain.Operator) context.Context {
	return context.WithValue(ctx, operatorKey{}, operator)
}

func OperatorFromContext(ctx context.Context) *domain.Operator {
	operator, _ := ctx.Value(operatorKey{}).(*domain.Operator)
	return operator
}

// SystemOperator is the admin identity background jobs plan under.
func SystemOperator() *domain.Operator {
	return &domain.Operator{Email: systemEmail, Role: domain.RoleAdmin}
}

// ContextProvider resolves the current operator from the request context.
type ContextProvider struct{}

func NewContextProvider() *ContextProvider {
	return &ContextProvider{}
}

func (p *ContextProvider) CurrentOperator(ctx context.Context) *domain.Operator {
	return OperatorFromContext(ctx)
}

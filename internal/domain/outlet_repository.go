package domain

import "context"

//go:generate mockgen -source=outlet_repository.go -destination=outlet_repository_mock.go -package=domain

type OutletRepository interface {
	// GetByCode returns ErrOutletNotFound when no outlet is stored under code.
	GetByCode(ctx context.Context, code string) (*Outlet, error)
	Put(ctx context.Context, outlet *Outlet) error
}

package domain

import "context"

//go:generate mockgen -source=route_repository.go -destination=route_repository_mock.go -package=domain

type RouteRepository interface {
	GetAll(ctx context.Context) ([]RouteRecord, error)
	Put(ctx context.Context, record RouteRecord) error
}

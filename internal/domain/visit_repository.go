package domain

import "context"

//go:generate mockgen -source=visit_repository.go -destination=visit_repository_mock.go -package=domain

type VisitRepository interface {
	GetAll(ctx context.Context) ([]PlannedVisit, error)
	Put(ctx context.Context, visit *PlannedVisit) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

package repository

import "errors"

var (
	ErrInvalidRouteData  = errors.New("invalid route data")
	ErrInvalidOutletData = errors.New("invalid outlet data")
	ErrInvalidVisitData  = errors.New("invalid visit data")
)

package domain

import "errors"

var (
	ErrOutletNotFound  = errors.New("outlet not found")
	ErrVisitNotFound   = errors.New("visit not found")
	ErrSettingNotFound = errors.New("setting not found")
	ErrInvalidTimeZone = errors.New("invalid time zone")
	ErrUnauthenticated = errors.New("no operator in context")
	ErrForbidden       = errors.New("operation requires admin role")
)

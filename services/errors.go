package services

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("username already taken")
	ErrInvalidLimit = errors.New("upper_limit must not be negative")
)

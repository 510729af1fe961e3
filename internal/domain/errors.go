package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource conflict")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownSource     = errors.New("unknown data source")
	ErrDriverUnavailable = errors.New("driver not configured")
)

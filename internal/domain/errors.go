package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPeriod   = errors.New("invalid report period")
	ErrMalformedRecord = errors.New("malformed record")
)

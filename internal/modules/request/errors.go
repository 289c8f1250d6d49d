package request

import "errors"

var (
	ErrCarNotFound     = errors.New("car not found")
	ErrCarSold         = errors.New("car already sold")
	ErrRequestNotFound = errors.New("purchase request not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrValidation      = errors.New("validation error")
)

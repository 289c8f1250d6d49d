package favorite

import "errors"

var (
	ErrAlreadyFavorite = errors.New("car already in favorites")
	ErrCarNotFound     = errors.New("car not found")
)

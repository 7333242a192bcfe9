package country

import "errors"

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrDuplicateCode   = errors.New("country code already exists")
	ErrInvalidCode     = errors.New("country code must be two letters")
	ErrInvalidName     = errors.New("country name is required")
)

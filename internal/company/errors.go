package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCountryNotFound = errors.New("country does not exist")
	ErrDuplicateName   = errors.New("company name already exists")
	ErrInvalidName     = errors.New("company name is required")
)

package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCompanyNotFound = errors.New("company does not exist")
	ErrInvalidTitle    = errors.New("product title is required")
	ErrInvalidPrice    = errors.New("product price must not be negative")
	ErrInvalidQuantity = errors.New("product quantity must not be negative")
)

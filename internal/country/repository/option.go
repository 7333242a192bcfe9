package repository

import (
	"github.com/google/uuid"

	"catalog-api/internal/country"
)

type CreateCountryOptions struct {
	Code   string
	Name   string
	Region country.Region
}

// GetOneCountryOptions filters are ANDed; empty fields are ignored.
type GetOneCountryOptions struct {
	ID   uuid.UUID
	Code string
}

type UpdateCountryOptions struct {
	ID     uuid.UUID
	Code   string
	Name   string
	Region country.Region
}

package repository

import (
	"time"

	"github.com/google/uuid"

	"catalog-api/internal/company"
)

type CreateCompanyOptions struct {
	Name        string
	Description *string
	CountryID   uuid.UUID
	Status      company.Status
	FoundedAt   *time.Time
}

// GetOneCompanyOptions filters are ANDed; empty fields are ignored.
type GetOneCompanyOptions struct {
	ID   uuid.UUID
	Name string
}

// UpdateCompanyOptions overwrites every mutable column.
type UpdateCompanyOptions struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CountryID   uuid.UUID
	Status      company.Status
	FoundedAt   *time.Time
}

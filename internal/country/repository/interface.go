package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog-api/internal/country"
	"catalog-api/pkg/query"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateCountry(ctx context.Context, opt CreateCountryOptions) (country.Country, error)
	// GetOneCountry returns a zero Country (uuid.Nil ID) when nothing matches.
	GetOneCountry(ctx context.Context, opt GetOneCountryOptions) (country.Country, error)
	// ListCountries has the shape of query.Source.Fetch.
	ListCountries(ctx context.Context, q query.Query[country.Country]) ([]country.Country, int64, error)
	UpdateCountry(ctx context.Context, opt UpdateCountryOptions) (country.Country, error)
	DeleteCountry(ctx context.Context, id uuid.UUID) error
}

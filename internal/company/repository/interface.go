package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog-api/internal/company"
	"catalog-api/pkg/query"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateCompany(ctx context.Context, opt CreateCompanyOptions) (company.Company, error)
	// GetOneCompany returns a zero Company (uuid.Nil ID) when nothing matches.
	GetOneCompany(ctx context.Context, opt GetOneCompanyOptions) (company.Company, error)
	ListCompanies(ctx context.Context, q query.Query[company.Company]) ([]company.Company, int64, error)
	UpdateCompany(ctx context.Context, opt UpdateCompanyOptions) (company.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

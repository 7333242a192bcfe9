package usecase

import (
	"context"

	"github.com/google/uuid"

	"catalog-api/internal/company"
	repo "catalog-api/internal/company/repository"
)

// Create registers a company in an existing country under a unique name.
func (uc *implUseCase) Create(ctx context.Context, input company.CreateInput) (company.Company, error) {
	name, err := cleanName(input.Name)
	if err != nil {
		return company.Company{}, err
	}
	if err := uc.ensureCountry(ctx, input.CountryID); err != nil {
		return company.Company{}, err
	}
	if err := uc.ensureNameFree(ctx, name, uuid.Nil); err != nil {
		return company.Company{}, err
	}

	c, err := uc.repo.CreateCompany(ctx, repo.CreateCompanyOptions{
		Name:        name,
		Description: input.Description,
		CountryID:   input.CountryID,
		Status:      input.Status,
		FoundedAt:   input.FoundedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCompany: %v", err)
		return company.Company{}, err
	}
	return c, nil
}

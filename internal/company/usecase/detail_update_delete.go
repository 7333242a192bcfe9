package usecase

import (
	"context"

	"github.com/google/uuid"

	"catalog-api/internal/company"
	repo "catalog-api/internal/company/repository"
)

// Detail retrieves a single Company by ID.
func (uc *implUseCase) Detail(ctx context.Context, id uuid.UUID) (company.Company, error) {
	c, err := uc.repo.GetOneCompany(ctx, repo.GetOneCompanyOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneCompany: %v", err)
		return company.Company{}, err
	}
	if c.ID == uuid.Nil {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

// Update applies the provided fields only.
func (uc *implUseCase) Update(ctx context.Context, input company.UpdateInput) (company.Company, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return company.Company{}, err
	}

	opt := repo.UpdateCompanyOptions{
		ID:          existing.ID,
		Name:        existing.Name,
		Description: existing.Description,
		CountryID:   existing.CountryID,
		Status:      existing.Status,
		FoundedAt:   existing.FoundedAt,
	}
	if input.Name != nil {
		if opt.Name, err = cleanName(*input.Name); err != nil {
			return company.Company{}, err
		}
		if err := uc.ensureNameFree(ctx, opt.Name, existing.ID); err != nil {
			return company.Company{}, err
		}
	}
	switch {
	case input.ClearDescription:
		opt.Description = nil
	case input.Description != nil:
		opt.Description = input.Description
	}
	if input.CountryID != nil && *input.CountryID != existing.CountryID {
		if err := uc.ensureCountry(ctx, *input.CountryID); err != nil {
			return company.Company{}, err
		}
		opt.CountryID = *input.CountryID
	}
	if input.Status != nil {
		opt.Status = *input.Status
	}
	switch {
	case input.ClearFoundedAt:
		opt.FoundedAt = nil
	case input.FoundedAt != nil:
		opt.FoundedAt = input.FoundedAt
	}

	c, err := uc.repo.UpdateCompany(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCompany: %v", err)
		return company.Company{}, err
	}
	if c.ID == uuid.Nil {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

// Delete removes a Company and, through the foreign key, its products.
func (uc *implUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteCompany(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCompany: %v", err)
		return err
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"catalog-api/internal/company"
	repo "catalog-api/internal/company/repository"
	"catalog-api/internal/country"
)

// ensureCountry maps a missing country onto the company domain error.
func (uc *implUseCase) ensureCountry(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.countryUC.Detail(ctx, id); err != nil {
		if errors.Is(err, country.ErrCountryNotFound) {
			return company.ErrCountryNotFound
		}
		uc.l.Errorf(ctx, "uc.ensureCountry: %v", err)
		return err
	}
	return nil
}

// ensureNameFree fails when another company already uses name.
func (uc *implUseCase) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	other, err := uc.repo.GetOneCompany(ctx, repo.GetOneCompanyOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureNameFree GetOneCompany: %v", err)
		return err
	}
	if other.ID != uuid.Nil && other.ID != self {
		return company.ErrDuplicateName
	}
	return nil
}

func cleanName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", company.ErrInvalidName
	}
	return s, nil
}

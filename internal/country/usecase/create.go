package usecase

import (
	"context"
	"strings"

	"catalog-api/internal/country"
	repo "catalog-api/internal/country/repository"
)

// Create registers a new country after checking the code is free.
func (uc *implUseCase) Create(ctx context.Context, input country.CreateInput) (country.Country, error) {
	code, err := normalizeCode(input.Code)
	if err != nil {
		return country.Country{}, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return country.Country{}, country.ErrInvalidName
	}

	existing, err := uc.repo.GetOneCountry(ctx, repo.GetOneCountryOptions{Code: code})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneCountry: %v", err)
		return country.Country{}, err
	}
	if existing.Code != "" {
		return country.Country{}, country.ErrDuplicateCode
	}

	c, err := uc.repo.CreateCountry(ctx, repo.CreateCountryOptions{
		Code:   code,
		Name:   name,
		Region: input.Region,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCountry: %v", err)
		return country.Country{}, err
	}
	return c, nil
}

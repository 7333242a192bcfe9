package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"catalog-api/internal/country"
	repo "catalog-api/internal/country/repository"
)

// Detail retrieves a single Country by ID.
func (uc *implUseCase) Detail(ctx context.Context, id uuid.UUID) (country.Country, error) {
	c, err := uc.repo.GetOneCountry(ctx, repo.GetOneCountryOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneCountry: %v", err)
		return country.Country{}, err
	}
	if c.ID == uuid.Nil {
		return country.Country{}, country.ErrCountryNotFound
	}
	return c, nil
}

// Update applies the provided fields only.
func (uc *implUseCase) Update(ctx context.Context, input country.UpdateInput) (country.Country, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return country.Country{}, err
	}

	opt := repo.UpdateCountryOptions{
		ID:     existing.ID,
		Code:   existing.Code,
		Name:   existing.Name,
		Region: existing.Region,
	}
	if input.Name != nil {
		if opt.Name = strings.TrimSpace(*input.Name); opt.Name == "" {
			return country.Country{}, country.ErrInvalidName
		}
	}
	if input.Region != nil {
		opt.Region = *input.Region
	}
	if input.Code != nil {
		code, err := normalizeCode(*input.Code)
		if err != nil {
			return country.Country{}, err
		}
		if code != existing.Code {
			other, err := uc.repo.GetOneCountry(ctx, repo.GetOneCountryOptions{Code: code})
			if err != nil {
				uc.l.Errorf(ctx, "uc.Update GetOneCountry: %v", err)
				return country.Country{}, err
			}
			if other.ID != uuid.Nil {
				return country.Country{}, country.ErrDuplicateCode
			}
		}
		opt.Code = code
	}

	c, err := uc.repo.UpdateCountry(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCountry: %v", err)
		return country.Country{}, err
	}
	if c.ID == uuid.Nil {
		return country.Country{}, country.ErrCountryNotFound
	}
	return c, nil
}

// Delete removes a Country by ID.
func (uc *implUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteCountry(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCountry: %v", err)
		return err
	}
	return nil
}

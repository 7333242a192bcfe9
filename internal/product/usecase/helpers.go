package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"catalog-api/internal/company"
	"catalog-api/internal/product"
)

func (uc *implUseCase) ensureCompany(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.companyUC.Detail(ctx, id); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return product.ErrCompanyNotFound
		}
		uc.l.Errorf(ctx, "uc.ensureCompany: %v", err)
		return err
	}
	return nil
}

func cleanTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", product.ErrInvalidTitle
	}
	return s, nil
}

func validateStock(price float64, quantity int) error {
	if price < 0 {
		return product.ErrInvalidPrice
	}
	if quantity < 0 {
		return product.ErrInvalidQuantity
	}
	return nil
}

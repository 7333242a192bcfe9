package usecase

import (
	"context"

	"github.com/google/uuid"

	"catalog-api/internal/product"
	repo "catalog-api/internal/product/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, id uuid.UUID) (product.Product, error) {
	p, err := uc.repo.GetOneProduct(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneProduct: %v", err)
		return product.Product{}, err
	}
	if p.ID == uuid.Nil {
		return product.Product{}, product.ErrProductNotFound
	}
	return p, nil
}

// Update applies the provided fields only.
func (uc *implUseCase) Update(ctx context.Context, input product.UpdateInput) (product.Product, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return product.Product{}, err
	}

	opt := repo.UpdateProductOptions{
		ID:          existing.ID,
		CompanyID:   existing.CompanyID,
		Title:       existing.Title,
		Description: existing.Description,
		Price:       existing.Price,
		Quantity:    existing.Quantity,
		Available:   existing.Available,
		Category:    existing.Category,
	}
	if input.Title != nil {
		if opt.Title, err = cleanTitle(*input.Title); err != nil {
			return product.Product{}, err
		}
	}
	switch {
	case input.ClearDescription:
		opt.Description = nil
	case input.Description != nil:
		opt.Description = input.Description
	}
	if input.Price != nil {
		opt.Price = *input.Price
	}
	if input.Quantity != nil {
		opt.Quantity = *input.Quantity
	}
	if err := validateStock(opt.Price, opt.Quantity); err != nil {
		return product.Product{}, err
	}
	if input.Available != nil {
		opt.Available = *input.Available
	}
	if input.Category != nil {
		opt.Category = *input.Category
	}
	if input.CompanyID != nil && *input.CompanyID != existing.CompanyID {
		if err := uc.ensureCompany(ctx, *input.CompanyID); err != nil {
			return product.Product{}, err
		}
		opt.CompanyID = *input.CompanyID
	}

	p, err := uc.repo.UpdateProduct(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateProduct: %v", err)
		return product.Product{}, err
	}
	if p.ID == uuid.Nil {
		return product.Product{}, product.ErrProductNotFound
	}
	return p, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteProduct(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteProduct: %v", err)
		return err
	}
	return nil
}

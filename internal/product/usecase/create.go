package usecase

import (
	"context"

	"catalog-api/internal/product"
	repo "catalog-api/internal/product/repository"
)

// Create adds a product to an existing company.
func (uc *implUseCase) Create(ctx context.Context, input product.CreateInput) (product.Product, error) {
	title, err := cleanTitle(input.Title)
	if err != nil {
		return product.Product{}, err
	}
	if err := validateStock(input.Price, input.Quantity); err != nil {
		return product.Product{}, err
	}
	if err := uc.ensureCompany(ctx, input.CompanyID); err != nil {
		return product.Product{}, err
	}

	p, err := uc.repo.CreateProduct(ctx, repo.CreateProductOptions{
		CompanyID:   input.CompanyID,
		Title:       title,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Available:   input.Available,
		Category:    input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProduct: %v", err)
		return product.Product{}, err
	}
	return p, nil
}

package repository

import (
	"github.com/google/uuid"

	"catalog-api/internal/product"
)

type CreateProductOptions struct {
	CompanyID   uuid.UUID
	Title       string
	Description *string
	Price       float64
	Quantity    int
	Available   bool
	Category    product.Category
}

type UpdateProductOptions struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Title       string
	Description *string
	Price       float64
	Quantity    int
	Available   bool
	Category    product.Category
}

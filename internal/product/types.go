package product

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"catalog-api/pkg/query"
)

// Category groups products for browsing. The zero value is CategoryOther.
type Category int

const (
	CategoryOther Category = iota
	CategoryElectronics
	CategoryApparel
	CategoryFood
	CategoryBooks
)

var categoryNames = map[string]Category{
	"other":       CategoryOther,
	"electronics": CategoryElectronics,
	"apparel":     CategoryApparel,
	"food":        CategoryFood,
	"books":       CategoryBooks,
}

var categoryLabels = [...]string{"other", "electronics", "apparel", "food", "books"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryLabels) {
		return categoryLabels[CategoryOther]
	}
	return categoryLabels[c]
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	c, ok := categoryNames[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

// ExpandCompany is the expand key that loads the owning company.
const ExpandCompany = "company"

// --- Product Domain Model ---

type Product struct {
	ID          uuid.UUID `db:"id"`
	CompanyID   uuid.UUID `db:"company_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	Quantity    int       `db:"quantity"`
	Available   bool      `db:"available"`
	Category    Category  `db:"category"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	// Company is only populated when the caller asked for it.
	Company *CompanySummary `db:"-"`
}

// CompanySummary is the slice of a company embedded in expanded products.
type CompanySummary struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

// --- UseCase Inputs ---

type CreateInput struct {
	CompanyID   uuid.UUID
	Title       string
	Description *string
	Price       float64
	Quantity    int
	Available   bool
	Category    Category
}

type ListInput struct {
	Params query.Params
}

type UpdateInput struct {
	ID               uuid.UUID
	CompanyID        *uuid.UUID
	Title            *string
	Description      *string
	ClearDescription bool
	Price            *float64
	Quantity         *int
	Available        *bool
	Category         *Category
}

// --- UseCase Outputs ---

type ListOutput struct {
	Page query.Page[Product]
}

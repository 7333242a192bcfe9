package product

import (
	"time"

	"github.com/google/uuid"

	"catalog-api/pkg/query"
)

const DefaultSort = "title"

func NewFieldMap() *query.FieldMap[Product] {
	return query.MustFieldMap(
		query.GUID("id", func(p Product) uuid.UUID { return p.ID }),
		query.GUID("companyId", func(p Product) uuid.UUID { return p.CompanyID }).WithColumn("company_id"),
		query.String("title", func(p Product) string { return p.Title }),
		query.NullableString("description", func(p Product) *string { return p.Description }),
		query.Float("price", func(p Product) float64 { return p.Price }),
		query.Int("quantity", func(p Product) int { return p.Quantity }),
		query.Bool("available", func(p Product) bool { return p.Available }),
		query.Enum("category", func(p Product) Category { return p.Category }, categoryNames),
		query.Time("createdAt", func(p Product) time.Time { return p.CreatedAt }).WithColumn("created_at"),
		query.Time("updatedAt", func(p Product) time.Time { return p.UpdatedAt }).WithColumn("updated_at"),
	)
}

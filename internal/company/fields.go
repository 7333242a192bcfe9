package company

import (
	"time"

	"github.com/google/uuid"

	"catalog-api/pkg/query"
)

const DefaultSort = "name"

// NewFieldMap lists the filterable and sortable company fields.
func NewFieldMap() *query.FieldMap[Company] {
	return query.MustFieldMap(
		query.GUID("id", func(c Company) uuid.UUID { return c.ID }),
		query.String("name", func(c Company) string { return c.Name }),
		query.NullableString("description", func(c Company) *string { return c.Description }),
		query.GUID("countryId", func(c Company) uuid.UUID { return c.CountryID }).WithColumn("country_id"),
		query.Enum("status", func(c Company) Status { return c.Status }, statusNames),
		query.NullableTime("foundedAt", func(c Company) *time.Time { return c.FoundedAt }).WithColumn("founded_at"),
		query.Time("createdAt", func(c Company) time.Time { return c.CreatedAt }).WithColumn("created_at"),
		query.Time("updatedAt", func(c Company) time.Time { return c.UpdatedAt }).WithColumn("updated_at"),
	)
}

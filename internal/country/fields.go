package country

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"catalog-api/pkg/query"
)

const DefaultSort = "name"

// NewFieldMap lists the filterable and sortable country fields.
func NewFieldMap() *query.FieldMap[Country] {
	return query.MustFieldMap(
		query.GUID("id", func(c Country) uuid.UUID { return c.ID }),
		query.String("code", func(c Country) string { return c.Code }),
		query.String("name", func(c Country) string { return c.Name }),
		query.Enum("region", func(c Country) Region { return c.Region }, regionNames),
		query.Time("createdAt", func(c Country) time.Time { return c.CreatedAt }).WithColumn("created_at"),
	)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

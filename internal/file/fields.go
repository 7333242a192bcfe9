package file

import (
	"time"

	"github.com/google/uuid"

	"catalog-api/pkg/query"
)

const DefaultSort = "name"

// NewFieldMap exposes every metadata column except the object key.
func NewFieldMap() *query.FieldMap[File] {
	return query.MustFieldMap(
		query.GUID("id", func(f File) uuid.UUID { return f.ID }),
		query.String("name", func(f File) string { return f.Name }),
		query.String("contentType", func(f File) string { return f.ContentType }).WithColumn("content_type"),
		query.Int("size", func(f File) int64 { return f.Size }),
		query.Time("createdAt", func(f File) time.Time { return f.CreatedAt }).WithColumn("created_at"),
	)
}

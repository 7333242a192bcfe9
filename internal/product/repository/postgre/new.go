package postgre

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"catalog-api/internal/product"
	"catalog-api/internal/product/repository"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query/sqlsource"
)

const table = "products"

var columns = []string{
	"id", "company_id", "title", "description", "price",
	"quantity", "available", "category", "created_at", "updated_at",
}

type implRepository struct {
	db     *sqlx.DB
	l      log.Logger
	sb     sq.StatementBuilderType
	source *sqlsource.Source[product.Product]
}

// New creates a SQL-backed Repository for products.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("product/repository/postgre: db is required")
	}
	src, err := sqlsource.New[product.Product](db, table,
		sqlsource.WithColumns(columns...),
		sqlsource.WithTieBreak("id"),
	)
	if err != nil {
		panic(fmt.Sprintf("product/repository/postgre: %v", err))
	}
	return &implRepository{
		db:     db,
		l:      l,
		sb:     sq.StatementBuilder.PlaceholderFormat(sqlsource.PlaceholderFormat(db)),
		source: src,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("product/repository/postgre.%s", method)
}

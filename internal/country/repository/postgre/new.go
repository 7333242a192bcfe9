package postgre

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"catalog-api/internal/country"
	"catalog-api/internal/country/repository"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query/sqlsource"
)

const table = "countries"

var columns = []string{"id", "code", "name", "region", "created_at"}

type implRepository struct {
	db     *sqlx.DB
	l      log.Logger
	sb     sq.StatementBuilderType
	source *sqlsource.Source[country.Country]
}

// New creates a SQL-backed Repository for countries. Works on postgres and sqlite.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("country/repository/postgre: db is required")
	}
	src, err := sqlsource.New[country.Country](db, table,
		sqlsource.WithColumns(columns...),
		sqlsource.WithTieBreak("id"),
	)
	if err != nil {
		panic(fmt.Sprintf("country/repository/postgre: %v", err))
	}
	return &implRepository{
		db:     db,
		l:      l,
		sb:     sq.StatementBuilder.PlaceholderFormat(sqlsource.PlaceholderFormat(db)),
		source: src,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("country/repository/postgre.%s", method)
}

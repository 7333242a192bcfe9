package postgre

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"catalog-api/internal/company"
	"catalog-api/internal/company/repository"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query/sqlsource"
)

const table = "companies"

var columns = []string{"id", "name", "description", "country_id", "status", "founded_at", "created_at", "updated_at"}

type implRepository struct {
	db     *sqlx.DB
	l      log.Logger
	sb     sq.StatementBuilderType
	source *sqlsource.Source[company.Company]
}

// New creates a SQL-backed Repository for companies.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("company/repository/postgre: db is required")
	}
	src, err := sqlsource.New[company.Company](db, table,
		sqlsource.WithColumns(columns...),
		sqlsource.WithTieBreak("id"),
	)
	if err != nil {
		panic(fmt.Sprintf("company/repository/postgre: %v", err))
	}
	return &implRepository{
		db:     db,
		l:      l,
		sb:     sq.StatementBuilder.PlaceholderFormat(sqlsource.PlaceholderFormat(db)),
		source: src,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("company/repository/postgre.%s", method)
}

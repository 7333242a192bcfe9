package postgre

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"catalog-api/internal/file"
	"catalog-api/internal/file/repository"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query/sqlsource"
)

const table = "files"

var columns = []string{"id", "name", "content_type", "size", "object_key", "created_at"}

type implRepository struct {
	db     *sqlx.DB
	l      log.Logger
	sb     sq.StatementBuilderType
	source *sqlsource.Source[file.File]
}

// New creates a SQL-backed Repository for file metadata.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("file/repository/postgre: db is required")
	}
	src, err := sqlsource.New[file.File](db, table,
		sqlsource.WithColumns(columns...),
		sqlsource.WithTieBreak("id"),
	)
	if err != nil {
		panic(fmt.Sprintf("file/repository/postgre: %v", err))
	}
	return &implRepository{
		db:     db,
		l:      l,
		sb:     sq.StatementBuilder.PlaceholderFormat(sqlsource.PlaceholderFormat(db)),
		source: src,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("file/repository/postgre.%s", method)
}

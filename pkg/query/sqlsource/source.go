package sqlsource

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"catalog-api/pkg/query"
)

const totalColumn = "total_count"

var ErrNilDB = errors.New("sqlsource: nil database")

// Source pages through one table with a single statement. The total match
// count travels next to the rows as a COUNT(*) OVER() window column; a
// separate COUNT(*) is issued only when the page comes back empty.
type Source[T any] struct {
	db       *sqlx.DB
	table    string
	columns  []string
	tieBreak string
	scope    sq.Sqlizer
	format   sq.PlaceholderFormat
	dialect  Dialect
}

// Option customizes a Source.
type Option func(*options)

type options struct {
	columns  []string
	tieBreak string
	scope    sq.Sqlizer
}

// WithColumns restricts the selected columns. The default is *.
func WithColumns(cols ...string) Option {
	return func(o *options) { o.columns = cols }
}

// WithTieBreak appends a unique column to every ORDER BY.
func WithTieBreak(col string) Option {
	return func(o *options) { o.tieBreak = col }
}

// WithScope ANDs a fixed predicate into every query.
func WithScope(pred sq.Sqlizer) Option {
	return func(o *options) { o.scope = pred }
}

// New builds a Source over table. Placeholders follow the driver's bind type.
func New[T any](db *sqlx.DB, table string, opts ...Option) (*Source[T], error) {
	if db == nil {
		return nil, ErrNilDB
	}
	o := options{columns: []string{"*"}}
	for _, opt := range opts {
		opt(&o)
	}

	return &Source[T]{
		db:       db.Unsafe(),
		table:    table,
		columns:  o.columns,
		tieBreak: o.tieBreak,
		scope:    o.scope,
		format:   PlaceholderFormat(db),
		dialect:  DialectOf(db),
	}, nil
}

// PlaceholderFormat picks the squirrel placeholder style for db's driver.
func PlaceholderFormat(db *sqlx.DB) sq.PlaceholderFormat {
	if sqlx.BindType(db.DriverName()) == sqlx.DOLLAR {
		return sq.Dollar
	}
	return sq.Question
}

func (s *Source[T]) where(f query.Filter[T]) sq.And {
	var preds sq.And
	if s.scope != nil {
		preds = append(preds, s.scope)
	}
	if w := Where(f, s.dialect); w != nil {
		preds = append(preds, w)
	}
	return preds
}

// Fetch implements query.Source.
func (s *Source[T]) Fetch(ctx context.Context, q query.Query[T]) ([]T, int64, error) {
	preds := s.where(q.Filter)
	if q.Limit <= 0 {
		total, err := s.count(ctx, preds)
		return []T{}, total, err
	}

	b := sq.Select(s.columns...).
		Column("COUNT(*) OVER() AS " + totalColumn).
		From(s.table).
		OrderBy(OrderBy(q.Ordering, s.tieBreak)...).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset)).
		PlaceholderFormat(s.format)
	if len(preds) > 0 {
		b = b.Where(preds)
	}

	stmt, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("sqlsource: build select: %w", err)
	}

	items, total, err := s.scan(ctx, stmt, args)
	if err != nil {
		return nil, 0, err
	}
	if len(items) == 0 {
		total, err = s.count(ctx, preds)
		if err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

func (s *Source[T]) scan(ctx context.Context, stmt string, args []any) ([]T, int64, error) {
	rows, err := s.db.QueryxContext(ctx, stmt, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, 0, err
	}

	var (
		items []T
		total int64
	)
	dest := make([]any, len(cols))
	for i, c := range cols {
		if c == totalColumn {
			dest[i] = &total
			continue
		}
		dest[i] = new(any)
	}

	for rows.Next() {
		var item T
		if err := rows.StructScan(&item); err != nil {
			return nil, 0, err
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Source[T]) count(ctx context.Context, preds sq.And) (int64, error) {
	b := sq.Select("COUNT(*)").From(s.table).PlaceholderFormat(s.format)
	if len(preds) > 0 {
		b = b.Where(preds)
	}
	stmt, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("sqlsource: build count: %w", err)
	}

	var total int64
	if err := s.db.GetContext(ctx, &total, stmt, args...); err != nil {
		return 0, err
	}
	return total, nil
}

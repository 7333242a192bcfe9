package sqlsource

import (
	"reflect"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"catalog-api/pkg/query"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Dialect selects how driver-specific operators are rendered.
type Dialect int

const (
	DialectPostgres Dialect = iota
	// DialectSQLite has an ASCII case-insensitive LIKE, so case-sensitive
	// contains goes through instr().
	DialectSQLite
)

// DialectOf picks the dialect for db's driver.
func DialectOf(db *sqlx.DB) Dialect {
	switch db.DriverName() {
	case "sqlite", "sqlite3":
		return DialectSQLite
	}
	return DialectPostgres
}

// Where renders a compiled filter as a squirrel predicate. It returns nil when
// the filter has no groups and admits everything.
func Where[T any](f query.Filter[T], d Dialect) sq.Sqlizer {
	groups := f.Groups()
	if len(groups) == 0 {
		if f.Default() {
			return nil
		}
		return sq.Expr("1 = 0")
	}

	parts := make([]sq.Sqlizer, 0, len(groups))
	for _, g := range groups {
		or := make(sq.Or, 0, len(g.Clauses))
		for _, c := range g.Clauses {
			or = append(or, clause(c, d))
		}
		if len(or) == 1 {
			parts = append(parts, or[0])
			continue
		}
		parts = append(parts, or)
	}

	if f.Conjunctive() {
		return sq.And(parts)
	}
	return sq.Or(parts)
}

func clause[T any](c query.Clause[T], d Dialect) sq.Sqlizer {
	col := c.Field.Column()
	v := value(c.Value)

	var expr sq.Sqlizer
	switch c.Op {
	case query.OpIsNull:
		return sq.Expr(col + " IS NULL")
	case query.OpIsNotNull:
		return sq.Expr(col + " IS NOT NULL")
	case query.OpEquals:
		expr = sq.Expr(col+" = ?", v)
	case query.OpNotEquals:
		expr = sq.Expr(col+" <> ?", v)
	case query.OpGreaterOrEqual:
		expr = sq.Expr(col+" >= ?", v)
	case query.OpLessOrEqual:
		expr = sq.Expr(col+" <= ?", v)
	case query.OpContains, query.OpNotContains:
		expr = contains(col, c, d)
	case query.OpWithin, query.OpNotWithin:
		r, _ := c.Value.(query.TimeRange)
		op := " BETWEEN ? AND ?"
		if c.Op == query.OpNotWithin {
			op = " NOT BETWEEN ? AND ?"
		}
		expr = sq.Expr(col+op, value(r.From), value(r.To))
	default:
		return sq.Expr("1 = 0")
	}

	if c.Op.Negated() && c.Field.Nullable() {
		return sq.Or{expr, sq.Expr(col + " IS NULL")}
	}
	return expr
}

func contains[T any](col string, c query.Clause[T], d Dialect) sq.Sqlizer {
	needle, _ := c.Value.(string)
	if !c.Fold && d == DialectSQLite {
		if c.Op == query.OpNotContains {
			return sq.Expr("instr("+col+", ?) = 0", needle)
		}
		return sq.Expr("instr("+col+", ?) > 0", needle)
	}

	pattern := "%" + likeEscaper.Replace(needle) + "%"
	target := col
	if c.Fold {
		target = "LOWER(" + col + ")"
	}
	op := " LIKE "
	if c.Op == query.OpNotContains {
		op = " NOT LIKE "
	}
	return sq.Expr(target+op+`? ESCAPE '\'`, pattern)
}

// value normalizes canonical field values into plain driver arguments.
func value(v any) any {
	switch x := v.(type) {
	case nil, string, int64, float64, bool:
		return v
	case uuid.UUID:
		return x.String()
	case time.Time:
		return x.UTC()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	}
	return v
}

// OrderBy renders an ordering as ORDER BY terms. Nullable columns put nulls
// first ascending and last descending. tieBreak, when set and not already
// present, is appended ascending so paging stays deterministic.
func OrderBy[T any](o query.Ordering[T], tieBreak string) []string {
	keys := o.Keys()
	terms := make([]string, 0, len(keys)+1)
	seen := false
	for _, k := range keys {
		col := k.Field.Column()
		if col == tieBreak {
			seen = true
		}
		term := col + " ASC"
		if k.Descending {
			term = col + " DESC"
		}
		if k.Field.Nullable() {
			if k.Descending {
				term += " NULLS LAST"
			} else {
				term += " NULLS FIRST"
			}
		}
		terms = append(terms, term)
	}
	if tieBreak != "" && !seen {
		terms = append(terms, tieBreak+" ASC")
	}
	return terms
}

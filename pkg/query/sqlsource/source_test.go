package sqlsource_test

import (
	"context"
	"net/url"
	"slices"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"catalog-api/pkg/query"
	"catalog-api/pkg/query/sqlsource"
)

type kind int

const (
	kindNone kind = iota
	kindTool
	kindToy
)

type widget struct {
	ID     uuid.UUID `db:"id"`
	Name   string    `db:"name"`
	Note   *string   `db:"note"`
	Qty    int       `db:"qty"`
	Price  float64   `db:"price"`
	Active bool      `db:"active"`
	Kind   kind      `db:"kind"`
}

func strPtr(s string) *string { return &s }

func widgets() []widget {
	return []widget{
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Name: "Alpha Widget", Note: strPtr("first"), Qty: 5, Price: 1.5, Active: true, Kind: kindTool},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Name: "beta widget", Qty: 10, Price: 2.5, Kind: kindToy},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Name: "Gamma_Gadget", Note: strPtr("50% off"), Qty: 0, Price: 9, Active: true, Kind: kindTool},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000004"), Name: "delta widget", Note: strPtr("x"), Qty: 7, Price: 2.5, Active: true, Kind: kindNone},
	}
}

func widgetFields() *query.FieldMap[widget] {
	return query.MustFieldMap(
		query.GUID("id", func(w widget) uuid.UUID { return w.ID }),
		query.String("name", func(w widget) string { return w.Name }),
		query.NullableString("note", func(w widget) *string { return w.Note }),
		query.Int("qty", func(w widget) int { return w.Qty }),
		query.Float("price", func(w widget) float64 { return w.Price }),
		query.Bool("active", func(w widget) bool { return w.Active }),
		query.Enum("kind", func(w widget) kind { return w.Kind }, map[string]kind{
			"none": kindNone, "tool": kindTool, "toy": kindToy,
		}),
	)
}

func openDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	db.MustExec(`CREATE TABLE widgets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		note TEXT NULL,
		qty INTEGER NOT NULL,
		price REAL NOT NULL,
		active INTEGER NOT NULL,
		kind INTEGER NOT NULL
	)`)
	for _, w := range widgets() {
		db.MustExec(`INSERT INTO widgets (id, name, note, qty, price, active, kind) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			w.ID.String(), w.Name, w.Note, w.Qty, w.Price, w.Active, int(w.Kind))
	}
	return db
}

func names(items []widget) []string {
	out := make([]string, len(items))
	for i, w := range items {
		out[i] = w.Name
	}
	return out
}

// TestSourceMatchesSliceSource runs every query against sqlite and the
// in-memory source and expects identical pages.
func TestSourceMatchesSliceSource(t *testing.T) {
	db := openDB(t)
	src, err := sqlsource.New[widget](db, "widgets", sqlsource.WithTieBreak("id"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mem := query.NewSliceSource(widgets())

	tcs := map[string]struct {
		raw           string
		caseSensitive bool
		wantNames     []string
		wantTotal     int64
	}{
		"Contains ignores case": {
			raw:       "name=WIDGET",
			wantNames: []string{"Alpha Widget", "beta widget", "delta widget"},
			wantTotal: 3,
		},
		"Case sensitive contains skips other casing": {
			raw:           "name=alpha",
			caseSensitive: true,
			wantNames:     []string{},
			wantTotal:     0,
		},
		"Case sensitive contains": {
			raw:           "name=Alpha",
			caseSensitive: true,
			wantNames:     []string{"Alpha Widget"},
			wantTotal:     1,
		},
		"Case sensitive negated contains": {
			raw:           "name=!widget",
			caseSensitive: true,
			wantNames:     []string{"Alpha Widget", "Gamma_Gadget"},
			wantTotal:     2,
		},
		"Case sensitive negated keeps nulls": {
			raw:           "note=!First",
			caseSensitive: true,
			wantNames:     []string{"Alpha Widget", "beta widget", "Gamma_Gadget", "delta widget"},
			wantTotal:     4,
		},
		"Exact match": {
			raw:       `name="beta widget"`,
			wantNames: []string{"beta widget"},
			wantTotal: 1,
		},
		"Underscore is literal": {
			raw:       "name=_",
			wantNames: []string{"Gamma_Gadget"},
			wantTotal: 1,
		},
		"Percent is literal": {
			raw:       "note=%25",
			wantNames: []string{"Gamma_Gadget"},
			wantTotal: 1,
		},
		"Negated contains keeps nulls": {
			raw:       "note=!first",
			wantNames: []string{"beta widget", "Gamma_Gadget", "delta widget"},
			wantTotal: 3,
		},
		"Null test": {
			raw:       "note=null",
			wantNames: []string{"beta widget"},
			wantTotal: 1,
		},
		"Not null": {
			raw:       "note=!",
			wantNames: []string{"Alpha Widget", "Gamma_Gadget", "delta widget"},
			wantTotal: 3,
		},
		"Numbers OR within a key": {
			raw:       "qty=5&qty=7",
			wantNames: []string{"Alpha Widget", "delta widget"},
			wantTotal: 2,
		},
		"Float and bool AND across keys": {
			raw:       "price=2.5&active=true",
			wantNames: []string{"delta widget"},
			wantTotal: 1,
		},
		"Unknown enum falls back to zero": {
			raw:       "kind=bogus",
			wantNames: []string{"delta widget"},
			wantTotal: 1,
		},
		"Guid equality": {
			raw:       "id=00000000-0000-0000-0000-000000000003",
			wantNames: []string{"Gamma_Gadget"},
			wantTotal: 1,
		},
		"Sort descending with tie break": {
			raw:       "sort=-price",
			wantNames: []string{"Gamma_Gadget", "beta widget", "delta widget", "Alpha Widget"},
			wantTotal: 4,
		},
		"Nullable sort puts nulls first": {
			raw:       "sort=note",
			wantNames: []string{"beta widget", "Gamma_Gadget", "Alpha Widget", "delta widget"},
			wantTotal: 4,
		},
		"Page window": {
			raw:       "sort=qty&offset=1&limit=2",
			wantNames: []string{"Alpha Widget", "delta widget"},
			wantTotal: 4,
		},
		"Offset past end still counts": {
			raw:       "name=widget&offset=10",
			wantNames: []string{},
			wantTotal: 3,
		},
		"Nothing matches": {
			raw:       "name=zzz",
			wantNames: []string{},
			wantTotal: 0,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.raw)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			p := query.ParseParams(values, query.ParamsConfig{DefaultLimit: 10})
			exec, err := query.NewExecutor(widgetFields(), query.Config{DefaultSort: "id", CaseSensitive: tc.caseSensitive})
			if err != nil {
				t.Fatalf("NewExecutor: %v", err)
			}

			got, err := exec.Execute(context.Background(), src, p)
			if err != nil {
				t.Fatalf("sql Execute: %v", err)
			}
			want, err := exec.Execute(context.Background(), mem, p)
			if err != nil {
				t.Fatalf("memory Execute: %v", err)
			}

			if !slices.Equal(names(got.Items), tc.wantNames) {
				t.Errorf("sql items = %v, want %v", names(got.Items), tc.wantNames)
			}
			if got.Total != tc.wantTotal {
				t.Errorf("sql total = %d, want %d", got.Total, tc.wantTotal)
			}
			if !slices.Equal(names(got.Items), names(want.Items)) || got.Total != want.Total {
				t.Errorf("sql %v/%d differs from memory %v/%d",
					names(got.Items), got.Total, names(want.Items), want.Total)
			}
		})
	}
}

func TestSourceZeroLimit(t *testing.T) {
	db := openDB(t)
	src, _ := sqlsource.New[widget](db, "widgets")
	exec, _ := query.NewExecutor(widgetFields(), query.Config{DefaultSort: "name"})

	page, err := exec.Execute(context.Background(), src, query.Params{
		Filters: url.Values{"active": {"true"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 || page.Total != 3 {
		t.Errorf("got %d items total %d, want 0 items total 3", len(page.Items), page.Total)
	}
}

func TestSourceDenyByDefault(t *testing.T) {
	db := openDB(t)
	src, _ := sqlsource.New[widget](db, "widgets")
	exec, _ := query.NewExecutor(widgetFields(), query.Config{DefaultSort: "name", DenyByDefault: true})

	page, err := exec.Execute(context.Background(), src, query.Params{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 || page.Total != 0 {
		t.Errorf("got %d items total %d, want empty", len(page.Items), page.Total)
	}
}

func TestSourceMatchAny(t *testing.T) {
	db := openDB(t)
	src, _ := sqlsource.New[widget](db, "widgets", sqlsource.WithTieBreak("id"))
	exec, _ := query.NewExecutor(widgetFields(), query.Config{DefaultSort: "id", MatchAny: true})

	page, err := exec.Execute(context.Background(), src, query.Params{
		Filters: url.Values{"qty": {"0"}, "kind": {"toy"}},
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := names(page.Items); !slices.Equal(got, []string{"beta widget", "Gamma_Gadget"}) {
		t.Errorf("items = %v", got)
	}
}

func TestSourceScope(t *testing.T) {
	db := openDB(t)
	src, _ := sqlsource.New[widget](db, "widgets",
		sqlsource.WithScope(sq.Eq{"active": true}),
		sqlsource.WithColumns("id", "name", "note", "qty", "price", "active", "kind"),
	)
	exec, _ := query.NewExecutor(widgetFields(), query.Config{DefaultSort: "name"})

	page, err := exec.Execute(context.Background(), src, query.Params{
		Filters: url.Values{"name": {"widget"}},
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := names(page.Items); !slices.Equal(got, []string{"Alpha Widget", "delta widget"}) || page.Total != 2 {
		t.Errorf("items = %v total = %d", got, page.Total)
	}
}

func TestSourceCancelledContext(t *testing.T) {
	db := openDB(t)
	src, _ := sqlsource.New[widget](db, "widgets")
	exec, _ := query.NewExecutor(widgetFields(), query.Config{DefaultSort: "name"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := exec.Execute(ctx, src, query.Params{Limit: 1}); err == nil {
		t.Errorf("expected error for cancelled context")
	}
}

func TestNewNilDB(t *testing.T) {
	if _, err := sqlsource.New[widget](nil, "widgets"); err != sqlsource.ErrNilDB {
		t.Errorf("expected ErrNilDB, got %v", err)
	}
}

func TestOrderBy(t *testing.T) {
	fields := widgetFields()
	tcs := map[string]struct {
		sort     []string
		tieBreak string
		want     []string
	}{
		"Tie break appended": {
			sort:     []string{"-qty"},
			tieBreak: "id",
			want:     []string{"qty DESC", "id ASC"},
		},
		"Tie break already present": {
			sort:     []string{"id"},
			tieBreak: "id",
			want:     []string{"id ASC"},
		},
		"Nullable columns place nulls": {
			sort: []string{"note,-note"},
			want: []string{"note ASC NULLS FIRST"},
		},
		"Nullable descending": {
			sort: []string{"-note"},
			want: []string{"note DESC NULLS LAST"},
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			o, err := query.CompileSort(query.ParseSort(tc.sort), fields, "name")
			if err != nil {
				t.Fatalf("CompileSort: %v", err)
			}
			if got := sqlsource.OrderBy(o, tc.tieBreak); !slices.Equal(got, tc.want) {
				t.Errorf("OrderBy = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWhereNegatedNullable(t *testing.T) {
	f, err := query.CompileFilter(url.Values{"note": {"!Sale"}}, widgetFields(), query.FilterOptions{})
	if err != nil {
		t.Fatalf("CompileFilter: %v", err)
	}
	stmt, args, err := sqlsource.Where(f, sqlsource.DialectPostgres).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	for _, part := range []string{"LOWER(note) NOT LIKE ?", "note IS NULL", " OR "} {
		if !strings.Contains(stmt, part) {
			t.Errorf("statement %q lacks %q", stmt, part)
		}
	}
	if len(args) != 1 || args[0] != "%sale%" {
		t.Errorf("args = %v", args)
	}
}

func TestWhereCaseSensitiveContains(t *testing.T) {
	f, err := query.CompileFilter(url.Values{"name": {"Sale"}, "note": {"!Sale"}}, widgetFields(), query.FilterOptions{CaseSensitive: true})
	if err != nil {
		t.Fatalf("CompileFilter: %v", err)
	}

	tcs := map[string]struct {
		dialect sqlsource.Dialect
		parts   []string
		args    []any
	}{
		"Postgres keeps LIKE": {
			dialect: sqlsource.DialectPostgres,
			parts:   []string{"name LIKE ?", "note NOT LIKE ?", "note IS NULL"},
			args:    []any{"%Sale%", "%Sale%"},
		},
		"SQLite uses instr": {
			dialect: sqlsource.DialectSQLite,
			parts:   []string{"instr(name, ?) > 0", "instr(note, ?) = 0", "note IS NULL"},
			args:    []any{"Sale", "Sale"},
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			stmt, args, err := sqlsource.Where(f, tc.dialect).ToSql()
			if err != nil {
				t.Fatalf("ToSql: %v", err)
			}
			for _, part := range tc.parts {
				if !strings.Contains(stmt, part) {
					t.Errorf("statement %q lacks %q", stmt, part)
				}
			}
			if !slices.Equal(args, tc.args) {
				t.Errorf("args = %v, want %v", args, tc.args)
			}
		})
	}
}

func TestWhereRelativeDay(t *testing.T) {
	fields := query.MustFieldMap(
		query.NullableTime("seen", func(w widget) *time.Time { return nil }).WithColumn("seen_at"),
	)
	loc := time.FixedZone("ICT", 7*3600)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 1).Add(-time.Microsecond)
	opts := query.FilterOptions{RelativeTime: func(string) (time.Time, time.Time, bool) { return from, to, true }}

	tcs := map[string]struct {
		raw   string
		parts []string
	}{
		"Whole day":       {raw: "today", parts: []string{"seen_at BETWEEN ? AND ?"}},
		"Outside the day": {raw: "!today", parts: []string{"seen_at NOT BETWEEN ? AND ?", "seen_at IS NULL"}},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			f, err := query.CompileFilter(url.Values{"seen": {tc.raw}}, fields, opts)
			if err != nil {
				t.Fatalf("CompileFilter: %v", err)
			}
			stmt, args, err := sqlsource.Where(f, sqlsource.DialectPostgres).ToSql()
			if err != nil {
				t.Fatalf("ToSql: %v", err)
			}
			for _, part := range tc.parts {
				if !strings.Contains(stmt, part) {
					t.Errorf("statement %q lacks %q", stmt, part)
				}
			}
			if len(args) != 2 {
				t.Fatalf("args = %v", args)
			}
			if got, ok := args[0].(time.Time); !ok || !got.Equal(from) || got.Location() != time.UTC {
				t.Errorf("from arg = %v", args[0])
			}
			if got, ok := args[1].(time.Time); !ok || !got.Equal(to) {
				t.Errorf("to arg = %v", args[1])
			}
		})
	}
}

func TestDialectOf(t *testing.T) {
	if got := sqlsource.DialectOf(openDB(t)); got != sqlsource.DialectSQLite {
		t.Errorf("DialectOf(sqlite) = %v", got)
	}
	if got := sqlsource.DialectOf(sqlx.NewDb(nil, "postgres")); got != sqlsource.DialectPostgres {
		t.Errorf("DialectOf(postgres) = %v", got)
	}
}

func TestWhereEmptyFilter(t *testing.T) {
	if w := sqlsource.Where(query.Filter[widget]{}, sqlsource.DialectSQLite); w != nil {
		t.Errorf("zero filter should not produce a predicate")
	}
}

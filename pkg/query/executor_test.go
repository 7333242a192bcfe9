package query_test

import (
	"context"
	"errors"
	"net/url"
	"slices"
	"testing"

	"catalog-api/pkg/query"
)

type ctxKey struct{}

func TestExecutor(t *testing.T) {
	exec, err := query.NewExecutor(companyFields(), query.Config{DefaultSort: "name"})
	if err != nil {
		t.Fatalf("NewExecutor unexpected error: %v", err)
	}
	src := query.NewSliceSource(companies())
	cfg := query.ParamsConfig{DefaultLimit: 10, MaxLimit: 50}

	run := func(t *testing.T, raw string) query.Page[company] {
		t.Helper()
		values, err := url.ParseQuery(raw)
		if err != nil {
			t.Fatalf("parse query: %v", err)
		}
		page, err := exec.Execute(context.Background(), src, query.ParseParams(values, cfg))
		if err != nil {
			t.Fatalf("Execute(%q) unexpected error: %v", raw, err)
		}
		return page
	}

	t.Run("Filter sort and page", func(t *testing.T) {
		page := run(t, "name=acme&sort=-name&offset=1&limit=1")
		if got := names(page.Items); !slices.Equal(got, []string{"Acme"}) {
			t.Errorf("items = %v, want [Acme]", got)
		}
		if page.Total != 2 {
			t.Errorf("total = %d, want 2", page.Total)
		}
	})

	t.Run("Default sort applies", func(t *testing.T) {
		page := run(t, "")
		if got := names(page.Items); !slices.Equal(got, []string{"Acme", "Acme Corp", "Beta"}) {
			t.Errorf("items = %v", got)
		}
	})

	t.Run("Unknown keys do not change the result", func(t *testing.T) {
		plain := run(t, "status=!archived&sort=-employees")
		noisy := run(t, "status=!archived&sort=-employees&bogus=1&sort=bogus&expand=everything")
		if !slices.Equal(names(plain.Items), names(noisy.Items)) || plain.Total != noisy.Total {
			t.Errorf("noisy query %v/%d differs from plain %v/%d",
				names(noisy.Items), noisy.Total, names(plain.Items), plain.Total)
		}
	})

	t.Run("Malformed paging is ignored", func(t *testing.T) {
		page := run(t, "offset=x&limit=y")
		if page.Offset != 0 || page.Limit != 10 || len(page.Items) != 3 {
			t.Errorf("unexpected page window: offset=%d limit=%d items=%d", page.Offset, page.Limit, len(page.Items))
		}
	})
}

func TestExecutorCompilePassesExpand(t *testing.T) {
	exec, _ := query.NewExecutor(companyFields(), query.Config{DefaultSort: "id"})
	q, err := exec.Compile(context.Background(), query.Params{Limit: 5, Offset: 2, Expand: []string{"owner"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Limit != 5 || q.Offset != 2 || !slices.Equal(q.Expand, []string{"owner"}) {
		t.Errorf("unexpected query: %+v", q)
	}
	if keys := q.Ordering.Keys(); len(keys) != 1 || keys[0].Field.Name() != "id" {
		t.Errorf("expected default ordering by id, got %+v", keys)
	}
}

func TestExecutorReject(t *testing.T) {
	var seen []query.Rejection
	exec, err := query.NewExecutor(companyFields(), query.Config{
		DefaultSort: "name",
		Reject: func(ctx context.Context, r query.Rejection) {
			if ctx.Value(ctxKey{}) != "req-1" {
				t.Errorf("reject hook did not receive the request context")
			}
			seen = append(seen, r)
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	_, err = exec.Execute(ctx, query.NewSliceSource(companies()), query.Params{
		Filters: url.Values{"employees": {"many"}},
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 1 || !errors.Is(seen[0].Err, query.ErrInvalidValue) {
		t.Errorf("unexpected rejections: %+v", seen)
	}
}

func TestNewExecutorErrors(t *testing.T) {
	if _, err := query.NewExecutor[company](nil, query.Config{DefaultSort: "name"}); !errors.Is(err, query.ErrNilFieldMap) {
		t.Errorf("expected ErrNilFieldMap, got %v", err)
	}
	if _, err := query.NewExecutor(companyFields(), query.Config{DefaultSort: "nope"}); !errors.Is(err, query.ErrUnknownSortField) {
		t.Errorf("expected ErrUnknownSortField, got %v", err)
	}
}

func TestExecutorNilSource(t *testing.T) {
	exec, _ := query.NewExecutor(companyFields(), query.Config{DefaultSort: "name"})
	if _, err := exec.Execute(context.Background(), nil, query.Params{Limit: 1}); !errors.Is(err, query.ErrNilSource) {
		t.Errorf("expected ErrNilSource, got %v", err)
	}
}

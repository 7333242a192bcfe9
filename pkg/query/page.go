package query

import "context"

// Query is everything a data source needs to produce one page.
type Query[T any] struct {
	Filter   Filter[T]
	Ordering Ordering[T]
	Offset   int
	Limit    int
	// Expand is advisory eager-loading input for the data source.
	Expand []string
}

// Source executes a compiled query. Implementations return the ordered slice
// [Offset, Offset+Limit) of matching items together with the total match count,
// in a single round trip where the backend allows it. Errors are returned as-is.
type Source[T any] interface {
	Fetch(ctx context.Context, q Query[T]) ([]T, int64, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func(ctx context.Context, q Query[T]) ([]T, int64, error)

func (fn SourceFunc[T]) Fetch(ctx context.Context, q Query[T]) ([]T, int64, error) {
	return fn(ctx, q)
}

// Page is an offset/limit window over a filtered, ordered set.
type Page[T any] struct {
	Items  []T
	Offset int
	Limit  int
	Total  int64
}

// Paginate runs q against src. A negative offset or limit is a caller error;
// a zero limit yields an empty page that still carries the total.
func Paginate[T any](ctx context.Context, src Source[T], q Query[T]) (Page[T], error) {
	if src == nil {
		return Page[T]{}, ErrNilSource
	}
	if q.Offset < 0 {
		return Page[T]{}, ErrNegativeOffset
	}
	if q.Limit < 0 {
		return Page[T]{}, ErrNegativeLimit
	}

	items, total, err := src.Fetch(ctx, q)
	if err != nil {
		return Page[T]{}, err
	}
	if len(items) > q.Limit {
		items = items[:q.Limit]
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Offset: q.Offset, Limit: q.Limit, Total: total}, nil
}

// MapPage converts page items, keeping the window and total.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, len(p.Items))
	for i, item := range p.Items {
		out[i] = fn(item)
	}
	return Page[R]{Items: out, Offset: p.Offset, Limit: p.Limit, Total: p.Total}
}

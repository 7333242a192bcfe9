package query

import (
	"context"
	"slices"
)

// SliceSource serves queries from an in-memory slice. The slice is never modified.
type SliceSource[T any] struct {
	items []T
}

func NewSliceSource[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

// Fetch filters, stable-sorts, counts and slices in one pass over the data.
func (s *SliceSource[T]) Fetch(ctx context.Context, q Query[T]) ([]T, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	matched := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if q.Filter.Match(item) {
			matched = append(matched, item)
		}
	}
	if len(q.Ordering.keys) > 0 {
		slices.SortStableFunc(matched, q.Ordering.Compare)
	}

	total := int64(len(matched))
	if q.Offset >= len(matched) || q.Limit <= 0 {
		return []T{}, total, nil
	}
	end := len(matched)
	if q.Limit < end-q.Offset {
		end = q.Offset + q.Limit
	}
	return matched[q.Offset:end], total, nil
}

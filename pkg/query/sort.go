package query

import (
	"fmt"
	"strings"
)

const descPrefix = "-"

// SortToken is one parsed sort directive.
type SortToken struct {
	Field      string
	Descending bool
}

// ParseSort reads tokens like "name" or "-createdAt". A token may also hold a
// comma separated list. Blank entries are skipped.
func ParseSort(raw []string) []SortToken {
	var out []SortToken
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			desc := strings.HasPrefix(part, descPrefix)
			part = strings.TrimSpace(strings.TrimPrefix(part, descPrefix))
			if part == "" {
				continue
			}
			out = append(out, SortToken{Field: part, Descending: desc})
		}
	}
	return out
}

// SortKey is a resolved sort directive.
type SortKey[T any] struct {
	Field      Field[T]
	Descending bool
}

// Ordering is a primary sort key followed by tie-breakers, in precedence order.
type Ordering[T any] struct {
	keys []SortKey[T]
}

func (o Ordering[T]) Keys() []SortKey[T] { return o.keys }

// Compare orders a before b (<0), after b (>0) or as a tie (0).
// Nulls sort before values in ascending order.
func (o Ordering[T]) Compare(a, b T) int {
	for _, k := range o.keys {
		av, aok := k.Field.Value(a)
		bv, bok := k.Field.Value(b)

		var c int
		switch {
		case !aok && !bok:
			c = 0
		case !aok:
			c = -1
		case !bok:
			c = 1
		default:
			c = k.Field.Compare(av, bv)
		}
		if c == 0 {
			continue
		}
		if k.Descending {
			return -c
		}
		return c
	}
	return 0
}

// CompileSort resolves tokens against fields. Unknown fields are dropped, and a
// field named more than once keeps its first position and direction. With no
// usable token the ordering falls back to defaultField ascending.
func CompileSort[T any](tokens []SortToken, fields *FieldMap[T], defaultField string) (Ordering[T], error) {
	if fields == nil {
		return Ordering[T]{}, ErrNilFieldMap
	}
	def, ok := fields.Lookup(defaultField)
	if !ok {
		return Ordering[T]{}, fmt.Errorf("%w: %s", ErrUnknownSortField, defaultField)
	}

	var o Ordering[T]
	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		f, ok := fields.Lookup(t.Field)
		if !ok {
			continue
		}
		key := strings.ToLower(f.name)
		if seen[key] {
			continue
		}
		seen[key] = true
		o.keys = append(o.keys, SortKey[T]{Field: f, Descending: t.Descending})
	}
	if len(o.keys) == 0 {
		o.keys = []SortKey[T]{{Field: def}}
	}
	return o, nil
}

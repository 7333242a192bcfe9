package query

import (
	"fmt"
	"strings"
)

// Bound marks a datetime key carrying a From/To suffix.
type Bound int

const (
	BoundNone Bound = iota
	BoundFrom
	BoundTo
)

const (
	negationPrefix = "!"
	quote          = `"`
	nullLiteral    = "null"
)

// Coerce turns one raw query value into a Clause for field f.
//
// A leading "!" negates the test. Quoted strings compare exactly, unquoted
// strings by substring. An empty value (or "null") on a nullable field tests for
// null. Blank or unknown enum names resolve to the enum's zero value. Any other
// value that does not parse for the field's kind is rejected.
func Coerce[T any](f Field[T], raw string, bound Bound, caseSensitive bool) (Clause[T], error) {
	negated := strings.HasPrefix(raw, negationPrefix)
	if negated {
		raw = raw[len(negationPrefix):]
	}
	quoted := isQuoted(raw)
	if quoted {
		raw = raw[len(quote) : len(raw)-len(quote)]
	}

	if bound != BoundNone && f.kind != KindTime {
		return Clause[T]{}, fmt.Errorf("%w: %s", ErrRangeNotAllowed, f.name)
	}

	if f.kind != KindEnum && isNullValue(raw, quoted, f) {
		if !f.nullable {
			return Clause[T]{}, fmt.Errorf("%w: %s", ErrNullNotAllowed, f.name)
		}
		if bound != BoundNone {
			return Clause[T]{}, fmt.Errorf("%w: %s: empty range bound", ErrInvalidValue, f.name)
		}
		return Clause[T]{Field: f, Op: pick(negated, OpIsNotNull, OpIsNull)}, nil
	}

	switch f.kind {
	case KindString:
		if quoted {
			return Clause[T]{Field: f, Op: pick(negated, OpNotEquals, OpEquals), Value: raw}, nil
		}
		c := Clause[T]{Field: f, Op: pick(negated, OpNotContains, OpContains), Value: raw}
		if !caseSensitive {
			c.Value = strings.ToLower(raw)
			c.Fold = true
		}
		return c, nil

	case KindTime:
		v, err := f.parse(raw)
		if err != nil {
			return Clause[T]{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, f.name, raw, err)
		}
		switch bound {
		case BoundFrom, BoundTo:
			if negated {
				return Clause[T]{}, fmt.Errorf("%w: %s: negated range bound", ErrInvalidValue, f.name)
			}
			return Clause[T]{Field: f, Op: pick(bound == BoundFrom, OpGreaterOrEqual, OpLessOrEqual), Value: v}, nil
		}
		return Clause[T]{Field: f, Op: pick(negated, OpNotEquals, OpEquals), Value: v}, nil

	default:
		v, err := f.parse(raw)
		if err != nil {
			return Clause[T]{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, f.name, raw, err)
		}
		return Clause[T]{Field: f, Op: pick(negated, OpNotEquals, OpEquals), Value: v}, nil
	}
}

func isQuoted(s string) bool {
	return len(s) >= 2*len(quote) && strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote)
}

// isNullValue treats "" as null for every kind, and the bare word null only where
// the field can actually hold a null.
func isNullValue[T any](raw string, quoted bool, f Field[T]) bool {
	if quoted {
		return false
	}
	if raw == "" {
		return true
	}
	return f.nullable && strings.EqualFold(raw, nullLiteral)
}

func pick(cond bool, yes, no Op) Op {
	if cond {
		return yes
	}
	return no
}

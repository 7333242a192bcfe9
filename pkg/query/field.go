package query

import (
	"cmp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind tags the scalar type behind a field so operator inference is a plain switch.
type Kind int

const (
	KindString Kind = iota + 1
	KindNumber
	KindBool
	KindGUID
	KindTime
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindGUID:
		return "guid"
	case KindTime:
		return "datetime"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type float interface {
	~float32 | ~float64
}

// Field is one filterable/sortable entry of a FieldMap.
// Values flow through it in a canonical form per kind: string, int64, float64,
// bool, uuid.UUID, time.Time, or the enum's own type.
type Field[T any] struct {
	name     string
	column   string
	kind     Kind
	nullable bool

	get     func(T) (any, bool)
	parse   func(string) (any, error)
	compare func(a, b any) int
}

func (f Field[T]) Name() string   { return f.name }
func (f Field[T]) Kind() Kind     { return f.kind }
func (f Field[T]) Nullable() bool { return f.nullable }

// Column returns the storage column, defaulting to the lower-cased name.
func (f Field[T]) Column() string {
	if f.column != "" {
		return f.column
	}
	return strings.ToLower(f.name)
}

// WithColumn binds the field to a storage column.
func (f Field[T]) WithColumn(column string) Field[T] {
	f.column = column
	return f
}

// Value reads the field from item. ok is false when the value is null.
func (f Field[T]) Value(item T) (v any, ok bool) {
	return f.get(item)
}

// Parse converts a raw query value into the field's canonical type.
func (f Field[T]) Parse(raw string) (any, error) {
	return f.parse(raw)
}

// Compare orders two canonical values of this field.
func (f Field[T]) Compare(a, b any) int {
	return f.compare(a, b)
}

func compareAs[V cmp.Ordered](a, b any) int {
	return cmp.Compare(a.(V), b.(V))
}

func present[V any](v V) (any, bool) { return v, true }

func deref[V any](p *V) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

func parseString(raw string) (any, error) { return raw, nil }

func parseInt(raw string) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// String registers a non-nullable text field.
func String[T any](name string, get func(T) string) Field[T] {
	return Field[T]{
		name:    name,
		kind:    KindString,
		get:     func(item T) (any, bool) { return present(get(item)) },
		parse:   parseString,
		compare: compareAs[string],
	}
}

// NullableString registers a text field that may be null.
func NullableString[T any](name string, get func(T) *string) Field[T] {
	f := String(name, func(T) string { return "" })
	f.nullable = true
	f.get = func(item T) (any, bool) { return deref(get(item)) }
	return f
}

// Int registers an integer field.
func Int[T any, N integer](name string, get func(T) N) Field[T] {
	return Field[T]{
		name:    name,
		kind:    KindNumber,
		get:     func(item T) (any, bool) { return present(int64(get(item))) },
		parse:   parseInt,
		compare: compareAs[int64],
	}
}

// NullableInt registers an integer field that may be null.
func NullableInt[T any, N integer](name string, get func(T) *N) Field[T] {
	f := Int(name, func(T) N { return 0 })
	f.nullable = true
	f.get = func(item T) (any, bool) {
		p := get(item)
		if p == nil {
			return nil, false
		}
		return int64(*p), true
	}
	return f
}

// Float registers a floating point field.
func Float[T any, N float](name string, get func(T) N) Field[T] {
	return Field[T]{
		name: name,
		kind: KindNumber,
		get:  func(item T) (any, bool) { return present(float64(get(item))) },
		parse: func(raw string) (any, error) {
			n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, err
			}
			if n != n {
				return nil, strconv.ErrSyntax
			}
			return n, nil
		},
		compare: compareAs[float64],
	}
}

// Bool registers a boolean field.
func Bool[T any](name string, get func(T) bool) Field[T] {
	return Field[T]{
		name: name,
		kind: KindBool,
		get:  func(item T) (any, bool) { return present(get(item)) },
		parse: func(raw string) (any, error) {
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return nil, err
			}
			return b, nil
		},
		compare: func(a, b any) int {
			x, y := a.(bool), b.(bool)
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		},
	}
}

// GUID registers a UUID field.
func GUID[T any](name string, get func(T) uuid.UUID) Field[T] {
	return Field[T]{
		name: name,
		kind: KindGUID,
		get:  func(item T) (any, bool) { return present(get(item)) },
		parse: func(raw string) (any, error) {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				return nil, err
			}
			return id, nil
		},
		compare: func(a, b any) int {
			return strings.Compare(a.(uuid.UUID).String(), b.(uuid.UUID).String())
		},
	}
}

// NullableGUID registers a UUID field that may be null.
func NullableGUID[T any](name string, get func(T) *uuid.UUID) Field[T] {
	f := GUID(name, func(T) uuid.UUID { return uuid.Nil })
	f.nullable = true
	f.get = func(item T) (any, bool) { return deref(get(item)) }
	return f
}

// timeLayouts are tried in order when parsing datetime filter values.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return nil, err
}

// Time registers a datetime field.
func Time[T any](name string, get func(T) time.Time) Field[T] {
	return Field[T]{
		name:  name,
		kind:  KindTime,
		get:   func(item T) (any, bool) { return present(get(item)) },
		parse: parseTime,
		compare: func(a, b any) int {
			return a.(time.Time).Compare(b.(time.Time))
		},
	}
}

// NullableTime registers a datetime field that may be null.
func NullableTime[T any](name string, get func(T) *time.Time) Field[T] {
	f := Time(name, func(T) time.Time { return time.Time{} })
	f.nullable = true
	f.get = func(item T) (any, bool) { return deref(get(item)) }
	return f
}

// Enum registers an enumerated field. names maps display names to values and is
// matched case-insensitively; blank or unknown input resolves to E's zero value.
func Enum[T any, E cmp.Ordered](name string, get func(T) E, names map[string]E) Field[T] {
	lookup := make(map[string]E, len(names))
	for k, v := range names {
		lookup[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return Field[T]{
		name: name,
		kind: KindEnum,
		get:  func(item T) (any, bool) { return present(get(item)) },
		parse: func(raw string) (any, error) {
			v, ok := lookup[strings.ToLower(strings.TrimSpace(raw))]
			if !ok {
				var zero E
				return zero, nil
			}
			return v, nil
		},
		compare: compareAs[E],
	}
}

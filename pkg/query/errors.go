package query

import "errors"

// Caller contract violations. These indicate a wiring mistake, never bad end-user input.
var (
	ErrNilFieldMap      = errors.New("query: field map is required")
	ErrNilSource        = errors.New("query: data source is required")
	ErrNegativeOffset   = errors.New("query: offset must not be negative")
	ErrNegativeLimit    = errors.New("query: limit must not be negative")
	ErrUnknownSortField = errors.New("query: default sort field is not registered")
	ErrDuplicateField   = errors.New("query: duplicate field name")
	ErrEmptyFieldName   = errors.New("query: field name is empty")
	ErrInvalidColumn    = errors.New("query: invalid column identifier")
)

// Ignorable input errors. The compilers drop the offending token and carry on;
// they only surface through Config.Reject.
var (
	ErrUnknownField    = errors.New("query: unknown field")
	ErrInvalidValue    = errors.New("query: value does not parse for field kind")
	ErrNullNotAllowed  = errors.New("query: field is not nullable")
	ErrRangeNotAllowed = errors.New("query: range bounds apply to datetime fields only")
)

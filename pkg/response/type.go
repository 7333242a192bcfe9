package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Pager describes the window a list response covers. Count is the total number
// of matching records, not the number returned.
type Pager struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Count  int64 `json:"count"`
}

// PageResp is the data payload of every list endpoint.
type PageResp[T any] struct {
	Items []T   `json:"items"`
	Pager Pager `json:"pager"`
}

// NewPageResp wraps items and guarantees a JSON array even when empty.
func NewPageResp[T any](items []T, offset, limit int, count int64) PageResp[T] {
	if items == nil {
		items = []T{}
	}
	return PageResp[T]{
		Items: items,
		Pager: Pager{Offset: offset, Limit: limit, Count: count},
	}
}

// Date is a date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateFormat))
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}

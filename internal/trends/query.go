// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trends queries the Google Trends web API. It builds the explore
// request from a query descriptor, follows the returned widget to the
// matching data endpoint, and returns the widget data with its padding
// stripped.
package trends

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/pdiddy/trends/pkg/types"
)

// Callback receives the outcome of a fetch and returns what the caller of
// Client.Results sees.
type Callback func(err error, result string) (string, error)

// passThrough is the default Callback.
func passThrough(err error, result string) (string, error) {
	if err != nil {
		return "", err
	}
	return result, nil
}

// Request is the outcome of building a query. Exactly one of Query and Err
// is meaningful; check Valid before using Query.
type Request struct {
	Callback Callback
	Query    *types.Query
	Err      error
}

// Valid reports whether the request carries a usable query.
func (r Request) Valid() bool {
	return r.Err == nil && r.Query != nil
}

// Construct validates q and normalizes its dates. A nil cb is replaced by
// a pass-through callback. Validation failures are returned in Request.Err.
func Construct(q *types.Query, cb Callback) Request {
	if cb == nil {
		cb = passThrough
	}

	var err error
	switch {
	case q == nil:
		err = ErrNoObject
	case q.Keyword == "":
		err = ErrNoKeyword
	}
	if err != nil {
		return Request{Callback: cb, Err: err}
	}

	q, err = FormatTime(q)
	if err != nil {
		return Request{Callback: cb, Err: err}
	}
	return Request{Callback: cb, Query: q}
}

// ConstructJSON decodes an untyped JSON descriptor and hands it to
// Construct. Anything but a JSON object yields ErrNoObject. startTime and
// endTime may be date strings accepted by ParseDate or Unix milliseconds.
func ConstructJSON(data []byte, cb Callback) Request {
	if cb == nil {
		cb = passThrough
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Request{Callback: cb, Err: fmt.Errorf("decoding query: %w", err)}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return Request{Callback: cb, Err: ErrNoObject}
	}

	q := &types.Query{}
	q.Keyword = decodeKeyword(obj["keyword"])
	q.Resolution, _ = obj["resolution"].(string)
	q.Geo, _ = obj["geo"].(string)

	var err error
	if q.StartTime, err = decodeDate(obj["startTime"]); err != nil {
		return Request{Callback: cb, Err: fmt.Errorf("%w: %v", ErrInvalidStartTime, err)}
	}
	if q.EndTime, err = decodeDate(obj["endTime"]); err != nil {
		return Request{Callback: cb, Err: fmt.Errorf("%w: %v", ErrInvalidEndTime, err)}
	}

	return Construct(q, cb)
}

// decodeKeyword accepts any truthy scalar as a keyword. Numbers and true
// are rendered as text; falsy values, objects and arrays yield "".
func decodeKeyword(v any) string {
	switch k := v.(type) {
	case string:
		return k
	case float64:
		if k == 0 {
			return ""
		}
		return strconv.FormatFloat(k, 'f', -1, 64)
	case bool:
		if k {
			return "true"
		}
	}
	return ""
}

// decodeDate converts a decoded JSON value into a time. Absent and null
// values are the zero time.
func decodeDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, nil
	case string:
		return ParseDate(d)
	case float64:
		return time.UnixMilli(int64(d)).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported value %v", v)
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses an RFC 3339 timestamp, a zone-less YYYY-MM-DDThh:mm
// timestamp or a bare YYYY-MM-DD date. Values without an offset are UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"fmt"
	"time"

	"github.com/pdiddy/trends/pkg/types"
)

// DefaultStartTime is the earliest date the upstream has data for. Used
// when a query omits its start bound.
var DefaultStartTime = time.Date(2004, time.January, 1, 0, 0, 0, 0, time.UTC)

// now is the clock used for a missing end bound. Tests override it.
var now = time.Now

const millisPerDay = 24 * 60 * 60 * 1000

// IsLessThan7Days reports whether a and b are less than seven days apart,
// in either order.
func IsLessThan7Days(a, b time.Time) bool {
	diff := b.Sub(a).Milliseconds()
	if diff < 0 {
		diff = -diff
	}
	return float64(diff)/millisPerDay < 7
}

// ConvertDateToString encodes d in UTC as YYYY-MM-DD, or, when includeTime
// is set, as YYYY-MM-DDTh\:m\:00. Hour and minute are not padded and the
// colons carry a literal backslash; the upstream expects exactly this form.
func ConvertDateToString(d time.Time, includeTime bool) string {
	d = d.UTC()
	date := fmt.Sprintf("%d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
	if includeTime {
		return fmt.Sprintf(`%sT%d\:%d\:00`, date, d.Hour(), d.Minute())
	}
	return date
}

// FormatTime normalizes the start and end bounds of q and sets q.Time.
// Out-of-order bounds are swapped, a missing end becomes now and a missing
// start becomes DefaultStartTime. Spans shorter than seven days are encoded
// with hour and minute. q is modified in place and returned.
func FormatTime(q *types.Query) (*types.Query, error) {
	if q == nil {
		return nil, ErrNoObject
	}

	if !q.StartTime.IsZero() && !q.EndTime.IsZero() && q.StartTime.After(q.EndTime) {
		q.StartTime, q.EndTime = q.EndTime, q.StartTime
	}

	if q.EndTime.IsZero() {
		q.EndTime = now()
	}
	if q.StartTime.IsZero() {
		q.StartTime = DefaultStartTime
	}

	includeTime := IsLessThan7Days(q.StartTime, q.EndTime)
	q.Time = ConvertDateToString(q.StartTime, includeTime) + " " + ConvertDateToString(q.EndTime, includeTime)
	return q, nil
}

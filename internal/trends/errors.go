// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"errors"
	"fmt"
)

// Validation errors. These are carried in Request.Err rather than
// interrupting the caller.
var (
	ErrNoObject         = errors.New("must supply an object")
	ErrNoKeyword        = errors.New("must have a keyword field")
	ErrInvalidStartTime = errors.New("startTime must be a valid date")
	ErrInvalidEndTime   = errors.New("endTime must be a valid date")
)

var (
	// ErrUnknownSearchType is returned for a label outside the search-type table.
	ErrUnknownSearchType = errors.New("unknown search type")

	// ErrMalformedResponse wraps every failure to parse an upstream body.
	ErrMalformedResponse = errors.New("malformed response")
)

// HTTPError reports a non-2xx status from one of the two calls.
type HTTPError struct {
	// Stage is "explore" or "widgetdata".
	Stage      string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: upstream returned HTTP %d", e.Stage, e.StatusCode)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"fmt"

	"github.com/pdiddy/trends/pkg/types"
)

// endpoint describes where a search type's data lives.
type endpoint struct {
	// path is appended to the API base URL.
	path string
	// pos indexes the widget list returned by the explore call.
	pos int
	// resolution marks types whose widget request takes a resolution.
	resolution bool
}

var endpoints = map[types.SearchType]endpoint{
	types.InterestOverTime: {path: "/trends/api/widgetdata/multiline", pos: 0},
	types.InterestByRegion: {path: "/trends/api/widgetdata/comparedgeo", pos: 1, resolution: true},
	types.RelatedTopics:    {path: "/trends/api/widgetdata/relatedsearches", pos: 2},
	types.RelatedQueries:   {path: "/trends/api/widgetdata/relatedsearches", pos: 3},
}

func lookupEndpoint(st types.SearchType) (endpoint, error) {
	ep, ok := endpoints[st]
	if !ok {
		return endpoint{}, fmt.Errorf("%w: %q", ErrUnknownSearchType, string(st))
	}
	return ep, nil
}

// ParseSearchType validates a search-type label.
func ParseSearchType(s string) (types.SearchType, error) {
	st := types.SearchType(s)
	if _, err := lookupEndpoint(st); err != nil {
		return "", err
	}
	return st, nil
}

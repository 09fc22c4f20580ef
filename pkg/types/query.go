// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the trends client:
// the query descriptor sent to the explore endpoint, the search types the
// client understands, and component configuration.
package types

import (
	"encoding/json"
	"time"
)

// SearchType names one of the report types the widget data endpoints serve.
type SearchType string

const (
	InterestOverTime SearchType = "interest over time"
	InterestByRegion SearchType = "interest by region"
	RelatedTopics    SearchType = "related topics"
	RelatedQueries   SearchType = "related queries"
)

// SearchTypes lists every known search type in widget order.
var SearchTypes = []SearchType{InterestOverTime, InterestByRegion, RelatedTopics, RelatedQueries}

// Query is the descriptor wrapped into the explore call's comparisonItem.
// A zero StartTime or EndTime means the bound was not supplied.
type Query struct {
	// Keyword is the search term. Required.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Resolution is the geographic granularity for region reports
	// (COUNTRY, REGION, CITY or DMA).
	Resolution string `json:"resolution,omitempty" yaml:"resolution,omitempty"`

	// Geo restricts the comparison to a location code (e.g. "US", "US-CA").
	Geo string `json:"geo,omitempty" yaml:"geo,omitempty"`

	StartTime time.Time `json:"startTime" yaml:"start_time"`
	EndTime   time.Time `json:"endTime" yaml:"end_time"`

	// Time is the encoded "<start> <end>" range, set by date normalization.
	Time string `json:"time" yaml:"time"`
}

// timestampLayout matches the ISO-8601 millisecond form the upstream
// expects for startTime and endTime.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type queryJSON struct {
	Keyword    string `json:"keyword"`
	Geo        string `json:"geo,omitempty"`
	Resolution string `json:"resolution,omitempty"`
	StartTime  string `json:"startTime,omitempty"`
	EndTime    string `json:"endTime,omitempty"`
	Time       string `json:"time,omitempty"`
}

// MarshalJSON encodes the descriptor as a comparison item. Times are
// rendered in UTC and omitted when zero.
func (q Query) MarshalJSON() ([]byte, error) {
	out := queryJSON{
		Keyword:    q.Keyword,
		Geo:        q.Geo,
		Resolution: q.Resolution,
		Time:       q.Time,
	}
	if !q.StartTime.IsZero() {
		out.StartTime = q.StartTime.UTC().Format(timestampLayout)
	}
	if !q.EndTime.IsZero() {
		out.EndTime = q.EndTime.UTC().Format(timestampLayout)
	}
	return json.Marshal(out)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trends/pkg/types"
)

// QueryFile is a fetch saved to disk: the parameters that produced it and
// the widget data returned. Loading one lets the CLI re-run the fetch or
// inspect the result offline.
type QueryFile struct {
	SearchType types.SearchType `yaml:"search_type"`
	Query      QueryParams      `yaml:"query"`
	Upstream   UpstreamParams   `yaml:"upstream"`
	Result     string           `yaml:"result,omitempty"`
	FetchedAt  time.Time        `yaml:"fetched_at"`
}

// QueryParams stores a descriptor with its bounds as strings.
type QueryParams struct {
	Keyword    string `yaml:"keyword"`
	Resolution string `yaml:"resolution,omitempty"`
	Geo        string `yaml:"geo,omitempty"`
	StartTime  string `yaml:"start_time,omitempty"`
	EndTime    string `yaml:"end_time,omitempty"`
}

// UpstreamParams records the locale settings the fetch was made with.
type UpstreamParams struct {
	Language       string `yaml:"language"`
	TimezoneOffset int    `yaml:"timezone"`
}

// WriteQueryFile saves a fetch of q to a YAML file at path.
func WriteQueryFile(path string, st types.SearchType, q *types.Query, cfg types.TrendsConfig, result string) error {
	if q == nil {
		return ErrNoObject
	}
	cfg = cfg.WithDefaults()

	qf := QueryFile{
		SearchType: st,
		Query: QueryParams{
			Keyword:    q.Keyword,
			Resolution: q.Resolution,
			Geo:        q.Geo,
		},
		Upstream: UpstreamParams{
			Language:       cfg.Language,
			TimezoneOffset: cfg.TimezoneOffset,
		},
		Result:    result,
		FetchedAt: now().UTC(),
	}
	if !q.StartTime.IsZero() {
		qf.Query.StartTime = q.StartTime.UTC().Format(time.RFC3339)
	}
	if !q.EndTime.IsZero() {
		qf.Query.EndTime = q.EndTime.UTC().Format(time.RFC3339)
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToQuery converts stored parameters back into a descriptor. The result
// still needs Construct to validate it and derive Time.
func (p QueryParams) ToQuery() (*types.Query, error) {
	q := &types.Query{
		Keyword:    p.Keyword,
		Resolution: p.Resolution,
		Geo:        p.Geo,
	}
	if p.StartTime != "" {
		t, err := ParseDate(p.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
		}
		q.StartTime = t
	}
	if p.EndTime != "" {
		t, err := ParseDate(p.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEndTime, err)
		}
		q.EndTime = t
	}
	return q, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/trends/pkg/types"
)

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, time.Now(), &buf)
	assert.Equal(t, "No archived fetches.\n", buf.String())
}

func TestFormatTable(t *testing.T) {
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{
			ID:         7,
			Keyword:    "cats",
			SearchType: types.InterestOverTime,
			TimeRange:  "2004-01-01 2026-10-14",
			FetchedAt:  now.Add(-2 * time.Hour),
			Body:       strings.Repeat("x", 2048),
		},
		{
			ID:         3,
			Keyword:    "an extraordinarily long keyword phrase",
			SearchType: types.RelatedQueries,
			FetchedAt:  now.Add(-72 * time.Hour),
			Body:       "{}",
		},
	}

	var buf bytes.Buffer
	FormatTable(entries, now, &buf)
	out := buf.String()

	assert.Contains(t, out, "interest over time")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "3 days ago")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "an extraordinarily lo...")
	assert.Contains(t, out, "2 fetches")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"cats", 10, "cats"},
		{"abcdefghij", 10, "abcdefghij"},
		{"abcdefghijk", 10, "abcdefg..."},
		{"żółw żółw żółw", 10, "żółw żó..."},
		{"日本語のキーワード検索", 8, "日本語のキ..."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, utf8.RuneCountInString(got), tt.max)
		})
	}
}

func TestFormatJSONOmitsBodies(t *testing.T) {
	entries := []Entry{{ID: 1, Keyword: "cats", SearchType: types.RelatedTopics, Body: `{"secret":"body"}`}}

	var buf bytes.Buffer
	require.NoError(t, FormatJSON(entries, &buf))
	assert.NotContains(t, buf.String(), "secret")

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "related topics", got[0]["search_type"])
	assert.EqualValues(t, 17, got[0]["bytes"])
}

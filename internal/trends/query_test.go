// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/trends/pkg/types"
)

// --- Construct ---

func TestConstructValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   *types.Query
		wantErr error
	}{
		{"nil query", nil, ErrNoObject},
		{"missing keyword", &types.Query{}, ErrNoKeyword},
		{"missing keyword with dates", &types.Query{StartTime: date(2024, time.March, 1, 0, 0)}, ErrNoKeyword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Construct(tt.query, nil)
			assert.False(t, req.Valid())
			assert.ErrorIs(t, req.Err, tt.wantErr)
			assert.Nil(t, req.Query)
			require.NotNil(t, req.Callback)
		})
	}
}

func TestConstructNormalizesDates(t *testing.T) {
	fixedNow(t, date(2026, time.October, 14, 0, 0))

	req := Construct(&types.Query{Keyword: "cats"}, nil)
	require.True(t, req.Valid())
	assert.Equal(t, "cats", req.Query.Keyword)
	assert.Equal(t, "2004-01-01 2026-10-14", req.Query.Time)
}

func TestConstructDefaultCallbackPassesThrough(t *testing.T) {
	req := Construct(&types.Query{Keyword: "cats"}, nil)

	got, err := req.Callback(nil, "result")
	require.NoError(t, err)
	assert.Equal(t, "result", got)

	boom := errors.New("boom")
	got, err = req.Callback(boom, "ignored")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, got)
}

func TestConstructKeepsCallback(t *testing.T) {
	var called bool
	cb := func(err error, result string) (string, error) {
		called = true
		return "wrapped:" + result, err
	}

	req := Construct(&types.Query{Keyword: "cats"}, cb)
	got, err := req.Callback(nil, "x")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "wrapped:x", got)
}

// --- ConstructJSON ---

func TestConstructJSON(t *testing.T) {
	fixedNow(t, date(2026, time.October, 14, 0, 0))

	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantTime string
	}{
		{"null", `null`, ErrNoObject, ""},
		{"array", `[{"keyword":"cats"}]`, ErrNoObject, ""},
		{"string", `"cats"`, ErrNoObject, ""},
		{"number", `42`, ErrNoObject, ""},
		{"missing keyword", `{"resolution":"city"}`, ErrNoKeyword, ""},
		{"empty keyword", `{"keyword":""}`, ErrNoKeyword, ""},
		{"bad start", `{"keyword":"cats","startTime":"yesterday"}`, ErrInvalidStartTime, ""},
		{"bad end", `{"keyword":"cats","endTime":true}`, ErrInvalidEndTime, ""},
		{"defaults", `{"keyword":"cats"}`, nil, "2004-01-01 2026-10-14"},
		{"date strings swapped", `{"keyword":"cats","startTime":"2024-03-10","endTime":"2024-03-01"}`, nil, "2024-03-01 2024-03-10"},
		{"unix millis", `{"keyword":"cats","startTime":1709251200000,"endTime":"2024-03-02T06:30"}`, nil, `2024-03-01T0\:0\:00 2024-03-02T6\:30\:00`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ConstructJSON([]byte(tt.input), nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, req.Err, tt.wantErr)
				assert.False(t, req.Valid())
				return
			}
			require.NoError(t, req.Err)
			assert.Equal(t, "cats", req.Query.Keyword)
			assert.Equal(t, tt.wantTime, req.Query.Time)
		})
	}
}

func TestConstructJSONScalarKeywords(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{`{"keyword":2024}`, "2024", nil},
		{`{"keyword":1.5}`, "1.5", nil},
		{`{"keyword":true}`, "true", nil},
		{`{"keyword":0}`, "", ErrNoKeyword},
		{`{"keyword":false}`, "", ErrNoKeyword},
		{`{"keyword":null}`, "", ErrNoKeyword},
		{`{"keyword":["cats"]}`, "", ErrNoKeyword},
		{`{"keyword":{"q":"cats"}}`, "", ErrNoKeyword},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			req := ConstructJSON([]byte(tt.input), nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, req.Err, tt.wantErr)
				return
			}
			require.True(t, req.Valid())
			assert.Equal(t, tt.want, req.Query.Keyword)
		})
	}
}

func TestConstructJSONInvalidSyntax(t *testing.T) {
	req := ConstructJSON([]byte(`{"keyword":`), nil)
	require.Error(t, req.Err)
	assert.Contains(t, req.Err.Error(), "decoding query")
}

func TestConstructJSONCarriesOptionalFields(t *testing.T) {
	req := ConstructJSON([]byte(`{"keyword":"cats","resolution":"city","geo":"US"}`), nil)
	require.True(t, req.Valid())
	assert.Equal(t, "city", req.Query.Resolution)
	assert.Equal(t, "US", req.Query.Geo)
}

// --- ParseDate ---

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-03-05", date(2024, time.March, 5, 0, 0), false},
		{"2024-03-05T09:05", date(2024, time.March, 5, 9, 5), false},
		{"2024-03-05T09:05:00Z", date(2024, time.March, 5, 9, 5), false},
		{"2024-03-05T09:05:00-05:00", date(2024, time.March, 5, 14, 5), false},
		{"", time.Time{}, true},
		{"03/05/2024", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

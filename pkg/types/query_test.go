package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryMarshalJSON(t *testing.T) {
	q := Query{
		Keyword:   "cats",
		StartTime: time.Date(2004, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, time.March, 5, 4, 5, 6, 7_000_000, time.FixedZone("EST", -5*3600)),
		Time:      "2004-01-01 2024-03-05",
	}
	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"keyword": "cats",
		"startTime": "2004-01-01T00:00:00.000Z",
		"endTime": "2024-03-05T09:05:06.007Z",
		"time": "2004-01-01 2024-03-05"
	}`, string(data))
}

func TestQueryMarshalJSONOptionalFields(t *testing.T) {
	data, err := json.Marshal(&Query{Keyword: "cats", Geo: "US", Resolution: "CITY"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"keyword":"cats","geo":"US","resolution":"CITY"}`, string(data))
}

func TestTrendsConfigWithDefaults(t *testing.T) {
	got := TrendsConfig{}.WithDefaults()
	assert.Equal(t, DefaultLanguage, got.Language)
	assert.Equal(t, DefaultTimezoneOffset, got.TimezoneOffset)
	assert.Equal(t, DefaultTimeout, got.Timeout)

	set := TrendsConfig{Language: "fr-FR", TimezoneOffset: -120, HTTPConfig: HTTPConfig{Timeout: time.Second}}.WithDefaults()
	assert.Equal(t, "fr-FR", set.Language)
	assert.Equal(t, -120, set.TimezoneOffset)
	assert.Equal(t, time.Second, set.Timeout)
}

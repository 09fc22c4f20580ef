package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "trends/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Default values for TrendsConfig fields left at their zero value.
const (
	DefaultLanguage       = "en-US"
	DefaultTimezoneOffset = 300
	DefaultTimeout        = 30 * time.Second
)

// TrendsConfig holds settings for the Trends client.
type TrendsConfig struct {
	HTTPConfig `yaml:",inline"`

	// Language is sent as the hl parameter of the explore call (default en-US).
	Language string `json:"language" yaml:"language"`

	// TimezoneOffset is the tz parameter, in minutes west of UTC (default 300).
	TimezoneOffset int `json:"timezone" yaml:"timezone"`

	// Cookie is an optional Cookie header value. The upstream rate limits
	// cookieless clients aggressively.
	Cookie string `json:"cookie,omitempty" yaml:"cookie,omitempty"`

	// RetryRateLimited routes both calls through a backoff loop on HTTP 429.
	RetryRateLimited bool `json:"retry_rate_limited" yaml:"retry_rate_limited"`

	// MaxRetries bounds the backoff loop. Zero uses the helper default.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// WithDefaults returns a copy of c with zero-valued fields filled in.
func (c TrendsConfig) WithDefaults() TrendsConfig {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.TimezoneOffset == 0 {
		c.TimezoneOffset = DefaultTimezoneOffset
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// ArchiveConfig holds settings for the fetch history database.
type ArchiveConfig struct {
	// Path is the SQLite database file (default trends.db).
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default number of history entries listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all component configurations.
type Config struct {
	Trends  TrendsConfig  `json:"trends" yaml:"trends"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
}

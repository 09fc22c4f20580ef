// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/pdiddy/trends/internal/httputil"
	"github.com/pdiddy/trends/pkg/types"
)

// apiBase is the Trends host. Declared as a var so tests can substitute an
// httptest server.
var apiBase = "https://www.google.com"

const explorePath = "/trends/api/explore"

// Both endpoints pad their JSON against cross-site inclusion: the explore
// body starts with ")]}'" and widget data with ")]}',".
const (
	explorePadding    = 4
	widgetDataPadding = 5
)

// Client fetches Trends reports. It holds no per-request state and is
// safe for concurrent use.
type Client struct {
	HTTP   *http.Client
	Log    zerolog.Logger
	Config types.TrendsConfig
}

// NewClient returns a Client with an HTTP client honoring cfg.Timeout.
func NewClient(cfg types.TrendsConfig, log zerolog.Logger) *Client {
	cfg = cfg.WithDefaults()
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Log:    log,
		Config: cfg,
	}
}

// Results runs the fetch described by req and hands the outcome to
// req.Callback. A request that failed validation skips the network and
// goes straight to the callback with its error.
func (c *Client) Results(ctx context.Context, st types.SearchType, req Request) (string, error) {
	cb := req.Callback
	if cb == nil {
		cb = passThrough
	}
	if !req.Valid() {
		err := req.Err
		if err == nil {
			err = ErrNoObject
		}
		return cb(err, "")
	}
	body, err := c.GetResults(ctx, st, req.Query)
	return cb(err, body)
}

// widget is one entry of the explore response's widget list.
type widget struct {
	Request map[string]any `json:"request"`
	Token   string         `json:"token"`
}

type exploreResponse struct {
	Widgets []widget `json:"widgets"`
}

// GetResults issues the explore call for q, picks the widget matching st,
// and returns the widget data body with its padding removed.
func (c *Client) GetResults(ctx context.Context, st types.SearchType, q *types.Query) (string, error) {
	ep, err := lookupEndpoint(st)
	if err != nil {
		return "", err
	}
	if q == nil {
		return "", ErrNoObject
	}
	cfg := c.Config.WithDefaults()
	tz := strconv.Itoa(cfg.TimezoneOffset)

	log := c.Log.With().Str("search_type", string(st)).Str("keyword", q.Keyword).Logger()
	ctx = log.WithContext(ctx)

	comparison, err := json.Marshal(struct {
		ComparisonItem []*types.Query `json:"comparisonItem"`
		Cat            int            `json:"cat"`
	}{[]*types.Query{q}, 0})
	if err != nil {
		return "", fmt.Errorf("encoding explore request: %w", err)
	}

	body, err := c.get(ctx, "explore", apiBase+explorePath, url.Values{
		"hl":  {cfg.Language},
		"req": {string(comparison)},
		"tz":  {tz},
	})
	if err != nil {
		return "", err
	}

	w, err := selectWidget(body, ep.pos)
	if err != nil {
		return "", err
	}

	if ep.resolution {
		if res := FormatResolution(q.Resolution); res != "" {
			if w.Request == nil {
				w.Request = map[string]any{}
			}
			w.Request["resolution"] = res
		}
	}

	widgetReq, err := json.Marshal(w.Request)
	if err != nil {
		return "", fmt.Errorf("encoding widget request: %w", err)
	}
	log.Trace().Int("widget", ep.pos).RawJSON("request", widgetReq).Msg("selected widget")

	data, err := c.get(ctx, "widgetdata", apiBase+ep.path, url.Values{
		"req":   {string(widgetReq)},
		"token": {w.Token},
		"tz":    {tz},
	})
	if err != nil {
		return "", err
	}
	if len(data) < widgetDataPadding {
		return "", fmt.Errorf("widgetdata: %w: body shorter than padding (%d bytes)", ErrMalformedResponse, len(data))
	}
	return string(data[widgetDataPadding:]), nil
}

// selectWidget strips the explore padding and returns the widget at pos.
func selectWidget(body []byte, pos int) (widget, error) {
	if len(body) < explorePadding {
		return widget{}, fmt.Errorf("explore: %w: body shorter than padding (%d bytes)", ErrMalformedResponse, len(body))
	}
	var er exploreResponse
	if err := json.Unmarshal(body[explorePadding:], &er); err != nil {
		return widget{}, fmt.Errorf("explore: %w: %v", ErrMalformedResponse, err)
	}
	if pos < 0 || pos >= len(er.Widgets) {
		return widget{}, fmt.Errorf("explore: %w: no widget at position %d (have %d)", ErrMalformedResponse, pos, len(er.Widgets))
	}
	w := er.Widgets[pos]
	if w.Token == "" {
		return widget{}, fmt.Errorf("explore: %w: widget %d has no token", ErrMalformedResponse, pos)
	}
	return w, nil
}

// get performs one GET and returns the raw body of a 2xx response.
func (c *Client) get(ctx context.Context, stage, base string, params url.Values) ([]byte, error) {
	reqURL := base + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: creating request: %w", stage, err)
	}
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}
	if c.Config.Cookie != "" {
		req.Header.Set("Cookie", c.Config.Cookie)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	var resp *http.Response
	if c.Config.RetryRateLimited {
		resp, err = httputil.DoWithRetry(ctx, client, req, c.Config.MaxRetries)
	} else {
		resp, err = client.Do(req)
	}
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", stage, err)
	}
	defer resp.Body.Close()

	zerolog.Ctx(ctx).Debug().Str("stage", stage).Int("status", resp.StatusCode).Msg("upstream responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Stage: stage, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: reading body: %w", stage, err)
	}
	return body, nil
}

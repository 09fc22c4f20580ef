// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// FormatTable writes entries as a human-readable table to w. Ages are
// relative to now.
func FormatTable(entries []Entry, now time.Time, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No archived fetches.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-24s  %-20s  %-30s  %-16s  %s\n",
		"ID", "Keyword", "Search type", "Range", "Fetched", "Size")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, e := range entries {
		fmt.Fprintf(w, "%-5d  %-24s  %-20s  %-30s  %-16s  %s\n",
			e.ID,
			truncate(e.Keyword, 24),
			truncate(string(e.SearchType), 20),
			truncate(e.TimeRange, 30),
			humanize.RelTime(e.FetchedAt, now, "ago", "from now"),
			humanize.Bytes(uint64(len(e.Body))),
		)
	}

	fmt.Fprintf(w, "\n%s\n", english.Plural(len(entries), "fetch", "fetches"))
}

type entryJSON struct {
	ID         int64     `json:"id"`
	Keyword    string    `json:"keyword"`
	SearchType string    `json:"search_type"`
	TimeRange  string    `json:"time_range"`
	FetchedAt  time.Time `json:"fetched_at"`
	Bytes      int       `json:"bytes"`
}

// FormatJSON writes entry metadata, without bodies, as indented JSON to w.
func FormatJSON(entries []Entry, w io.Writer) error {
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryJSON{
			ID:         e.ID,
			Keyword:    e.Keyword,
			SearchType: string(e.SearchType),
			TimeRange:  e.TimeRange,
			FetchedAt:  e.FetchedAt,
			Bytes:      len(e.Body),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trends/internal/archive"
	"github.com/pdiddy/trends/internal/trends"
	"github.com/pdiddy/trends/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [search type]",
	Short: "Fetch a Trends report for a keyword",
	Long: `Fetch runs the explore call for a keyword, follows the widget for the
requested search type and prints its data. Search types:

  interest-over-time, interest-by-region, related-topics, related-queries

The query comes from --keyword and the date flags, from a raw JSON
descriptor (--query-json), or from a saved query file (--from). A saved
file also supplies the search type when none is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func init() {
	addQueryFlags(fetchCmd)
	fetchCmd.Flags().String("save", "", "write the query and result to a query file")
	fetchCmd.Flags().Bool("archive", false, "record the result in the archive database")
	fetchCmd.Flags().Bool("pretty", false, "indent the JSON output")

	rootCmd.AddCommand(fetchCmd)
}

// addQueryFlags registers the flags buildRequest reads.
func addQueryFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("keyword", "", "search term")
	f.String("start", "", "range start (YYYY-MM-DD, YYYY-MM-DDThh:mm or RFC 3339)")
	f.String("end", "", "range end (default: now)")
	f.String("resolution", "", "region granularity: country, region, city or dma")
	f.String("geo", "", "restrict to a location code (e.g. US, US-CA)")
	f.String("query-json", "", "raw JSON query descriptor, or - to read it from stdin")
	f.String("from", "", "load the query from a saved query file")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	flags := cmd.Flags()

	var label string
	if len(args) == 1 {
		label = normalizeSearchType(args[0])
	}

	req, savedType, err := buildRequest(cmd)
	if err != nil {
		return err
	}
	if label == "" {
		label = string(savedType)
	}
	if label == "" {
		return fmt.Errorf("a search type is required")
	}
	st, err := trends.ParseSearchType(label)
	if err != nil {
		return err
	}

	client := trends.NewClient(cfg.Trends, logger)
	body, err := client.Results(cmd.Context(), st, req)
	if err != nil {
		return err
	}

	if path, _ := flags.GetString("save"); path != "" {
		if err := trends.WriteQueryFile(path, st, req.Query, cfg.Trends, body); err != nil {
			return err
		}
		logger.Info().Str("file", path).Msg("saved query file")
	}

	if doArchive, _ := flags.GetBool("archive"); doArchive {
		store, err := archive.Open(cfg.Archive)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Record(cmd.Context(), archive.Entry{
			Keyword:    req.Query.Keyword,
			SearchType: st,
			TimeRange:  req.Query.Time,
			Body:       body,
		})
		if err != nil {
			return err
		}
		logger.Info().Int64("id", id).Str("db", cfg.Archive.Path).Msg("archived fetch")
	}

	pretty, _ := flags.GetBool("pretty")
	return writeBody(cmd.OutOrStdout(), body, pretty)
}

// buildRequest assembles the request from whichever query source the
// flags select. The returned search type is non-empty only for saved files.
func buildRequest(cmd *cobra.Command) (trends.Request, types.SearchType, error) {
	flags := cmd.Flags()

	if from, _ := flags.GetString("from"); from != "" {
		qf, err := trends.ReadQueryFile(from)
		if err != nil {
			return trends.Request{}, "", err
		}
		q, err := qf.Query.ToQuery()
		if err != nil {
			return trends.Request{Err: err}, qf.SearchType, nil
		}
		return trends.Construct(q, nil), qf.SearchType, nil
	}

	if raw, _ := flags.GetString("query-json"); raw != "" {
		data := []byte(raw)
		if raw == "-" {
			var err error
			if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
				return trends.Request{}, "", fmt.Errorf("reading query from stdin: %w", err)
			}
		}
		return trends.ConstructJSON(data, nil), "", nil
	}

	q := &types.Query{}
	q.Keyword, _ = flags.GetString("keyword")
	q.Resolution, _ = flags.GetString("resolution")
	q.Geo, _ = flags.GetString("geo")

	if s, _ := flags.GetString("start"); s != "" {
		t, err := trends.ParseDate(s)
		if err != nil {
			return trends.Request{Err: fmt.Errorf("%w: %v", trends.ErrInvalidStartTime, err)}, "", nil
		}
		q.StartTime = t
	}
	if s, _ := flags.GetString("end"); s != "" {
		t, err := trends.ParseDate(s)
		if err != nil {
			return trends.Request{Err: fmt.Errorf("%w: %v", trends.ErrInvalidEndTime, err)}, "", nil
		}
		q.EndTime = t
	}
	return trends.Construct(q, nil), "", nil
}

// normalizeSearchType accepts hyphenated or underscored labels in any case.
func normalizeSearchType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", " ", "_", " ").Replace(s)
}

func writeBody(w io.Writer, body string, pretty bool) error {
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(body), "", "  "); err == nil {
			buf.WriteByte('\n')
			_, err := buf.WriteTo(w)
			return err
		}
		logger.Warn().Msg("result is not valid JSON, printing as-is")
	}
	_, err := fmt.Fprintln(w, body)
	return err
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trends/internal/archive"
	"github.com/pdiddy/trends/internal/trends"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List fetches recorded in the archive",
	Long: `History lists fetches recorded with fetch --archive, newest first. Use
history show <id> to print the stored result of one fetch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		flags := cmd.Flags()

		filter := archive.Filter{}
		filter.Keyword, _ = flags.GetString("keyword")
		filter.Limit, _ = flags.GetInt("limit")
		if label, _ := flags.GetString("type"); label != "" {
			st, err := trends.ParseSearchType(normalizeSearchType(label))
			if err != nil {
				return err
			}
			filter.SearchType = st
		}

		store, err := archive.Open(cfg.Archive)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if asJSON, _ := flags.GetBool("json"); asJSON {
			return archive.FormatJSON(entries, cmd.OutOrStdout())
		}
		archive.FormatTable(entries, time.Now(), cmd.OutOrStdout())
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the stored result of an archived fetch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		store, err := archive.Open(loadConfig().Archive)
		if err != nil {
			return err
		}
		defer store.Close()

		e, err := store.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		pretty, _ := cmd.Flags().GetBool("pretty")
		return writeBody(cmd.OutOrStdout(), e.Body, pretty)
	},
}

func init() {
	historyCmd.Flags().String("keyword", "", "only fetches for this keyword")
	historyCmd.Flags().String("type", "", "only fetches of this search type")
	historyCmd.Flags().Int("limit", 0, "maximum number of entries (default: archive.max_results)")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	historyShowCmd.Flags().Bool("pretty", false, "indent the JSON output")

	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the trends CLI: fetch Google Trends
// reports for a keyword and browse previously archived fetches.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured by the root command before any subcommand runs.
var logger = zerolog.Nop()

// rootCmd is the base command for the trends CLI.
var rootCmd = &cobra.Command{
	Use:   "trends",
	Short: "Query the Google Trends web API",
	Long: `trends fetches interest over time, interest by region, related topics and
related queries for a keyword from the Google Trends web API. Results are
printed as the upstream's JSON with its padding removed, and can be saved
to a query file or recorded in a local SQLite archive.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetCount("verbose")
		initLogging(verbose)
		return initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./trends.yaml or ~/.config/trends/trends.yaml)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	setDefaults()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package main implements the browse CLI, a terminal client of the category
// proxy served by cmd/api.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/vodbrowse/internal/browse"
	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/platform/config"
	"github.com/taibuivan/vodbrowse/internal/platform/constants"
)

var (
	// settings holds the environment defaults of every flag below
	settings *config.ClientConfig
	// settingsErr is reported before any command runs
	settingsErr error

	// serverURL is the base URL of the proxy
	serverURL string
	// timeout bounds every proxy round trip
	timeout time.Duration
	// disableFilter turns the category denylist off
	disableFilter bool
	// verbose enables debug logs on stderr
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse video sources by category",
	Long: `browse is a terminal client for the vodbrowse category proxy.
It lists sources and categories and pages through listings with the same
selection and infinite-scroll rules as the web category page.`,
	Version:      constants.AppVersion,
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return settingsErr
	},
}

func init() {
	settings, settingsErr = config.LoadClient()
	if settingsErr != nil {
		settings = &config.ClientConfig{}
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", settings.ServerURL, "category proxy base URL (VODBROWSE_SERVER)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", settings.Timeout, "timeout of a single proxy call (VODBROWSE_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVar(&disableFilter, "disable-filter", settings.DisableContentFilter, "show denylisted categories (DISABLE_YELLOW_FILTER)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log proxy failures to stderr")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(listCmd)
}

// newAPIClient connects to the proxy named by --server.
func newAPIClient() *browse.APIClient {
	return browse.NewAPIClient(serverURL, timeout)
}

// newController wires a controller over api with the filter flag read once
// from the command line.
func newController(api browse.Backend, navigator browse.Navigator) *browse.Controller {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return browse.NewController(api, navigator, catalog.NewFilter(disableFilter), logger)
}

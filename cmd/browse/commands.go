// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taibuivan/vodbrowse/internal/browse"
	"github.com/taibuivan/vodbrowse/internal/browse/tui"
	"github.com/taibuivan/vodbrowse/internal/catalog"
)

// tuiCmd opens the interactive browser
var tuiCmd = &cobra.Command{
	Use:   "tui [route]",
	Short: "Open the interactive category browser",
	Long: `Open the interactive category browser.

Examples:
  # Start on the first source
  browse tui

  # Resume a category page
  browse tui '/category?resourceId=siteA&categoryId=1'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

// sourcesCmd lists enabled sources
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List enabled sources",
	Args:  cobra.NoArgs,
	RunE:  runSources,
}

// categoriesCmd lists the categories of a source
var categoriesCmd = &cobra.Command{
	Use:   "categories <resourceId>",
	Short: "List the categories of a source",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategories,
}

var listPages int

// listCmd pages through a category
var listCmd = &cobra.Command{
	Use:   "list <resourceId> [categoryId]",
	Short: "Print the listing of a category",
	Long: `Print the listing of a category, following infinite scroll for up
to --pages pages. Without a category id the whole source is listed on a
single page.

Examples:
  browse list siteA 1 --pages 3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listPages, "pages", 1, "maximum number of pages to load")
}

func runTUI(cmd *cobra.Command, args []string) error {
	route := browse.Route{}
	if len(args) == 1 {
		parsed, err := browse.ParseRoute(args[0])
		if err != nil {
			return err
		}
		route = parsed
	}

	api := newAPIClient()
	defer api.Close()

	model := tui.NewModel(newController(api, nil), route, timeout)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func runSources(cmd *cobra.Command, _ []string) error {
	api := newAPIClient()
	defer api.Close()

	sources, err := api.Sources(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME")
	for _, s := range sources {
		fmt.Fprintf(w, "%s\t%s\n", s.Key, s.Name)
	}
	return w.Flush()
}

func runCategories(cmd *cobra.Command, args []string) error {
	api := newAPIClient()
	defer api.Close()

	categories, err := api.Categories(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE_ID\tTYPE_NAME")
	for _, c := range append([]catalog.Category{catalog.AllCategory}, categories...) {
		fmt.Fprintf(w, "%s\t%s\n", c.TypeID, c.TypeName)
	}
	return w.Flush()
}

func runList(cmd *cobra.Command, args []string) error {
	route := browse.Route{ResourceID: args[0]}
	if len(args) == 2 {
		route.CategoryID = args[1]
	}

	api := newAPIClient()
	defer api.Close()

	controller := newController(api, nil)
	state, err := loadPages(cmd.Context(), controller, route, listPages)
	if err != nil {
		return err
	}

	return printListing(cmd.OutOrStdout(), state)
}

// loadPages mounts route and scrolls until pages are loaded or the listing
// ends.
func loadPages(ctx context.Context, controller *browse.Controller, route browse.Route, pages int) (browse.State, error) {
	controller.Mount(ctx, route)

	state := controller.Snapshot()
	if state.Source == nil || state.Source.Key != route.ResourceID {
		return state, fmt.Errorf("unknown source %q", route.ResourceID)
	}
	if state.Category == nil {
		return state, fmt.Errorf("source %q has no category %q", route.ResourceID, route.CategoryID)
	}

	scroller := browse.NewScroller(controller)
	for page := 1; page < pages; page++ {
		if !scroller.Visible(ctx) {
			break
		}
	}

	return controller.Snapshot(), nil
}

func printListing(out io.Writer, state browse.State) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tYEAR\tTYPE\tEPISODES")
	for _, item := range state.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", item.ID, item.Title, item.Year, item.TypeName, len(item.Episodes))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	more := "end of listing"
	if state.Pagination.HasMore {
		more = "more pages available"
	}
	_, err := fmt.Fprintf(out, "\n%d items, page %d, %s\n", len(state.Results), state.Pagination.CurrentPage, more)
	return err
}

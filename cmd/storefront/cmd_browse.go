package main

import (
	"fmt"
	"net/url"

	"storefront/internal/service"

	"github.com/spf13/cobra"
)

var (
	browseSearch  string
	browseColumns int
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Print the product grid",
	Long: `Fetch the catalog once and print it as a grid of cards.

--search keeps products whose name contains the term, ignoring case.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseSearch, "search", "", "filter products by name")
	browseCmd.Flags().IntVar(&browseColumns, "columns", 3, "cards per row")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a := newApp(cfg)
	page := a.page(a.store, nil, nil)
	page.Mount(cmd.Context())

	term := a.terminal()
	term.Columns = browseColumns

	view := page.Render(url.Values{service.SearchParam: {browseSearch}})
	fmt.Fprintln(cmd.OutOrStdout(), term.Page(view))
	return nil
}

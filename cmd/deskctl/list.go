package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"case_desk_app_go/config"
	"case_desk_app_go/handlers"
	"case_desk_app_go/screens"
	"case_desk_app_go/templates/pages"

	"github.com/spf13/cobra"
)

var (
	listFilter string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:       "list <cases|clients|court-dates|users>",
	Short:     "Print the filtered view of a screen",
	Long:      `Fetch a screen from the REST API and print the rows it would show for --filter and --search.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"cases", "clients", "court-dates", "users"},
	RunE:      runList,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "category filter, e.g. active or upcoming")
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "free-text search")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	page, notices, err := loadListPage(cmd.Context(), newAPIClient(cfg), args[0], listFilter, listSearch)
	if err != nil {
		return err
	}
	for _, n := range notices {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", n.Level, n.Message)
	}
	return writeTable(cmd.OutOrStdout(), page)
}

// listScreen is the part of an entity screen the list command needs
type listScreen interface {
	Load(ctx context.Context) error
	SetFilter(value string)
	SetSearch(q string)
	Notices() []screens.Notice
}

// loadListPage loads the named screen and projects it into table rows.
// A failed fetch is returned as an error with the screen notices.
func loadListPage(ctx context.Context, api handlers.Backend, name, filter, search string) (pages.ListPage, []screens.Notice, error) {
	var (
		s     listScreen
		build func() pages.ListPage
	)
	switch name {
	case "cases":
		cs := screens.NewCasesScreen(api)
		s, build = cs, func() pages.ListPage { return pages.BuildCasesPage(pages.Layout{}, cs) }
	case "clients":
		cs := screens.NewClientsScreen(api)
		s, build = cs, func() pages.ListPage { return pages.BuildClientsPage(pages.Layout{}, cs) }
	case "court-dates":
		ds := screens.NewCourtDatesScreen(api)
		s, build = ds, func() pages.ListPage { return pages.BuildCourtDatesPage(pages.Layout{}, ds) }
	case "users":
		us := screens.NewUsersScreen(api)
		s, build = us, func() pages.ListPage { return pages.BuildUsersPage(pages.Layout{}, us) }
	default:
		return pages.ListPage{}, nil, fmt.Errorf("unknown screen %q", name)
	}

	if err := s.Load(ctx); err != nil {
		return pages.ListPage{}, s.Notices(), fmt.Errorf("failed to load %s: %w", name, err)
	}
	s.SetFilter(filter)
	s.SetSearch(search)
	return build(), s.Notices(), nil
}

// writeTable prints the page as aligned columns followed by a row count
func writeTable(w io.Writer, page pages.ListPage) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(page.Columns, "\t")))

	if len(page.Rows) == 0 {
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, page.Empty)
		return err
	}

	for _, row := range page.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.Text
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d %s\n", len(page.Rows), strings.ToLower(page.Heading))
	return err
}

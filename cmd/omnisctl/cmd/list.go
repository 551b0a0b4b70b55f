package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alexander-D-Karpov/omnis/internal/logbook"
	"github.com/Alexander-D-Karpov/omnis/internal/search"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

func newListCmd(s *session) *cobra.Command {
	var (
		sortFlag string
		query    string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored log entries",
		Long: `List the stored log entries as cards, newest first unless the
sort preference or --sort says otherwise.

Examples:
  omnisctl list
  omnisctl list --sort asc
  omnisctl list --query coffee`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			prefs, err := s.store.LoadPreferences(ctx)
			if err != nil {
				return err
			}

			order := prefs.Sort
			if sortFlag != "" {
				order = types.SortOrder(sortFlag)
				if !order.Valid() {
					return fmt.Errorf("invalid --sort %q (expected asc or desc)", sortFlag)
				}
			}

			logs, err := s.store.GetAllLogs(ctx)
			if err != nil {
				return err
			}

			logbook.Sort(logs, order)
			logs = search.NewEngine(s.cfg).Filter(logs, query)

			printCards(cmd.OutOrStdout(), logbook.Cards(logs))
			return nil
		},
	}

	listCmd.Flags().StringVarP(&sortFlag, "sort", "s", "", "sort order: asc or desc")
	listCmd.Flags().StringVarP(&query, "query", "q", "", "only show entries matching this fuzzy query")

	return listCmd
}

func newFindCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Show the entry that best matches a query",
		Long: `Show the single entry whose date or event matches the query most
closely.

Examples:
  omnisctl find dinner`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := s.store.GetAllLogs(cmd.Context())
			if err != nil {
				return err
			}

			best := search.Best(logs, args[0])
			if best < 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MutedStyle.Render("No results found"))
				return nil
			}

			printCards(cmd.OutOrStdout(), logbook.Cards(logs[best:best+1]))
			return nil
		},
	}
}

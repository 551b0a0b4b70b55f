package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alexander-D-Karpov/omnis/internal/logbook"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

func newAddCmd(s *session) *cobra.Command {
	var date string

	addCmd := &cobra.Command{
		Use:   "add <event>...",
		Short: "Add a log entry",
		Long: `Add a log entry with one or more events. Each argument is an event;
an argument may also hold several events separated by ";" or "；".
The date defaults to today.

Examples:
  omnisctl add "morning run" "coffee"
  omnisctl add --date 2024-01-01 "A；B"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events := logbook.ParseEvents(strings.Join(args, "\n"))
			if len(events) == 0 {
				return errors.New("at least one non-empty event is required")
			}

			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			entry, err := s.store.AppendLog(cmd.Context(), types.LogEntry{DateStr: date, Events: events})
			if err != nil {
				return err
			}

			s.log.Debug().Int64("id", entry.ID).Msg("entry added")
			fmt.Fprintf(cmd.OutOrStdout(), "Added entry #%d\n", entry.ID)
			return nil
		},
	}

	addCmd.Flags().StringVarP(&date, "date", "d", "", "date label for the entry (default today)")

	return addCmd
}

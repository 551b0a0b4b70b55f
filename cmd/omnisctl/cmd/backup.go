package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the stored log list as JSON",
		Long: `Write the stored log list in its stored JSON form, to a file or to
standard output.

Examples:
  omnisctl export
  omnisctl export backup.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := s.store.Export(cmd.Context(), cmd.OutOrStdout())
				if err == nil {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}

			n, err := s.store.Export(cmd.Context(), f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries to %s\n", n, args[0])
			return nil
		},
	}
}

func newImportCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored log list with a JSON backup",
		Long: `Replace the stored log list with the entries in a JSON backup. A
file that does not decode as a log list leaves the store untouched.
Use "-" to read from standard input.

Examples:
  omnisctl import backup.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
			}

			logs, err := s.store.Import(cmd.Context(), r)
			if err != nil {
				return fmt.Errorf("invalid backup file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries\n", len(logs))
			return nil
		},
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

func newPrefsCmd(s *session) *cobra.Command {
	var (
		icon     string
		sortFlag string
	)

	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the icon and sort preferences",
		Long: `Show the stored preferences, changing them first when --icon or
--sort is given.

Examples:
  omnisctl prefs
  omnisctl prefs --sort asc --icon book`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if cmd.Flags().Changed("icon") {
				if err := s.store.SetIconPreference(ctx, icon); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("sort") {
				if err := s.store.SetSortPreference(ctx, types.SortOrder(sortFlag)); err != nil {
					return err
				}
			}

			prefs, err := s.store.LoadPreferences(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSetting(out, "icon", prefs.Icon)
			printSetting(out, "sort", prefs.Sort.String())
			return nil
		},
	}

	prefsCmd.Flags().StringVar(&icon, "icon", "", "icon shown next to the log list title")
	prefsCmd.Flags().StringVar(&sortFlag, "sort", "", "sort order: asc or desc")

	return prefsCmd
}

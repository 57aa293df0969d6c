package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javajack/cardxlsx"
	"github.com/javajack/cardxlsx/internal/clierr"
)

func newInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default preferences file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cardxlsx.DefaultPreferencesFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return clierr.Newf(clierr.OutputExists, "%s already exists (use --force to overwrite)", path)
			}
			if err := cardxlsx.DefaultPreferences().Save(path); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Created")+" "+path+
				dimStyle.Render(" (add your list ids under lists:)"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

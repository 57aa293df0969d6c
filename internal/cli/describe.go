package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajack/cardxlsx"
)

func newDescribeCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <inputfile>",
		Short: "Print an outline of what would be rendered",
		Args:  requireCard,
		RunE: func(cmd *cobra.Command, args []string) error {
			card, prefs, err := loadInputs(flags, args[0])
			if err != nil {
				return err
			}
			outline, err := cardxlsx.Describe(card, prefs)
			if err != nil {
				return classify(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), outline)
			return nil
		},
	}
}

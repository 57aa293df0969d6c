package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajack/cardxlsx"
	"github.com/javajack/cardxlsx/internal/clierr"
)

func newValidateCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <inputfile>",
		Short: "Report problems in a card and the preferences without rendering",
		Args:  requireCard,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Preference problems are reported as issues, not as a load failure.
			card, prefs, err := readInputs(flags, args[0], cardxlsx.ReadPreferences)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			issues := cardxlsx.Validate(card, prefs)
			if len(issues) == 0 {
				fmt.Fprintln(out, successStyle.Render("OK:")+" no issues")
				return nil
			}
			for _, is := range issues {
				style := warnStyle
				if is.Severity == cardxlsx.SeverityError {
					style = errorStyle
				}
				fmt.Fprintln(out, style.Render(is.String()))
			}
			if cardxlsx.HasErrors(issues) {
				return &clierr.SilentError{Code: 1}
			}
			return nil
		},
	}
}

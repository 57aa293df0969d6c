// Package cli implements the cardxlsx command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajack/cardxlsx"
	"github.com/javajack/cardxlsx/internal/clierr"
)

// version is set at build time via ldflags.
var version = "dev"

type rootFlags struct {
	config  string
	output  string
	verbose bool
	noColor bool
}

// NewRootCommand builds the cardxlsx command tree.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "cardxlsx <inputfile>",
		Short: "Render an exported Trello card as a formatted xlsx sheet",
		Long: `cardxlsx reads one exported card (JSON) and writes a single-sheet xlsx
document with its header, description, checklists and comments. Labels,
time zones, date formats and list names come from a YAML preferences file.`,
		Version:       version,
		Args:          requireCard,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), flags.verbose)
			if flags.noColor || os.Getenv("NO_COLOR") != "" {
				disableColor()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), flags, args[0])
		},
	}

	root.PersistentFlags().StringVarP(&flags.config, "config", "c", cardxlsx.DefaultPreferencesFile, "path to the preferences file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log each rendering stage")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable color output")
	root.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: derived from the card name)")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Wrap(clierr.Usage, err)
	})

	root.AddCommand(newDescribeCommand(flags))
	root.AddCommand(newValidateCommand(flags))
	root.AddCommand(newInitCommand())
	return root
}

// Execute runs the root command and exits with the error's exit code.
func Execute() {
	err := NewRootCommand().Execute()
	if err == nil {
		return
	}

	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	cliErr := classify(err)
	fmt.Fprintln(os.Stderr, errorStyle.Render("error:")+" "+cliErr.Error())
	os.Exit(cliErr.ExitCode())
}

func requireCard(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return clierr.New(clierr.Usage, "usage: cardxlsx <inputfile>")
	}
	return nil
}

func setupLogging(w io.Writer, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// loadInputs reads the preferences and the card, in that order of checks:
// input presence, preferences, card contents.
func loadInputs(flags *rootFlags, cardPath string) (*cardxlsx.Card, *cardxlsx.Preferences, error) {
	return readInputs(flags, cardPath, cardxlsx.LoadPreferences)
}

func readInputs(flags *rootFlags, cardPath string,
	readPrefs func(string) (*cardxlsx.Preferences, error),
) (*cardxlsx.Card, *cardxlsx.Preferences, error) {
	if _, err := os.Stat(cardPath); err != nil {
		if os.IsNotExist(err) {
			return nil, nil, clierr.Newf(clierr.NotFound, "%s does not exist", cardPath).
				WithDetails(map[string]any{"path": cardPath})
		}
		return nil, nil, fmt.Errorf("checking input: %w", err)
	}

	prefs, err := readPrefs(flags.config)
	if err != nil {
		return nil, nil, classify(err)
	}
	log.WithField("path", flags.config).Debug("preferences loaded")

	card, err := cardxlsx.ReadCard(cardPath)
	if err != nil {
		return nil, nil, classify(err)
	}
	log.WithFields(log.Fields{
		"card":       card.Name,
		"checklists": len(card.Checklists),
		"actions":    len(card.Actions),
	}).Debug("card parsed")
	return card, prefs, nil
}

func runRender(out io.Writer, flags *rootFlags, cardPath string) error {
	card, prefs, err := loadInputs(flags, cardPath)
	if err != nil {
		return err
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = cardxlsx.OutputFileName(card.Name)
	}
	if err := cardxlsx.PrepareOutput(outputPath); err != nil {
		return clierr.Newf(clierr.OutputExists,
			"%s already exists.\nYou should rename or delete it.", outputPath).
			WithDetails(map[string]any{"path": outputPath})
	}

	if err := cardxlsx.RenderFile(card, prefs, outputPath, cardxlsx.WithLogger(log.StandardLogger())); err != nil {
		return classify(err)
	}
	fmt.Fprintln(out, successStyle.Render("Done:")+" file "+outputPath+" created")
	return nil
}

// classify maps library errors onto CLI error codes.
func classify(err error) *clierr.Error {
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		return cliErr
	}
	switch {
	case errors.Is(err, cardxlsx.ErrCardNotFound), errors.Is(err, cardxlsx.ErrPreferencesNotFound):
		return clierr.Wrap(clierr.NotFound, err)
	case errors.Is(err, cardxlsx.ErrMalformedCard),
		errors.Is(err, cardxlsx.ErrMissingField),
		errors.Is(err, cardxlsx.ErrInvalidDate):
		return clierr.Wrap(clierr.ParseError, err)
	case errors.Is(err, cardxlsx.ErrInvalidPreferences):
		return clierr.Wrap(clierr.InvalidConfig, err)
	case errors.Is(err, cardxlsx.ErrOutputExists):
		return clierr.Wrap(clierr.OutputExists, err)
	default:
		return clierr.Wrap(clierr.InternalError, err)
	}
}

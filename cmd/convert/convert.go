package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peter88213/aeon3md"
	"github.com/peter88213/aeon3md/internal/cli"
	"github.com/peter88213/aeon3md/internal/errors"
	"github.com/peter88213/aeon3md/internal/logger"
	"github.com/peter88213/aeon3md/render"
)

// Command creates the convert command, which writes Markdown documents next
// to an Aeon Timeline 3 project or CSV export.
func Command(settings *cli.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <source> [suffix]",
		Short: "Convert a .aeon or .csv file to Markdown",
		Long: `Convert Aeon Timeline 3 project data to Markdown.

The suffix selects the document and is appended to the source name:
the output of "novel.aeon" with suffix "_report" is "novel_report.md".
Run "aeon3md sets" to list the available suffixes.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if settings.Silent {
				cmd.SilenceErrors = true
			}
			err := run(cmd, settings, args)
			if err != nil {
				logFailure(err)
			}
			return err
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

// setupFlags configures flags specific to the convert command.
func setupFlags(cmd *cobra.Command, settings *cli.Settings) {
	cmd.Flags().BoolVarP(&settings.Force, "force", "f", false, "Overwrite existing documents, keeping a .bak copy")
	cmd.Flags().BoolVarP(&settings.Silent, "silent", "s", false, "Suppress messages; existing documents are overwritten")
	cmd.Flags().BoolVarP(&settings.All, "all", "a", false, "Write the documents of all built-in template sets")
}

func run(cmd *cobra.Command, settings *cli.Settings, args []string) error {
	source := args[0]

	labels, err := settings.Labels(source)
	if err != nil {
		return err
	}
	conv := aeon3md.Open(source).Labels(labels)
	if settings.Force || settings.Silent {
		conv = conv.Force()
	}

	var suffixes []string
	set, custom, err := settings.TemplateSet()
	if err != nil {
		return err
	}
	if custom {
		conv = conv.TemplateSet(set)
		suffixes = append(suffixes, set.Suffix)
	}
	switch {
	case settings.All:
		suffixes = append(suffixes, render.Suffixes()...)
	case len(args) > 1:
		suffixes = append(suffixes, args[1])
	case !custom:
		suffixes = append(suffixes, aeon3md.DefaultSuffix)
	}

	paths, warnings, err := conv.WriteAll(cmd.Context(), unique(suffixes)...)
	if settings.Silent {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", w.Message)
	}
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "%q written.\n", p)
	}
	return nil
}

// unique drops repeated suffixes, keeping the first occurrence. A custom set
// may share its suffix with a built-in one.
func unique(suffixes []string) []string {
	seen := make(map[string]bool, len(suffixes))
	out := suffixes[:0]
	for _, s := range suffixes {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// logFailure records where a failed conversion went wrong.
func logFailure(err error) {
	var ee *errors.EnhancedError
	if !errors.As(err, &ee) {
		return
	}
	logger.Default().Module("convert").Debug("conversion failed",
		logger.String("component", ee.GetComponent()),
		logger.String("category", ee.GetCategory()),
		logger.String("detail", ee.Detail()))
}

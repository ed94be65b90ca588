package sets

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/peter88213/aeon3md/internal/cli"
	"github.com/peter88213/aeon3md/render"
)

// Command creates the sets command, which lists the template sets.
func Command(settings *cli.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List the available template sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets := render.Builtin()
			set, ok, err := settings.TemplateSet()
			if err != nil {
				return err
			}
			if ok {
				sets = append(sets, set)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range sets {
				fmt.Fprintf(w, "%s\t%s\n", s.Suffix, s.Description)
			}
			return w.Flush()
		},
	}
}

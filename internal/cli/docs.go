package cli

import (
	"fmt"
	"os"
	"sort"

	"hypercart/internal/docs"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show on-demand documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := docs.Topics()
				sort.Strings(topics)
				rows := make([][]string, 0, len(topics))
				for _, t := range topics {
					rows = append(rows, []string{t})
				}
				return writeOut(cmd, app, withTable(map[string]any{"topics": topics}, []string{"TOPIC"}, rows))
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `hypercart docs` to list topics)", topic))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), docs.Render(body, width, docsStyle(cmd)))
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap rendered docs at this width")

	return cmd
}

// docsStyle keeps escape codes out of pipes and files.
func docsStyle(cmd *cobra.Command) string {
	if f, ok := cmd.OutOrStdout().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return "dark"
	}
	return "notty"
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/samegraph/internal/adapters/render"
)

func (c *CLI) newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [targets...]",
		Short: "Resolve targets into a dependency graph and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptionsFrom(cmd)
			result, err := c.app.Run(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			if result == nil || opts.Inspect {
				// --inspect suppresses the static dump in every output
				// mode; App.Run opens the interactive browser only when
				// the resolved output mode is inspect.
				return nil
			}
			render.Tree(cmd.OutOrStdout(), result)
			return nil
		},
	}
	targetFlags(cmd)
	return cmd
}

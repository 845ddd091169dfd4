package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets [targets...]",
		Short: "Resolve targets and list the requested (input) nodes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Run(cmd.Context(), args, runOptionsFrom(cmd))
			if err != nil {
				return err
			}
			if result == nil {
				return nil
			}
			out := cmd.OutOrStdout()
			for _, n := range result.InputNodes {
				_, _ = fmt.Fprintln(out, n.Base().Target().FullPath())
			}
			return nil
		},
	}
	targetFlags(cmd)
	return cmd
}

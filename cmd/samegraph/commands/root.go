// Package commands implements the CLI commands for the samegraph tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/samegraph/internal/app"
	"go.trai.ch/samegraph/internal/build"
	"go.trai.ch/samegraph/internal/engine/graph"
)

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, targetNames []string, opts app.RunOptions) (*graph.Result, error)
}

// CLI represents the command line interface for samegraph.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "samegraph",
		Short:         "Parses build specifications into a resolved dependency graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGraphCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func targetFlags(cmd *cobra.Command) {
	cmd.Flags().String("root", ".", "Workspace root directory")
	cmd.Flags().String("object-dir", ".samegraph/obj", "Directory node lowerings write generated outputs under")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, inspect, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().BoolP("inspect", "i", false, "Open the interactive graph browser once construction finishes (inspect output mode only)")
}

func runOptionsFrom(cmd *cobra.Command) app.RunOptions {
	root, _ := cmd.Flags().GetString("root")
	objectDir, _ := cmd.Flags().GetString("object-dir")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	ci, _ := cmd.Flags().GetBool("ci")
	inspect, _ := cmd.Flags().GetBool("inspect")

	if ci {
		outputMode = "linear"
	}

	return app.RunOptions{
		RootDir:    root,
		ObjectDir:  objectDir,
		OutputMode: outputMode,
		Inspect:    inspect,
	}
}

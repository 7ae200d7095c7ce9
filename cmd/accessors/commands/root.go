// Package commands implements the CLI commands for accessors.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/accessors/internal/app"
	"go.trai.ch/accessors/internal/build"
)

// CLI represents the command line interface for accessors.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	out     io.Writer
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "accessors",
		Short:         "Type-safe accessors for dependency catalogs and project trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("dir", "C", ".", "Directory to start the model file search from")
	flags.String("cache-dir", "", "State directory holding workspaces and the generator classpath")
	flags.Int("workers", 0, "Number of requests generated in parallel")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("projects-extension", "", "Name the project accessors are resolved under")
	flags.Bool("project-accessors", true, "Generate type-safe project accessors")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		out:     os.Stdout,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
	c.rootCmd.SetOut(w)
}

// options reads the app options of a run from the parsed flags of cmd.
func options(cmd *cobra.Command) app.Options {
	dir, _ := cmd.Flags().GetString("dir")
	return app.Options{Dir: dir, Flags: cmd.Flags()}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/accessors/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(c.out, "accessors version %s\n", build.Version)
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate and compile the accessors of the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Generate(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}
			newPrinter(c.out).report(report)
			return nil
		},
	}
}

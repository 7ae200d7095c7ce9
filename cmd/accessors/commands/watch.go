package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/accessors/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the accessors whenever the model file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinter(c.out)
			return c.app.Watch(cmd.Context(), options(cmd), func(r *app.Report, err error) {
				if err != nil {
					p.failure(err)
					return
				}
				p.report(r)
			})
		},
	}
}

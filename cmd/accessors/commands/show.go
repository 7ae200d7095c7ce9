package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [names...]",
		Short: "Show the compiled accessors of catalogs and projects",
		Long: "Show the compiled accessors bound to each name. Names are catalog names or the projects extension; " +
			"without names every catalog and the project tree are shown.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Generate(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}
			reg := report.Registry
			p := newPrinter(c.out)

			if len(args) == 0 {
				for _, view := range reg.ListCatalogs() {
					p.catalog(view)
				}
				if root, ok := reg.Projects(); ok {
					p.projects(reg.ProjectsExtension(), root)
				}
				return nil
			}

			for _, name := range args {
				if name == reg.ProjectsExtension() {
					root, ok := reg.Projects()
					if !ok {
						return zerr.With(zerr.Wrap(domain.ErrCatalogNotFound, "project accessors were not generated"), "name", name)
					}
					p.projects(name, root)
					continue
				}
				view, ok := reg.FindCatalog(name)
				if !ok {
					return zerr.With(zerr.Wrap(domain.ErrCatalogNotFound, "no accessors bound to "+name), "name", name)
				}
				p.catalog(view)
			}
			return nil
		},
	}
}

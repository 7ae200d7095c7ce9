package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/accessors/internal/app"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/engine/registry"
	"go.trai.ch/accessors/internal/ui/output"
	"go.trai.ch/accessors/internal/ui/style"
)

// printer renders reports and accessor views.
type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)
	return &printer{out: out}
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// report prints one line per request and a summary.
func (p *printer) report(r *app.Report) {
	for _, res := range r.Results {
		if res.Executed {
			p.line("%s %s", style.Success.Render(style.Check), res.Request.Label())
			continue
		}
		p.line("%s %s %s", style.Cached.Render(style.Tilde), res.Request.Label(), style.Muted.Render("(cached)"))
	}
	if r.Validation != nil {
		p.line("%s project accessors skipped", style.Failure.Render(style.Warning))
	}
	executed := r.Executed()
	p.line("%s", style.Muted.Render(fmt.Sprintf("%d generated, %d up to date", executed, len(r.Results)-executed)))
}

func (p *printer) failure(err error) {
	p.line("%s %s", style.Failure.Render(style.Cross), err.Error())
}

// catalog prints the libraries, bundles and versions of one catalog.
func (p *printer) catalog(v *registry.CatalogView) {
	p.line("%s", style.Heading.Render(v.Name()))

	if names := v.Names(domain.MemberKindLibrary); len(names) > 0 {
		p.line("  libraries")
		for _, name := range names {
			lib, _ := v.Library(name)
			p.line("    %s %s", name, style.Muted.Render(lib.String()))
		}
	}
	if names := v.Names(domain.MemberKindBundle); len(names) > 0 {
		p.line("  bundles")
		for _, name := range names {
			b, _ := v.Bundle(name)
			members := make([]string, 0, len(b.Libraries))
			for _, lib := range b.Libraries {
				members = append(members, lib.Alias)
			}
			p.line("    %s %s", name, style.Muted.Render("["+strings.Join(members, ", ")+"]"))
		}
	}
	if names := v.Names(domain.MemberKindVersion); len(names) > 0 {
		p.line("  versions")
		for _, name := range names {
			version, _ := v.Version(name)
			p.line("    %s %s", name, style.Muted.Render(version))
		}
	}
}

// projects prints the project tree below root, one project per line.
func (p *printer) projects(extension string, root *registry.ProjectView) {
	p.line("%s", style.Heading.Render(extension))
	var walk func(v *registry.ProjectView, depth int)
	walk = func(v *registry.ProjectView, depth int) {
		name := v.Name()
		if name == "" {
			name = "root project"
		}
		p.line("%s%s %s", strings.Repeat("  ", depth), name, style.Muted.Render(v.Path()))
		for _, child := range v.Children() {
			walk(child, depth+1)
		}
	}
	walk(root, 1)
}

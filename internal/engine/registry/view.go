package registry

import (
	"go.trai.ch/accessors/internal/core/domain"
)

// Library is a catalog library as exposed by a compiled accessor.
type Library struct {
	Alias    string
	Group    string
	Artifact string
	Version  string
}

// Module returns the group:artifact notation.
func (l Library) Module() string {
	return l.Group + ":" + l.Artifact
}

func (l Library) String() string {
	if l.Version == "" {
		return l.Module()
	}
	return l.Module() + ":" + l.Version
}

// Bundle is a catalog bundle with its members resolved.
type Bundle struct {
	Alias     string
	Libraries []Library
}

// Dependency is a dependency on a project of the build.
type Dependency struct {
	Name string
	Path string
}

// CatalogView reads one compiled catalog.
type CatalogView struct {
	name     string
	class    *domain.Class
	registry *Registry
}

// Name returns the catalog name.
func (v *CatalogView) Name() string {
	return v.name
}

// Library returns a library by alias or accessor name.
func (v *CatalogView) Library(alias string) (Library, bool) {
	m, ok := v.class.MemberOf(domain.MemberKindLibrary, alias)
	if !ok || len(m.Args) != 4 {
		return Library{}, false
	}
	return Library{Alias: m.Args[0], Group: m.Args[1], Artifact: m.Args[2], Version: m.Args[3]}, true
}

// Bundle returns a bundle by alias, with its member libraries.
func (v *CatalogView) Bundle(alias string) (Bundle, bool) {
	class, ok := v.nested("Bundles")
	if !ok {
		return Bundle{}, false
	}
	m, ok := class.MemberOf(domain.MemberKindBundle, alias)
	if !ok || len(m.Args) == 0 {
		return Bundle{}, false
	}
	b := Bundle{Alias: m.Args[0]}
	for _, member := range m.Args[1:] {
		if lib, ok := v.Library(member); ok {
			b.Libraries = append(b.Libraries, lib)
		}
	}
	return b, true
}

// Version returns a version by alias.
func (v *CatalogView) Version(alias string) (string, bool) {
	class, ok := v.nested("Versions")
	if !ok {
		return "", false
	}
	m, ok := class.MemberOf(domain.MemberKindVersion, alias)
	if !ok || len(m.Args) != 2 {
		return "", false
	}
	return m.Args[1], true
}

// Names returns the aliases of one kind: libraries, bundles or versions.
func (v *CatalogView) Names(kind domain.MemberKind) []string {
	class := v.class
	switch kind {
	case domain.MemberKindBundle:
		class, _ = v.nested("Bundles")
	case domain.MemberKindVersion:
		class, _ = v.nested("Versions")
	}
	if class == nil {
		return nil
	}
	var names []string
	for _, m := range class.MembersOf(kind) {
		names = append(names, m.Symbol)
	}
	return names
}

// Has reports whether any accessor of the catalog answers to name.
func (v *CatalogView) Has(name string) bool {
	if _, ok := v.Library(name); ok {
		return true
	}
	if _, ok := v.Bundle(name); ok {
		return true
	}
	_, ok := v.Version(name)
	return ok
}

func (v *CatalogView) nested(method string) (*domain.Class, bool) {
	m, ok := v.class.MemberOf(domain.MemberKindAccessor, method)
	if !ok {
		return nil, false
	}
	return v.registry.class(m.Result)
}

// ProjectView reads the compiled accessor of one project. Child classes are loaded on demand.
type ProjectView struct {
	class    *domain.Class
	registry *Registry
}

func (r *Registry) project(className string) (*ProjectView, bool) {
	class, ok := r.class(className)
	if !ok {
		return nil, false
	}
	return &ProjectView{class: class, registry: r}, true
}

// Path returns the project path.
func (v *ProjectView) Path() string {
	if m, ok := v.class.MemberOf(domain.MemberKindValue, "Path"); ok && len(m.Args) == 1 {
		return m.Args[0]
	}
	return ""
}

// Name returns the project name; empty for the root project.
func (v *ProjectView) Name() string {
	return v.Dependency().Name
}

// Dependency returns the project dependency the accessor produces.
func (v *ProjectView) Dependency() Dependency {
	m, ok := v.class.MemberOf(domain.MemberKindProject, "Dependency")
	if !ok || len(m.Args) != 2 {
		return Dependency{}
	}
	return Dependency{Name: m.Args[0], Path: m.Args[1]}
}

// Child returns a direct subproject by project name or accessor name.
func (v *ProjectView) Child(name string) (*ProjectView, bool) {
	m, ok := v.class.MemberOf(domain.MemberKindAccessor, name)
	if !ok {
		return nil, false
	}
	return v.registry.project(m.Result)
}

// Children returns the direct subprojects in accessor order.
func (v *ProjectView) Children() []*ProjectView {
	var out []*ProjectView
	for _, m := range v.class.MembersOf(domain.MemberKindAccessor) {
		if child, ok := v.registry.project(m.Result); ok {
			out = append(out, child)
		}
	}
	return out
}

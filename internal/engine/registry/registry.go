// Package registry binds logical accessor names to compiled classes.
package registry

import (
	"errors"
	"slices"
	"sync"

	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/core/ports"
)

// Registry accumulates the classpath of a run and resolves logical names to loaded classes.
// Each logical name and each class is loaded at most once; the first caller pays the cost.
type Registry struct {
	loader            ports.ClassLoader
	logger            ports.Logger
	projectsExtension string

	mu       sync.Mutex
	exported map[string]bool
	names    map[string]string
	catalogs []string

	factories sync.Map // logical name -> *factoryCell
	classes   sync.Map // class name -> *classCell
}

type factoryCell struct {
	once    sync.Once
	factory *Factory
}

type classCell struct {
	once  sync.Once
	class *domain.Class
	err   error
}

// New creates an empty Registry. projectsExtension is the logical name of the project accessors,
// domain.DefaultProjectsExtension when empty. logger may be nil.
func New(loader ports.ClassLoader, projectsExtension string, logger ports.Logger) *Registry {
	if projectsExtension == "" {
		projectsExtension = domain.DefaultProjectsExtension
	}
	return &Registry{
		loader:            loader,
		logger:            logger,
		projectsExtension: projectsExtension,
		exported:          make(map[string]bool),
		names:             make(map[string]string),
	}
}

// Bind exports the classes directories of set that were not exported yet and makes the given
// catalogs, and the project accessors when projects is set, resolvable by logical name.
func (r *Registry) Bind(set domain.GeneratedArtifactSet, catalogs []string, projects bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var fresh []string
	for _, dir := range set.Classes {
		if !r.exported[dir] {
			r.exported[dir] = true
			fresh = append(fresh, dir)
		}
	}
	if len(fresh) > 0 {
		r.loader.Export(fresh)
	}

	for _, name := range catalogs {
		if _, ok := r.names[name]; ok {
			continue
		}
		r.names[name] = domain.CatalogClassName(name)
		r.catalogs = append(r.catalogs, name)
	}
	slices.Sort(r.catalogs)

	if projects {
		r.names[r.projectsExtension] = domain.RootProjectAccessorClass
	}
}

// ProjectsExtension returns the logical name of the project accessors.
func (r *Registry) ProjectsExtension() string {
	return r.projectsExtension
}

// Resolve returns the factory bound to a logical name: a catalog name or the projects extension.
// It reports false when nothing was generated for the name, e.g. for an empty catalog.
func (r *Registry) Resolve(name string) (*Factory, bool) {
	r.mu.Lock()
	className, bound := r.names[name]
	r.mu.Unlock()
	if !bound {
		return nil, false
	}

	v, _ := r.factories.LoadOrStore(name, &factoryCell{})
	cell := v.(*factoryCell)
	cell.once.Do(func() {
		class, ok := r.class(className)
		if !ok {
			return
		}
		cell.factory = &Factory{name: name, class: class, registry: r}
	})
	return cell.factory, cell.factory != nil
}

// ListCatalogs returns the views of the bound catalogs that have a class, ordered by name.
func (r *Registry) ListCatalogs() []*CatalogView {
	r.mu.Lock()
	names := slices.Clone(r.catalogs)
	r.mu.Unlock()

	views := make([]*CatalogView, 0, len(names))
	for _, name := range names {
		if view, ok := r.FindCatalog(name); ok {
			views = append(views, view)
		}
	}
	return views
}

// FindCatalog returns the view of one bound catalog.
func (r *Registry) FindCatalog(name string) (*CatalogView, bool) {
	if name == r.projectsExtension {
		return nil, false
	}
	f, ok := r.Resolve(name)
	if !ok {
		return nil, false
	}
	return f.Catalog()
}

// Projects returns the view of the root project, if project accessors were bound.
func (r *Registry) Projects() (*ProjectView, bool) {
	f, ok := r.Resolve(r.projectsExtension)
	if !ok {
		return nil, false
	}
	return f.Projects()
}

// class loads a class by name at most once.
func (r *Registry) class(name string) (*domain.Class, bool) {
	v, _ := r.classes.LoadOrStore(name, &classCell{})
	cell := v.(*classCell)
	cell.once.Do(func() {
		cell.class, cell.err = r.loader.LoadClass(name)
		if cell.err != nil && !errors.Is(cell.err, domain.ErrClassNotFound) && r.logger != nil {
			r.logger.Error(cell.err)
		}
	})
	return cell.class, cell.err == nil && cell.class != nil
}

// Factory is the handle of one resolved logical name.
type Factory struct {
	name     string
	class    *domain.Class
	registry *Registry
}

// Name returns the logical name the factory was resolved for.
func (f *Factory) Name() string {
	return f.name
}

// Class returns the loaded class.
func (f *Factory) Class() *domain.Class {
	return f.class
}

// Catalog returns the catalog view of the factory, if it resolves a catalog.
func (f *Factory) Catalog() (*CatalogView, bool) {
	if f.class.Kind != domain.ClassKindCatalog {
		return nil, false
	}
	return &CatalogView{name: f.name, class: f.class, registry: f.registry}, true
}

// Projects returns the view of the root project, if the factory resolves the project accessors.
func (f *Factory) Projects() (*ProjectView, bool) {
	if f.class.Kind != domain.ClassKindRootAccessor {
		return nil, false
	}
	m, ok := f.class.MemberOf(domain.MemberKindAccessor, domain.RootProjectClass)
	if !ok {
		return nil, false
	}
	return f.registry.project(m.Result)
}

// Package config provides the configuration loader for accessors.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ModelProvider using an accessors.yaml file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader. logger may be nil.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest accessors.yaml at or above cwd and builds the model it declares.
func (l *Loader) Load(cwd string) (*domain.Model, error) {
	path, err := FindConfig(cwd)
	if err != nil {
		return nil, err
	}

	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}
	return l.buildModel(path, &file)
}

// FindConfig walks up from dir until it finds accessors.yaml.
func FindConfig(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for current := abs; ; {
		candidate := filepath.Join(current, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no model file found"), "cwd", abs)
}

func readAndUnmarshalYAML[T any](path string, out *T) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the user's working directory
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	return nil
}

func (l *Loader) buildModel(path string, file *File) (*domain.Model, error) {
	rootName := file.RootProject
	if rootName == "" {
		rootName = filepath.Base(filepath.Dir(path))
	}

	seen := make(map[string]bool, len(file.Include))
	for _, include := range file.Include {
		if seen[include] {
			l.warn("project " + include + " is included more than once")
		}
		seen[include] = true
	}

	root, err := domain.NewProjectTree(rootName, file.Include)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	names := make([]string, 0, len(file.Catalogs))
	for name := range file.Catalogs {
		names = append(names, name)
	}
	slices.Sort(names)

	catalogs := make([]*domain.CatalogModel, 0, len(names))
	for _, name := range names {
		catalog, err := buildCatalog(name, file.Catalogs[name])
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		if catalog.IsEmpty() {
			l.warn("catalog " + name + " declares no aliases and generates nothing")
		}
		catalogs = append(catalogs, catalog)
	}

	model, err := domain.NewModel(path, root, catalogs)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return model, nil
}

func buildCatalog(name string, dto CatalogDTO) (*domain.CatalogModel, error) {
	libraries := make([]domain.DependencyAlias, 0, len(dto.Libraries))
	for alias, lib := range dto.Libraries {
		d, err := libraryAlias(alias, lib)
		if err != nil {
			return nil, zerr.With(err, "catalog", name)
		}
		libraries = append(libraries, d)
	}

	bundles := make([]domain.BundleAlias, 0, len(dto.Bundles))
	for alias, members := range dto.Bundles {
		bundles = append(bundles, domain.BundleAlias{Alias: alias, Members: members})
	}

	versions := make([]domain.VersionAlias, 0, len(dto.Versions))
	for alias, version := range dto.Versions {
		versions = append(versions, domain.VersionAlias{Alias: alias, Version: version})
	}

	return domain.NewCatalogModel(name, libraries, bundles, versions)
}

func libraryAlias(alias string, lib LibraryDTO) (domain.DependencyAlias, error) {
	if lib.Notation != "" {
		return domain.ParseCoordinates(alias, lib.Notation)
	}

	module := lib.Module
	if module == "" && (lib.Group != "" || lib.Name != "") {
		module = lib.Group + ":" + lib.Name
	}
	d, err := domain.ParseCoordinates(alias, module)
	if err != nil {
		return domain.DependencyAlias{}, err
	}
	if d.Version != "" && (lib.Version != "" || lib.VersionRef != "") {
		return domain.DependencyAlias{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidCoordinates, "library "+alias+" declares its version twice"),
			"module", module,
		)
	}
	if lib.Version != "" && lib.VersionRef != "" {
		return domain.DependencyAlias{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidCoordinates, "library "+alias+" sets both version and version.ref"),
			"module", module,
		)
	}
	if lib.Version != "" {
		d.Version = lib.Version
	}
	d.VersionRef = lib.VersionRef
	return d, nil
}

func (l *Loader) warn(msg string) {
	if l.Logger != nil {
		l.Logger.Warn(msg)
	}
}

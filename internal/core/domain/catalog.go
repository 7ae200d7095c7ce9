package domain

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// DependencyAlias binds a user-chosen alias to library coordinates.
// Exactly one of Version and VersionRef is normally set; VersionRef names a version alias of the same catalog.
type DependencyAlias struct {
	Alias      string
	Group      string
	Artifact   string
	Version    string
	VersionRef string
}

// Module returns the "group:artifact" notation of the dependency.
func (d DependencyAlias) Module() string {
	return d.Group + ":" + d.Artifact
}

// BundleAlias groups several dependency aliases under one name.
// Members keep their declared order.
type BundleAlias struct {
	Alias   string
	Members []string
}

// VersionAlias binds an alias to a version string.
type VersionAlias struct {
	Alias   string
	Version string
}

// CatalogModel is an immutable, validated dependency catalog.
// Each alias set is stored sorted by alias so iteration order never depends on declaration order.
type CatalogModel struct {
	name         string
	dependencies []DependencyAlias
	bundles      []BundleAlias
	versions     []VersionAlias
}

// NewCatalogModel validates the alias sets and builds an immutable catalog.
func NewCatalogModel(
	name string,
	dependencies []DependencyAlias,
	bundles []BundleAlias,
	versions []VersionAlias,
) (*CatalogModel, error) {
	m := &CatalogModel{
		name:         name,
		dependencies: slices.Clone(dependencies),
		bundles:      make([]BundleAlias, len(bundles)),
		versions:     slices.Clone(versions),
	}
	for i, b := range bundles {
		m.bundles[i] = BundleAlias{Alias: b.Alias, Members: slices.Clone(b.Members)}
	}

	slices.SortFunc(m.dependencies, func(a, b DependencyAlias) int { return cmp.Compare(a.Alias, b.Alias) })
	slices.SortFunc(m.bundles, func(a, b BundleAlias) int { return cmp.Compare(a.Alias, b.Alias) })
	slices.SortFunc(m.versions, func(a, b VersionAlias) int { return cmp.Compare(a.Alias, b.Alias) })

	if err := m.validate(); err != nil {
		return nil, zerr.With(err, "catalog", name)
	}
	return m, nil
}

// AliasPattern is the pattern every catalog name and alias must match.
var AliasPattern = regexp.MustCompile(`^[a-zA-Z][A-Za-z0-9_.\-]*$`)

// reservedLibraryAliases would shadow the group accessors of the catalog class.
var reservedLibraryAliases = []string{"bundles", "versions"}

func (m *CatalogModel) validate() error {
	if !AliasPattern.MatchString(m.name) {
		return zerr.With(zerr.Wrap(ErrInvalidAlias, "catalog name "+m.name), "pattern", AliasPattern.String())
	}

	libraries := make([]string, len(m.dependencies))
	for i, d := range m.dependencies {
		libraries[i] = d.Alias
		if slices.Contains(reservedLibraryAliases, Symbol(d.Alias)) {
			return zerr.With(zerr.Wrap(ErrReservedAlias, "library "+d.Alias), "reserved", reservedLibraryAliases)
		}
		if d.Group == "" || d.Artifact == "" {
			return zerr.With(zerr.Wrap(ErrInvalidCoordinates, "library "+d.Alias), "module", d.Module())
		}
	}
	bundles := make([]string, len(m.bundles))
	for i, b := range m.bundles {
		bundles[i] = b.Alias
	}
	versions := make([]string, len(m.versions))
	for i, v := range m.versions {
		versions[i] = v.Alias
	}

	if err := validateAliasSet("library", libraries); err != nil {
		return err
	}
	if err := validateAliasSet("bundle", bundles); err != nil {
		return err
	}
	if err := validateAliasSet("version", versions); err != nil {
		return err
	}

	for _, d := range m.dependencies {
		if d.VersionRef == "" {
			continue
		}
		if _, ok := m.Version(d.VersionRef); !ok {
			return zerr.With(zerr.Wrap(ErrUnknownAlias, "library "+d.Alias+" references version "+d.VersionRef), "library", d.Alias)
		}
	}
	for _, b := range m.bundles {
		for _, member := range b.Members {
			if _, ok := m.Dependency(member); !ok {
				return zerr.With(zerr.Wrap(ErrUnknownAlias, "bundle "+b.Alias+" references library "+member), "bundle", b.Alias)
			}
		}
	}
	return nil
}

// validateAliasSet checks one sorted alias set for malformed, duplicate and colliding aliases.
func validateAliasSet(kind string, aliases []string) error {
	seen := make(map[string]string, len(aliases))
	for i, alias := range aliases {
		if !AliasPattern.MatchString(alias) {
			return zerr.With(zerr.Wrap(ErrInvalidAlias, kind+" "+alias), "pattern", AliasPattern.String())
		}
		if i > 0 && aliases[i-1] == alias {
			return duplicateAlias(kind, alias)
		}
		name := TypeName(alias)
		if other, ok := seen[name]; ok {
			return zerr.With(duplicateAlias(kind, alias), "collides_with", other)
		}
		seen[name] = alias
	}
	return nil
}

func duplicateAlias(kind, alias string) error {
	return zerr.With(zerr.Wrap(ErrDuplicateAlias, kind+" "+alias), "kind", kind)
}

// Name returns the catalog name.
func (m *CatalogModel) Name() string {
	return m.name
}

// Dependencies returns the dependency aliases sorted by alias.
func (m *CatalogModel) Dependencies() []DependencyAlias {
	return slices.Clone(m.dependencies)
}

// Bundles returns the bundle aliases sorted by alias.
func (m *CatalogModel) Bundles() []BundleAlias {
	out := make([]BundleAlias, len(m.bundles))
	for i, b := range m.bundles {
		out[i] = BundleAlias{Alias: b.Alias, Members: slices.Clone(b.Members)}
	}
	return out
}

// Versions returns the version aliases sorted by alias.
func (m *CatalogModel) Versions() []VersionAlias {
	return slices.Clone(m.versions)
}

// Dependency looks up a dependency alias.
func (m *CatalogModel) Dependency(alias string) (DependencyAlias, bool) {
	i, ok := slices.BinarySearchFunc(m.dependencies, alias, func(d DependencyAlias, a string) int {
		return cmp.Compare(d.Alias, a)
	})
	if !ok {
		return DependencyAlias{}, false
	}
	return m.dependencies[i], true
}

// Version looks up a version alias.
func (m *CatalogModel) Version(alias string) (VersionAlias, bool) {
	i, ok := slices.BinarySearchFunc(m.versions, alias, func(v VersionAlias, a string) int {
		return cmp.Compare(v.Alias, a)
	})
	if !ok {
		return VersionAlias{}, false
	}
	return m.versions[i], true
}

// ResolvedVersion returns the concrete version of a dependency, following its version reference.
func (m *CatalogModel) ResolvedVersion(d DependencyAlias) string {
	if d.VersionRef == "" {
		return d.Version
	}
	v, _ := m.Version(d.VersionRef)
	return v.Version
}

// IsEmpty reports whether the catalog declares no aliases at all.
func (m *CatalogModel) IsEmpty() bool {
	return len(m.dependencies) == 0 && len(m.bundles) == 0 && len(m.versions) == 0
}

// ParseCoordinates parses "group:artifact" or "group:artifact:version" into a dependency alias.
func ParseCoordinates(alias, notation string) (DependencyAlias, error) {
	parts := strings.Split(notation, ":")
	if len(parts) < 2 || len(parts) > 3 || slices.Contains(parts, "") {
		return DependencyAlias{}, zerr.With(zerr.Wrap(ErrInvalidCoordinates, "library "+alias), "notation", notation)
	}
	d := DependencyAlias{Alias: alias, Group: parts[0], Artifact: parts[1]}
	if len(parts) == 3 {
		d.Version = parts[2]
	}
	return d, nil
}

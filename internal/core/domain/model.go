package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Model is the declarative input of one run: the catalogs and the project tree.
type Model struct {
	// Catalogs are sorted by name.
	Catalogs []*CatalogModel
	Root     *ProjectNode
	// ConfigPath is the file the model was loaded from.
	ConfigPath string
}

// NewModel builds a model, sorting catalogs by name.
// It fails with ErrClassNameCollision when a catalog generates a class name that another
// catalog or a project generates too. All collisions are reported at once.
func NewModel(configPath string, root *ProjectNode, catalogs []*CatalogModel) (*Model, error) {
	sorted := slices.Clone(catalogs)
	slices.SortFunc(sorted, func(a, b *CatalogModel) int { return cmp.Compare(a.Name(), b.Name()) })
	m := &Model{Catalogs: sorted, Root: root, ConfigPath: configPath}
	if err := m.checkClassNames(); err != nil {
		return nil, err
	}
	return m, nil
}

// Catalog returns the catalog with the given name.
func (m *Model) Catalog(name string) (*CatalogModel, bool) {
	for _, c := range m.Catalogs {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// checkClassNames reports catalog classes that clash with each other or with project classes.
// Clashes among projects are left to project validation.
func (m *Model) checkClassNames() error {
	owners := make(map[string]string)
	var conflicts []string
	claim := func(class, owner string) {
		if prev, ok := owners[class]; ok {
			conflicts = append(conflicts, fmt.Sprintf("%s and %s both generate class %s", prev, owner, class))
			return
		}
		owners[class] = owner
	}

	for _, c := range m.Catalogs {
		if c.IsEmpty() {
			continue
		}
		class := CatalogClassName(c.Name())
		claim(class, "catalog "+c.Name())
		claim(class+BundlesClassSuffix, "bundles of catalog "+c.Name())
		claim(class+VersionsClassSuffix, "versions of catalog "+c.Name())
	}
	if m.Root != nil {
		for node := range m.Root.Walk() {
			class := ProjectClassName(node.Path)
			if prev, ok := owners[class]; ok {
				conflicts = append(conflicts, fmt.Sprintf("%s and project %s both generate class %s", prev, node.Path, class))
			}
		}
	}

	if len(conflicts) == 0 {
		return nil
	}
	err := zerr.Wrap(ErrClassNameCollision, strings.Join(conflicts, "; "))
	return zerr.With(err, "conflicts", len(conflicts))
}

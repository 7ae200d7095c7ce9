package generator

import (
	"fmt"

	"github.com/dave/jennifer/jen"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/zerr"
)

func catalog(s domain.CatalogSource) (*jen.File, error) {
	m := s.Model
	if m == nil {
		return nil, zerr.New("catalog source without model")
	}

	className := s.ClassName()
	bundlesClass := className + domain.BundlesClassSuffix
	versionsClass := className + domain.VersionsClassSuffix

	libraries := make([]accessor, 0, len(m.Dependencies())+2)
	for _, d := range m.Dependencies() {
		version := m.ResolvedVersion(d)
		libraries = append(libraries, accessor{
			name:   domain.TypeName(d.Alias),
			doc:    fmt.Sprintf("%s returns the %s library.", domain.TypeName(d.Alias), d.Module()),
			result: jen.Id("Library"),
			value:  jen.Id("newLibrary").Call(literals(d.Alias, d.Group, d.Artifact, version)...),
		})
	}
	sortAccessors(libraries)
	libraries = append(libraries,
		accessor{
			name:   "Bundles",
			doc:    "Bundles returns the bundles of the " + m.Name() + " catalog.",
			result: jen.Id(bundlesClass),
			value:  jen.Id(bundlesClass).Values(),
		},
		accessor{
			name:   "Versions",
			doc:    "Versions returns the versions of the " + m.Name() + " catalog.",
			result: jen.Id(versionsClass),
			value:  jen.Id(versionsClass).Values(),
		},
	)

	var bundles []accessor
	for _, b := range m.Bundles() {
		bundles = append(bundles, accessor{
			name:   domain.TypeName(b.Alias),
			doc:    fmt.Sprintf("%s returns the %s bundle.", domain.TypeName(b.Alias), b.Alias),
			result: jen.Id("Bundle"),
			value:  jen.Id("newBundle").Call(literals(append([]string{b.Alias}, b.Members...)...)...),
		})
	}
	sortAccessors(bundles)

	var versions []accessor
	for _, v := range m.Versions() {
		versions = append(versions, accessor{
			name:   domain.TypeName(v.Alias),
			doc:    fmt.Sprintf("%s returns the %s version.", domain.TypeName(v.Alias), v.Alias),
			result: jen.Id("VersionRef"),
			value:  jen.Id("newVersionRef").Call(literals(v.Alias, v.Version)...),
		})
	}
	sortAccessors(versions)

	f := newFile()
	if err := declare(f, className, domain.ClassKindCatalog, className+" exposes the "+m.Name()+" catalog.", libraries); err != nil {
		return nil, err
	}
	f.Line()
	if err := declare(f, bundlesClass, domain.ClassKindBundles, bundlesClass+" exposes the bundles of the "+m.Name()+" catalog.", bundles); err != nil {
		return nil, err
	}
	f.Line()
	if err := declare(f, versionsClass, domain.ClassKindVersions, versionsClass+" exposes the versions of the "+m.Name()+" catalog.", versions); err != nil {
		return nil, err
	}
	return f, nil
}

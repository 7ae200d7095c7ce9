package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/core/ports/mocks"
	"go.trai.ch/accessors/internal/engine/registry"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func libsClasses() map[string]*domain.Class {
	return map[string]*domain.Class{
		"LibrariesForLibs": {
			Name: "LibrariesForLibs",
			Kind: domain.ClassKindCatalog,
			Members: []domain.Member{
				{
					Symbol: "guava", Method: "Guava", Kind: domain.MemberKindLibrary, Result: "Library",
					Args: []string{"guava", "com.google.guava", "guava", "31.1"},
				},
				{Symbol: "Bundles", Method: "Bundles", Kind: domain.MemberKindAccessor, Result: "LibrariesForLibsBundles"},
				{Symbol: "Versions", Method: "Versions", Kind: domain.MemberKindAccessor, Result: "LibrariesForLibsVersions"},
			},
		},
		"LibrariesForLibsBundles": {
			Name: "LibrariesForLibsBundles",
			Kind: domain.ClassKindBundles,
			Members: []domain.Member{{
				Symbol: "testing", Method: "Testing", Kind: domain.MemberKindBundle, Result: "Bundle",
				Args: []string{"testing", "guava"},
			}},
		},
		"LibrariesForLibsVersions": {
			Name: "LibrariesForLibsVersions",
			Kind: domain.ClassKindVersions,
			Members: []domain.Member{{
				Symbol: "guavaVersion", Method: "GuavaVersion", Kind: domain.MemberKindVersion, Result: "VersionRef",
				Args: []string{"guavaVersion", "31.1"},
			}},
		},
	}
}

func projectClasses() map[string]*domain.Class {
	project := func(name, class, path string, children ...domain.Member) *domain.Class {
		members := []domain.Member{
			{Symbol: name, Method: "Dependency", Kind: domain.MemberKindProject, Result: "ProjectDependency", Args: []string{name, path}},
			{Symbol: "Path", Method: "Path", Kind: domain.MemberKindValue, Result: "string", Args: []string{path}},
		}
		return &domain.Class{Name: class, Kind: domain.ClassKindProject, Members: append(members, children...)}
	}
	app := domain.Member{Symbol: "App", Method: "App", Kind: domain.MemberKindAccessor, Result: "AppProjectDependency"}
	coreUtils := domain.Member{Symbol: "CoreUtils", Method: "CoreUtils", Kind: domain.MemberKindAccessor, Result: "CoreUtilsProjectDependency"}
	return map[string]*domain.Class{
		"RootProjectAccessor": {
			Name: "RootProjectAccessor",
			Kind: domain.ClassKindRootAccessor,
			Members: []domain.Member{
				app,
				coreUtils,
				{Symbol: "RootProject", Method: "RootProject", Kind: domain.MemberKindAccessor, Result: "RootProject"},
			},
		},
		"RootProject":                project("", "RootProject", ":", app, coreUtils),
		"AppProjectDependency":       project("app", "AppProjectDependency", ":app"),
		"CoreUtilsProjectDependency": project("core-utils", "CoreUtilsProjectDependency", ":core-utils"),
	}
}

// expectClasses serves classes from a fixed table.
func expectClasses(loader *mocks.MockClassLoader, classes map[string]*domain.Class) {
	loader.EXPECT().LoadClass(gomock.Any()).DoAndReturn(func(name string) (*domain.Class, error) {
		if c, ok := classes[name]; ok {
			return c, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrClassNotFound, "class "+name), "class", name)
	}).AnyTimes()
}

func classes(dirs ...string) domain.GeneratedArtifactSet {
	return domain.GeneratedArtifactSet{Classes: dirs}
}

func TestResolve_Catalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockClassLoader(ctrl)
	loader.EXPECT().Export([]string{"/ws/a/classes"})
	expectClasses(loader, libsClasses())

	reg := registry.New(loader, "", nil)
	reg.Bind(classes("/ws/a/classes"), []string{"libs"}, false)

	f, ok := reg.Resolve("libs")
	require.True(t, ok)
	assert.Equal(t, "libs", f.Name())
	assert.Equal(t, "LibrariesForLibs", f.Class().Name)

	view, ok := f.Catalog()
	require.True(t, ok)

	lib, ok := view.Library("guava")
	require.True(t, ok)
	assert.Equal(t, "com.google.guava:guava:31.1", lib.String())

	bundle, ok := view.Bundle("testing")
	require.True(t, ok)
	assert.Equal(t, []registry.Library{lib}, bundle.Libraries)

	version, ok := view.Version("guavaVersion")
	require.True(t, ok)
	assert.Equal(t, "31.1", version)

	for _, name := range []string{"guava", "testing", "guavaVersion"} {
		assert.True(t, view.Has(name), name)
	}
	assert.False(t, view.Has("junit"))
	assert.Equal(t, []string{"guava"}, view.Names(domain.MemberKindLibrary))
	assert.Equal(t, []string{"testing"}, view.Names(domain.MemberKindBundle))
	assert.Equal(t, []string{"guavaVersion"}, view.Names(domain.MemberKindVersion))
}

func TestResolve_Projects(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockClassLoader(ctrl)
	loader.EXPECT().Export(gomock.Any())
	expectClasses(loader, projectClasses())

	reg := registry.New(loader, "", nil)
	reg.Bind(classes("/ws/p/classes"), nil, true)

	f, ok := reg.Resolve(domain.DefaultProjectsExtension)
	require.True(t, ok)
	for _, name := range []string{"app", "coreUtils"} {
		_, ok := f.Class().MemberOf(domain.MemberKindAccessor, name)
		assert.True(t, ok, name)
	}

	root, ok := reg.Projects()
	require.True(t, ok)
	assert.Equal(t, ":", root.Path())
	assert.Empty(t, root.Name())

	utils, ok := root.Child("core-utils")
	require.True(t, ok)
	assert.Equal(t, ":core-utils", utils.Path())
	assert.Equal(t, registry.Dependency{Name: "core-utils", Path: ":core-utils"}, utils.Dependency())

	var paths []string
	for _, child := range root.Children() {
		paths = append(paths, child.Path())
	}
	assert.Equal(t, []string{":app", ":core-utils"}, paths)

	_, ok = root.Child("missing")
	assert.False(t, ok)
}

func TestResolve_LoadsOncePerName(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockClassLoader(ctrl)
	loader.EXPECT().Export(gomock.Any())
	loader.EXPECT().LoadClass("LibrariesForLibs").Return(libsClasses()["LibrariesForLibs"], nil).Times(1)

	reg := registry.New(loader, "", nil)
	reg.Bind(classes("/ws/a/classes"), []string{"libs"}, false)

	const callers = 32
	factories := make([]*registry.Factory, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			factories[i], _ = reg.Resolve("libs")
		}()
	}
	wg.Wait()

	require.NotNil(t, factories[0])
	for _, f := range factories {
		assert.Same(t, factories[0], f)
	}
}

func TestResolve_Misses(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockClassLoader(ctrl)
	loader.EXPECT().Export(gomock.Any())
	loader.EXPECT().
		LoadClass("LibrariesForEmpty").
		Return(nil, zerr.Wrap(domain.ErrClassNotFound, "class LibrariesForEmpty")).
		Times(1)

	reg := registry.New(loader, "", nil)

	_, ok := reg.Resolve("libs")
	assert.False(t, ok, "unbound names never reach the class loader")

	reg.Bind(classes("/ws/a/classes"), []string{"empty"}, false)
	_, ok = reg.Resolve("empty")
	assert.False(t, ok)
	_, ok = reg.Resolve("empty")
	assert.False(t, ok)

	_, ok = reg.Projects()
	assert.False(t, ok)
}

func TestBind_ExportsEachDirectoryOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockClassLoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Export([]string{"/ws/a/classes", "/ws/b/classes"}),
		loader.EXPECT().Export([]string{"/ws/c/classes"}),
	)

	reg := registry.New(loader, "", nil)
	reg.Bind(classes("/ws/a/classes", "/ws/b/classes"), nil, false)
	reg.Bind(classes("/ws/b/classes"), nil, false)
	reg.Bind(classes("/ws/a/classes", "/ws/c/classes"), nil, false)
}

func TestListCatalogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockClassLoader(ctrl)
	loader.EXPECT().Export(gomock.Any())

	table := libsClasses()
	table["LibrariesForAndroid"] = &domain.Class{Name: "LibrariesForAndroid", Kind: domain.ClassKindCatalog}
	expectClasses(loader, table)

	reg := registry.New(loader, "", nil)
	reg.Bind(classes("/ws/a/classes"), []string{"libs", "empty", "android"}, false)

	var names []string
	for _, view := range reg.ListCatalogs() {
		names = append(names, view.Name())
	}
	assert.Equal(t, []string{"android", "libs"}, names)

	view, ok := reg.FindCatalog("libs")
	require.True(t, ok)
	assert.Equal(t, "libs", view.Name())
	_, ok = reg.FindCatalog("empty")
	assert.False(t, ok)
}

func TestProjectsExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockClassLoader(ctrl)
	loader.EXPECT().Export(gomock.Any())
	expectClasses(loader, projectClasses())

	reg := registry.New(loader, "modules", nil)
	reg.Bind(classes("/ws/p/classes"), nil, true)

	assert.Equal(t, "modules", reg.ProjectsExtension())
	_, ok := reg.Resolve("projects")
	assert.False(t, ok)
	_, ok = reg.Resolve("modules")
	assert.True(t, ok)
}

package generator_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/engine/generator"
)

func libsCatalog(t *testing.T) *domain.CatalogModel {
	t.Helper()
	m, err := domain.NewCatalogModel("libs",
		[]domain.DependencyAlias{
			{Alias: "guava", Group: "com.google.guava", Artifact: "guava", VersionRef: "guavaVersion"},
			{Alias: "commons-lang", Group: "org.apache.commons", Artifact: "commons-lang3", Version: "3.12.0"},
		},
		[]domain.BundleAlias{{Alias: "testing", Members: []string{"guava"}}},
		[]domain.VersionAlias{{Alias: "guavaVersion", Version: "31.1"}},
	)
	require.NoError(t, err)
	return m
}

// methods parses a generated file and returns the method names declared on each receiver type.
func methods(t *testing.T, content []byte) map[string][]string {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "gen.go", content, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessorsPackage, file.Name.Name)

	out := make(map[string][]string)
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil {
			continue
		}
		recv := fn.Recv.List[0].Type.(*ast.Ident).Name
		out[recv] = append(out[recv], fn.Name.Name)
	}
	return out
}

// typeCheck checks generated files together with the generator classpath.
func typeCheck(t *testing.T, files ...domain.GeneratedFile) {
	t.Helper()
	fset := token.NewFileSet()
	var parsed []*ast.File
	for _, f := range append(files, generator.SupportSource()) {
		file, err := parser.ParseFile(fset, f.FileName, f.Content, 0)
		require.NoError(t, err, f.FileName)
		parsed = append(parsed, file)
	}
	conf := types.Config{}
	_, err := conf.Check(domain.AccessorsPackage, fset, parsed, nil)
	require.NoError(t, err)
}

func TestGenerate_Catalog(t *testing.T) {
	src := domain.CatalogSource{Model: libsCatalog(t)}
	file, err := generator.Generate(src)
	require.NoError(t, err)

	assert.Equal(t, "LibrariesForLibs", file.ClassName)
	assert.Equal(t, "LibrariesForLibs.go", file.FileName)
	assert.Contains(t, string(file.Content), "// Code generated by accessors. DO NOT EDIT.")
	assert.Contains(t, string(file.Content), `newLibrary("guava", "com.google.guava", "guava", "31.1")`)
	for _, kind := range []domain.ClassKind{domain.ClassKindCatalog, domain.ClassKindBundles, domain.ClassKindVersions} {
		assert.Contains(t, string(file.Content), domain.KindDirective(kind)+"\n")
	}

	got := methods(t, file.Content)
	assert.Equal(t, []string{"CommonsLang", "Guava", "Bundles", "Versions"}, got["LibrariesForLibs"])
	assert.Equal(t, []string{"Testing"}, got["LibrariesForLibsBundles"])
	assert.Equal(t, []string{"GuavaVersion"}, got["LibrariesForLibsVersions"])

	typeCheck(t, file)
}

func TestGenerate_CatalogIsDeterministic(t *testing.T) {
	first, err := generator.Generate(domain.CatalogSource{Model: libsCatalog(t)})
	require.NoError(t, err)
	second, err := generator.Generate(domain.CatalogSource{Model: libsCatalog(t)})
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
}

func TestGenerate_ProjectTree(t *testing.T) {
	root, err := domain.NewProjectTree("demo", []string{"app", "core-utils", "core-utils:sub"})
	require.NoError(t, err)

	sources := generator.SourcesFor(domain.ProjectTreeRequest{Root: root})
	require.Len(t, sources, 5)
	assert.IsType(t, domain.RootAggregatorSource{}, sources[4])

	var files []domain.GeneratedFile
	var names []string
	for _, src := range sources {
		file, err := generator.Generate(src)
		require.NoError(t, err)
		files = append(files, file)
		names = append(names, file.ClassName)
	}
	assert.Equal(t, []string{
		"RootProject",
		"AppProjectDependency",
		"CoreUtilsProjectDependency",
		"CoreUtils_SubProjectDependency",
		"RootProjectAccessor",
	}, names)

	assert.Equal(t, []string{"App", "CoreUtils", "RootProject"}, methods(t, files[4].Content)["RootProjectAccessor"])
	assert.Equal(t, []string{"Dependency", "Path", "Sub"}, methods(t, files[2].Content)["CoreUtilsProjectDependency"])
	assert.Contains(t, string(files[3].Content), `newProjectDependency("sub", ":core-utils:sub")`)
	assert.Contains(t, string(files[0].Content), `newProjectDependency("", ":")`)
	assert.Contains(t, string(files[0].Content), domain.KindDirective(domain.ClassKindProject))
	assert.Contains(t, string(files[4].Content), domain.KindDirective(domain.ClassKindRootAccessor))

	typeCheck(t, files...)
}

func TestGenerate_InvalidInput(t *testing.T) {
	root, err := domain.NewProjectTree("demo", []string{"app", "App"})
	require.NoError(t, err)

	tests := []struct {
		name string
		src  domain.ClassSource
	}{
		{name: "nil catalog", src: domain.CatalogSource{}},
		{name: "nil project", src: domain.ProjectSource{}},
		{name: "colliding children", src: domain.ProjectSource{Node: root}},
		{name: "aggregator without root", src: domain.RootAggregatorSource{Root: root.Children[0]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generator.Generate(tt.src)
			assert.ErrorIs(t, err, domain.ErrGenerationFailed)
		})
	}
}

func TestSupportSource(t *testing.T) {
	support := generator.SupportSource()
	assert.Equal(t, domain.SupportFileName, support.FileName)
	assert.Contains(t, string(support.Content), `GeneratorVersion = "`+generator.Version+`"`)
	assert.Equal(t, support.Content, generator.SupportSource().Content)
	typeCheck(t)
}

func TestFingerprint(t *testing.T) {
	fp, err := generator.Fingerprint()
	require.NoError(t, err)
	assert.Len(t, fp, 64)

	again, err := generator.FingerprintWith(generator.Generate)
	require.NoError(t, err)
	assert.Equal(t, fp, again)
}

func TestFingerprint_ChangesWithOutput(t *testing.T) {
	fp, err := generator.Fingerprint()
	require.NoError(t, err)

	changed, err := generator.FingerprintWith(func(src domain.ClassSource) (domain.GeneratedFile, error) {
		file, err := generator.Generate(src)
		if err != nil {
			return file, err
		}
		file.Content = append(file.Content, "\n// changed template\n"...)
		return file, nil
	})
	require.NoError(t, err)
	assert.NotEqual(t, fp, changed)
}

func TestFingerprint_RenderFailure(t *testing.T) {
	_, err := generator.FingerprintWith(func(domain.ClassSource) (domain.GeneratedFile, error) {
		return domain.GeneratedFile{}, domain.ErrGenerationFailed
	})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

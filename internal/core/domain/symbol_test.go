package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/accessors/internal/core/domain"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		raw      string
		symbol   string
		typeName string
	}{
		{raw: "core-utils", symbol: "coreUtils", typeName: "CoreUtils"},
		{raw: "fooBar", symbol: "fooBar", typeName: "FooBar"},
		{raw: "foo-bar", symbol: "fooBar", typeName: "FooBar"},
		{raw: "foo_bar.baz", symbol: "fooBarBaz", typeName: "FooBarBaz"},
		{raw: "App", symbol: "app", typeName: "App"},
		{raw: "app", symbol: "app", typeName: "App"},
		{raw: "guava", symbol: "guava", typeName: "Guava"},
		{raw: "--", symbol: "", typeName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.symbol, domain.Symbol(tt.raw))
			assert.Equal(t, tt.typeName, domain.TypeName(tt.raw))
		})
	}
}

func TestClassNames(t *testing.T) {
	assert.Equal(t, "LibrariesForLibs", domain.CatalogClassName("libs"))
	assert.Equal(t, "LibrariesForTestLibs", domain.CatalogClassName("test-libs"))
	assert.Equal(t, "RootProject", domain.ProjectClassName(":"))
	assert.Equal(t, "AppProjectDependency", domain.ProjectClassName(":app"))
	assert.Equal(t, "CoreUtilsProjectDependency", domain.ProjectClassName(":core-utils"))
	assert.Equal(t, "Core_UtilsProjectDependency", domain.ProjectClassName(":core:utils"))
}

func TestParseKindDirective(t *testing.T) {
	kind, ok := domain.ParseKindDirective(domain.KindDirective(domain.ClassKindVersions))
	require.True(t, ok)
	assert.Equal(t, domain.ClassKindVersions, kind)

	kind, ok = domain.ParseKindDirective("// accessors:kind catalog")
	require.True(t, ok)
	assert.Equal(t, domain.ClassKindCatalog, kind)

	for _, line := range []string{"// LibrariesForVersions exposes the versions catalog.", "//accessors:kind widget", "//go:generate x"} {
		_, ok := domain.ParseKindDirective(line)
		assert.False(t, ok, line)
	}
}

func TestClass_Member(t *testing.T) {
	c := &domain.Class{
		Name: "LibrariesForLibs",
		Members: []domain.Member{
			{Symbol: "guava", Method: "Guava", Kind: domain.MemberKindLibrary},
			{Symbol: "core-utils", Method: "CoreUtils", Kind: domain.MemberKindLibrary},
			{Method: "Bundles", Kind: domain.MemberKindAccessor},
		},
	}

	for _, name := range []string{"guava", "Guava", "core-utils", "coreUtils", "Bundles"} {
		_, ok := c.Member(name)
		assert.True(t, ok, name)
	}
	_, ok := c.Member("junit")
	assert.False(t, ok)
	assert.Len(t, c.MembersOf(domain.MemberKindLibrary), 2)
}

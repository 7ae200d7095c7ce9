package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/accessors/internal/adapters/config"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeModel(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
rootProject: shop
include:
  - app
  - core:utils
catalogs:
  libs:
    versions:
      guavaVersion: "31.1"
    libraries:
      guava:
        module: com.google.guava:guava
        version.ref: guavaVersion
      junit: junit:junit:4.13.2
      slf4j:
        group: org.slf4j
        name: slf4j-api
        version: "2.0.9"
    bundles:
      testing: [junit, guava]
`
	dir := t.TempDir()
	path := writeModel(t, dir, content)

	m, err := config.NewLoader(nil).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, path, m.ConfigPath)
	assert.Equal(t, "shop", m.Root.Name)
	assert.Equal(t, []string{":", ":app", ":core", ":core:utils"}, m.Root.Paths())

	libs, ok := m.Catalog("libs")
	require.True(t, ok)

	guava, ok := libs.Dependency("guava")
	require.True(t, ok)
	assert.Equal(t, "com.google.guava:guava", guava.Module())
	assert.Equal(t, "guavaVersion", guava.VersionRef)
	assert.Equal(t, "31.1", libs.ResolvedVersion(guava))

	junit, ok := libs.Dependency("junit")
	require.True(t, ok)
	assert.Equal(t, "4.13.2", junit.Version)

	slf4j, ok := libs.Dependency("slf4j")
	require.True(t, ok)
	assert.Equal(t, "org.slf4j:slf4j-api", slf4j.Module())
	assert.Equal(t, "2.0.9", slf4j.Version)

	require.Len(t, libs.Bundles(), 1)
	assert.Equal(t, []string{"junit", "guava"}, libs.Bundles()[0].Members)
}

func TestLoad_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeModel(t, root, "include: [app]\n")
	nested := filepath.Join(root, "app", "src")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	m, err := config.NewLoader(nil).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(root), m.Root.Name, "root project defaults to the directory name")
	assert.Empty(t, m.Catalogs)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "malformed yaml", content: "catalogs: [", want: domain.ErrConfigParseFailed},
		{name: "bad notation", content: "catalogs:\n  libs:\n    libraries:\n      guava: guava\n", want: domain.ErrInvalidCoordinates},
		{
			name:    "version declared twice",
			content: "catalogs:\n  libs:\n    libraries:\n      guava:\n        module: g:a:1\n        version: \"2\"\n",
			want:    domain.ErrInvalidCoordinates,
		},
		{
			name:    "version and reference",
			content: "catalogs:\n  libs:\n    versions: {v: \"1\"}\n    libraries:\n      guava:\n        module: g:a\n        version: \"2\"\n        version.ref: v\n",
			want:    domain.ErrInvalidCoordinates,
		},
		{
			name:    "unknown bundle member",
			content: "catalogs:\n  libs:\n    bundles:\n      testing: [junit]\n",
			want:    domain.ErrUnknownAlias,
		},
		{name: "empty include", content: "include: [\"core::utils\"]\n", want: domain.ErrInvalidProjectPath},
		{
			name:    "catalog class clash",
			content: "catalogs:\n  libs:\n    libraries: {guava: \"g:a:1\"}\n  Libs:\n    libraries: {junit: \"j:u:4\"}\n",
			want:    domain.ErrClassNameCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeModel(t, dir, tt.content)
			_, err := config.NewLoader(nil).Load(dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := config.NewLoader(nil).Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoad_Warnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn("project app is included more than once")
	logger.EXPECT().Warn("catalog empty declares no aliases and generates nothing")

	dir := t.TempDir()
	writeModel(t, dir, "include: [app, app]\ncatalogs:\n  empty: {}\n")

	m, err := config.NewLoader(logger).Load(dir)
	require.NoError(t, err)
	assert.Len(t, m.Root.Children, 1)
}

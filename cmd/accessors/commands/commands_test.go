package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/accessors/cmd/accessors/commands"
	"go.trai.ch/accessors/internal/adapters/classloader"
	"go.trai.ch/accessors/internal/adapters/compiler"
	"go.trai.ch/accessors/internal/adapters/config"
	"go.trai.ch/accessors/internal/adapters/fs"
	"go.trai.ch/accessors/internal/adapters/telemetry"
	"go.trai.ch/accessors/internal/app"
	"go.trai.ch/accessors/internal/build"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const model = `rootProject: shop
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
    bundles:
      testing: [guava]
`

type fixture struct {
	dir string
	app *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(model), domain.PrivateFilePerm))

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(
		config.NewLoader(logger),
		config.NewSettingsLoader(),
		compiler.New(),
		classloader.New(),
		fs.NewHasher(fs.NewWalker()),
		telemetry.NewNoOp(),
		mocks.NewMockWatcher(ctrl),
		logger,
	)
	return &fixture{dir: dir, app: a}
}

func (f *fixture) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := commands.New(f.app)
	cli.SetOutput(&out)
	cli.SetArgs(append([]string{"-C", f.dir}, args...))
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ catalog libs")
	assert.Contains(t, out, "✓ project accessors")
	assert.Contains(t, out, "2 generated, 0 up to date")
	assert.DirExists(t, filepath.Join(f.dir, domain.StateDirName, domain.WorkspacesDirName))

	out, err = f.execute(t, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "~ catalog libs (cached)")
	assert.Contains(t, out, "0 generated, 2 up to date")
}

func TestGenerate_NoProjectAccessors(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "generate", "--project-accessors=false")
	require.NoError(t, err)
	assert.NotContains(t, out, "project accessors")
	assert.Contains(t, out, "1 generated, 0 up to date")
}

func TestGenerate_CacheDirFlag(t *testing.T) {
	f := newFixture(t)
	cacheDir := filepath.Join(t.TempDir(), "state")

	_, err := f.execute(t, "generate", "--cache-dir", cacheDir)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(cacheDir, domain.WorkspacesDirName))
	assert.NoDirExists(t, filepath.Join(f.dir, domain.StateDirName))
}

func TestShow(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "libs\n")
	assert.Contains(t, out, "guava com.google.guava:guava:31.1")
	assert.Contains(t, out, "testing [guava]")
	assert.Contains(t, out, "guavaVersion 31.1")
	assert.Contains(t, out, "projects\n")
	assert.Contains(t, out, ":core:utils")
}

func TestShow_Names(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "show", "projects")
	require.NoError(t, err)
	assert.NotContains(t, out, "guava")
	assert.Contains(t, out, ":app")

	_, err = f.execute(t, "show", "deps")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestClean(t *testing.T) {
	f := newFixture(t)
	_, err := f.execute(t, "generate")
	require.NoError(t, err)

	_, err = f.execute(t, "clean")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(f.dir, domain.StateDirName, domain.WorkspacesDirName))
	assert.NoDirExists(t, filepath.Join(f.dir, domain.StateDirName, domain.ClasspathDirName))
}

func TestVersion(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "accessors version "+build.Version+"\n", out)
}

func TestInvalidSettings(t *testing.T) {
	f := newFixture(t)

	_, err := f.execute(t, "generate", "--workers", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSettingsLoadFailed)
}

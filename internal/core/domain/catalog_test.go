package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/accessors/internal/core/domain"
)

func TestNewCatalogModel_SortsAliases(t *testing.T) {
	m, err := domain.NewCatalogModel("libs",
		[]domain.DependencyAlias{
			{Alias: "junit", Group: "junit", Artifact: "junit", Version: "4.13"},
			{Alias: "guava", Group: "com.google.guava", Artifact: "guava", VersionRef: "guavaVersion"},
		},
		[]domain.BundleAlias{{Alias: "testing", Members: []string{"junit", "guava"}}},
		[]domain.VersionAlias{{Alias: "guavaVersion", Version: "31.1"}},
	)
	require.NoError(t, err)

	deps := m.Dependencies()
	require.Len(t, deps, 2)
	assert.Equal(t, "guava", deps[0].Alias)
	assert.Equal(t, "junit", deps[1].Alias)
	assert.Equal(t, []string{"junit", "guava"}, m.Bundles()[0].Members, "bundle members keep declared order")

	guava, ok := m.Dependency("guava")
	require.True(t, ok)
	assert.Equal(t, "31.1", m.ResolvedVersion(guava))
	assert.Equal(t, "com.google.guava:guava", guava.Module())
	assert.False(t, m.IsEmpty())
}

func TestNewCatalogModel_CopiesInput(t *testing.T) {
	deps := []domain.DependencyAlias{{Alias: "guava", Group: "g", Artifact: "a", Version: "1"}}
	m, err := domain.NewCatalogModel("libs", deps, nil, nil)
	require.NoError(t, err)

	deps[0].Version = "2"
	got, _ := m.Dependency("guava")
	assert.Equal(t, "1", got.Version)
}

func TestNewCatalogModel_Errors(t *testing.T) {
	lib := func(alias string) domain.DependencyAlias {
		return domain.DependencyAlias{Alias: alias, Group: "g", Artifact: alias, Version: "1"}
	}

	tests := []struct {
		name     string
		catalog  string
		deps     []domain.DependencyAlias
		bundles  []domain.BundleAlias
		versions []domain.VersionAlias
		want     error
	}{
		{
			name:    "duplicate library",
			catalog: "libs",
			deps:    []domain.DependencyAlias{lib("guava"), lib("guava")},
			want:    domain.ErrDuplicateAlias,
		},
		{
			name:    "colliding library symbols",
			catalog: "libs",
			deps:    []domain.DependencyAlias{lib("foo-bar"), lib("fooBar")},
			want:    domain.ErrDuplicateAlias,
		},
		{
			name:     "duplicate version",
			catalog:  "libs",
			versions: []domain.VersionAlias{{Alias: "v", Version: "1"}, {Alias: "v", Version: "2"}},
			want:     domain.ErrDuplicateAlias,
		},
		{
			name:    "unknown bundle member",
			catalog: "libs",
			deps:    []domain.DependencyAlias{lib("guava")},
			bundles: []domain.BundleAlias{{Alias: "testing", Members: []string{"junit"}}},
			want:    domain.ErrUnknownAlias,
		},
		{
			name:    "unknown version reference",
			catalog: "libs",
			deps:    []domain.DependencyAlias{{Alias: "guava", Group: "g", Artifact: "a", VersionRef: "missing"}},
			want:    domain.ErrUnknownAlias,
		},
		{
			name:    "reserved alias",
			catalog: "libs",
			deps:    []domain.DependencyAlias{lib("bundles")},
			want:    domain.ErrReservedAlias,
		},
		{
			name:    "invalid alias",
			catalog: "libs",
			deps:    []domain.DependencyAlias{lib("1guava")},
			want:    domain.ErrInvalidAlias,
		},
		{
			name:    "invalid catalog name",
			catalog: "-libs",
			want:    domain.ErrInvalidAlias,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCatalogModel(tt.catalog, tt.deps, tt.bundles, tt.versions)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCatalogModel_IsEmpty(t *testing.T) {
	m, err := domain.NewCatalogModel("empty", nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		notation string
		want     domain.DependencyAlias
		wantErr  bool
	}{
		{notation: "com.google.guava:guava:31.1", want: domain.DependencyAlias{Alias: "guava", Group: "com.google.guava", Artifact: "guava", Version: "31.1"}},
		{notation: "com.google.guava:guava", want: domain.DependencyAlias{Alias: "guava", Group: "com.google.guava", Artifact: "guava"}},
		{notation: "guava", wantErr: true},
		{notation: "a::1", wantErr: true},
		{notation: "a:b:c:d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := domain.ParseCoordinates("guava", tt.notation)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidCoordinates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

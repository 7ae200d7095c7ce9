package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/accessors/internal/core/domain"
)

func TestNewProjectTree(t *testing.T) {
	root, err := domain.NewProjectTree("demo", []string{"app", ":core:utils", "core", "app"})
	require.NoError(t, err)

	assert.True(t, root.IsRoot())
	assert.Equal(t, "demo", root.Name)
	require.Len(t, root.Children, 2)
	assert.Equal(t, ":app", root.Children[0].Path)
	assert.Equal(t, ":core", root.Children[1].Path)

	utils, ok := root.Children[1].Child("utils")
	require.True(t, ok)
	assert.Equal(t, ":core:utils", utils.Path)
	assert.Equal(t, []string{"core", "utils"}, utils.Segments())
	assert.Empty(t, root.Segments())
}

func TestNewProjectTree_InvalidPath(t *testing.T) {
	for _, include := range []string{"", ":", "a::b", "a:"} {
		_, err := domain.NewProjectTree("demo", []string{include})
		assert.ErrorIs(t, err, domain.ErrInvalidProjectPath, "include %q", include)
	}
}

func TestProjectNode_Walk(t *testing.T) {
	root, err := domain.NewProjectTree("demo", []string{"b:x", "a"})
	require.NoError(t, err)

	var paths []string
	for n := range root.Walk() {
		paths = append(paths, n.Path)
	}
	assert.Equal(t, []string{":", ":b", ":b:x", ":a"}, paths)
	assert.Equal(t, []string{":", ":a", ":b", ":b:x"}, root.Paths())
}

func TestProjectNode_WalkStopsEarly(t *testing.T) {
	root, err := domain.NewProjectTree("demo", []string{"a", "b", "c"})
	require.NoError(t, err)

	count := 0
	for range root.Walk() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

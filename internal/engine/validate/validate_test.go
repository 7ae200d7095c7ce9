package validate_test

import (
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/engine/validate"
)

func tree(t *testing.T, includes ...string) *domain.ProjectNode {
	t.Helper()
	root, err := domain.NewProjectTree("demo", includes)
	require.NoError(t, err)
	return root
}

func violations(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	return verr.Violations
}

func TestValidate_Valid(t *testing.T) {
	err := validate.Validate(tree(t, "app", "core-utils", "core-utils:sub_project"))
	assert.NoError(t, err)
}

func TestValidate_InvalidName(t *testing.T) {
	for _, name := range []string{"1app", "-app", "my.app", "app!"} {
		t.Run(name, func(t *testing.T) {
			got := violations(t, validate.Validate(tree(t, "ok", name)))
			require.Len(t, got, 1)
			assert.Equal(t,
				"project '"+name+"' doesn't follow the naming convention: [a-zA-Z]([A-Za-z0-9\\-_])*",
				got[0])
		})
	}
}

func TestValidate_Collision(t *testing.T) {
	tests := []struct {
		name     string
		includes []string
		want     string
	}{
		{
			name:     "case only",
			includes: []string{"app", "App"},
			want:     "subprojects [app, App] of project : map to the same method name App()",
		},
		{
			name:     "separator",
			includes: []string{"foo-bar", "fooBar"},
			want:     "subprojects [foo-bar, fooBar] of project : map to the same method name FooBar()",
		},
		{
			name:     "nested",
			includes: []string{"lib:a_b", "lib:a-b", "lib:aB"},
			want:     "subprojects [a_b, a-b, aB] of project :lib map to the same method name AB()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Validate(tree(t, tt.includes...))
			assert.ErrorIs(t, err, domain.ErrInvalidProjectNames)
			assert.Equal(t, []string{tt.want}, violations(t, err))
		})
	}
}

func TestValidate_Report(t *testing.T) {
	err := validate.Validate(tree(t,
		"app", "App", "1bad", "core-utils", "core_utils", "core:foo-bar", "core:fooBar", "my project",
	))
	require.Error(t, err)

	g := goldie.New(t)
	g.Assert(t, "report", []byte(err.Error()+"\n"))
}

func TestValidate_ReservedNames(t *testing.T) {
	err := validate.Validate(tree(t, "path", "root-project", "app:dependency", "app:paths"))
	assert.Equal(t, []string{
		"subproject path of project : maps to the reserved method name Path()",
		"subproject root-project of project : maps to the reserved method name RootProject()",
		"subproject dependency of project :app maps to the reserved method name Dependency()",
	}, violations(t, err))
}

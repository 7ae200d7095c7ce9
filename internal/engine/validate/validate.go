// Package validate checks project trees before project accessors are generated.
package validate

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/accessors/internal/core/domain"
)

// ProjectNamePattern is the convention every project name must follow.
const ProjectNamePattern = `[a-zA-Z]([A-Za-z0-9\-_])*`

var projectNameRegex = regexp.MustCompile(`^` + ProjectNamePattern + `$`)

// reservedMethods are declared by every per-project class and cannot name a child accessor.
var reservedMethods = []string{"Dependency", "Path"}

// Validate checks every project name of the tree and every sibling group for accessor collisions.
// It returns nil or a *domain.ValidationError holding all violations in tree order.
func Validate(root *domain.ProjectNode) error {
	var violations []string
	for node := range root.Walk() {
		if !projectNameRegex.MatchString(node.Name) {
			violations = append(violations,
				fmt.Sprintf("project '%s' doesn't follow the naming convention: %s", node.Name, ProjectNamePattern))
		}
	}
	for node := range root.Walk() {
		violations = append(violations, collisions(node)...)
		violations = append(violations, reserved(node)...)
	}

	if err := domain.NewValidationError(violations); err != nil {
		return err
	}
	return nil
}

// collisions groups the children of node by accessor type name and reports every group with more than one name.
// Groups are reported in the order their first member appears.
func collisions(node *domain.ProjectNode) []string {
	var order []string
	groups := make(map[string][]string)
	for _, child := range node.Children {
		name := domain.TypeName(child.Name)
		if _, ok := groups[name]; !ok {
			order = append(order, name)
		}
		groups[name] = append(groups[name], child.Name)
	}

	var out []string
	for _, name := range order {
		names := groups[name]
		if len(names) < 2 {
			continue
		}
		out = append(out, fmt.Sprintf("subprojects [%s] of project %s map to the same method name %s()",
			strings.Join(names, ", "), node.Path, name))
	}
	return out
}

// reserved reports children whose accessor would shadow a fixed method of the parent's class.
func reserved(node *domain.ProjectNode) []string {
	names := reservedMethods
	if node.IsRoot() {
		names = append(slices.Clone(reservedMethods), domain.RootProjectClass)
	}

	var out []string
	for _, child := range node.Children {
		method := domain.TypeName(child.Name)
		if slices.Contains(names, method) {
			out = append(out, fmt.Sprintf("subproject %s of project %s maps to the reserved method name %s()",
				child.Name, node.Path, method))
		}
	}
	return out
}

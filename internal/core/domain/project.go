package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ProjectPathSeparator separates the segments of a project path. The root project's path is the separator itself.
const ProjectPathSeparator = ":"

// ProjectNode is one project of the build tree.
// Children keep the order in which they were first included.
type ProjectNode struct {
	Path     string
	Name     string
	Children []*ProjectNode
}

// IsRoot reports whether the node is the root project.
func (n *ProjectNode) IsRoot() bool {
	return n.Path == ProjectPathSeparator
}

// Segments returns the path segments of the node; the root has none.
func (n *ProjectNode) Segments() []string {
	if n.IsRoot() {
		return nil
	}
	return strings.Split(strings.TrimPrefix(n.Path, ProjectPathSeparator), ProjectPathSeparator)
}

// Child returns the direct child with the given name.
func (n *ProjectNode) Child(name string) (*ProjectNode, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Walk yields the node and all of its descendants depth-first, parents before children.
func (n *ProjectNode) Walk() iter.Seq[*ProjectNode] {
	return func(yield func(*ProjectNode) bool) {
		n.walk(yield)
	}
}

func (n *ProjectNode) walk(yield func(*ProjectNode) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Paths returns the paths of every project in the tree, sorted.
func (n *ProjectNode) Paths() []string {
	var paths []string
	for node := range n.Walk() {
		paths = append(paths, node.Path)
	}
	slices.Sort(paths)
	return paths
}

// NewProjectTree builds a project tree from include paths such as "core:utils" or ":core:utils".
// Intermediate projects are created on demand and a path included twice yields one node.
func NewProjectTree(rootName string, includes []string) (*ProjectNode, error) {
	root := &ProjectNode{Path: ProjectPathSeparator, Name: rootName}
	for _, include := range includes {
		segments := strings.Split(strings.TrimPrefix(include, ProjectPathSeparator), ProjectPathSeparator)
		if include == "" || slices.Contains(segments, "") {
			return nil, zerr.With(zerr.Wrap(ErrInvalidProjectPath, "include "+include), "include", include)
		}

		current := root
		for _, segment := range segments {
			next, ok := current.Child(segment)
			if !ok {
				path := ProjectPathSeparator + segment
				if !current.IsRoot() {
					path = current.Path + ProjectPathSeparator + segment
				}
				next = &ProjectNode{Path: path, Name: segment}
				current.Children = append(current.Children, next)
			}
			current = next
		}
	}
	return root, nil
}

package generator

import (
	"github.com/dave/jennifer/jen"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/zerr"
)

func project(s domain.ProjectSource) (*jen.File, error) {
	node := s.Node
	if node == nil {
		return nil, zerr.New("project source without node")
	}
	className := s.ClassName()

	// The root project is addressed by path only; its name is not part of the request identity.
	name := ""
	if segments := node.Segments(); len(segments) > 0 {
		name = segments[len(segments)-1]
	}

	methods := []accessor{
		{
			name:   "Dependency",
			doc:    "Dependency returns a dependency on project " + node.Path + ".",
			result: jen.Id("ProjectDependency"),
			value:  jen.Id("newProjectDependency").Call(literals(name, node.Path)...),
		},
		{
			name:   "Path",
			doc:    "Path returns the path of project " + node.Path + ".",
			result: jen.String(),
			value:  jen.Lit(node.Path),
		},
	}
	methods = append(methods, children(node)...)
	sortAccessors(methods)

	f := newFile()
	if err := declare(f, className, domain.ClassKindProject, className+" is the accessor of project "+node.Path+".", methods); err != nil {
		return nil, err
	}
	return f, nil
}

func rootAggregator(s domain.RootAggregatorSource) (*jen.File, error) {
	if s.Root == nil || !s.Root.IsRoot() {
		return nil, zerr.New("root aggregator source without root project")
	}
	className := s.ClassName()

	methods := []accessor{{
		name:   domain.RootProjectClass,
		doc:    domain.RootProjectClass + " returns the accessor of the root project.",
		result: jen.Id(domain.RootProjectClass),
		value:  jen.Id(domain.RootProjectClass).Values(),
	}}
	methods = append(methods, children(s.Root)...)
	sortAccessors(methods)

	f := newFile()
	if err := declare(f, className, domain.ClassKindRootAccessor, className+" is the entry point to the project accessors.", methods); err != nil {
		return nil, err
	}
	return f, nil
}

// children returns one accessor per child project; grandchildren are reached through the child's class.
func children(node *domain.ProjectNode) []accessor {
	out := make([]accessor, 0, len(node.Children))
	for _, child := range node.Children {
		childClass := domain.ProjectClassName(child.Path)
		out = append(out, accessor{
			name:   domain.TypeName(child.Name),
			doc:    domain.TypeName(child.Name) + " returns the accessor of project " + child.Path + ".",
			result: jen.Id(childClass),
			value:  jen.Id(childClass).Values(),
		})
	}
	return out
}

package domain

import (
	"slices"
	"strings"
)

// ClassKind classifies a compiled accessor class.
type ClassKind string

const (
	// ClassKindCatalog is the entry class of a dependency catalog.
	ClassKindCatalog ClassKind = "catalog"
	// ClassKindBundles holds the bundle accessors of a catalog.
	ClassKindBundles ClassKind = "bundles"
	// ClassKindVersions holds the version accessors of a catalog.
	ClassKindVersions ClassKind = "versions"
	// ClassKindProject is the accessor class of one project.
	ClassKindProject ClassKind = "project"
	// ClassKindRootAccessor is the well-known entry point of the project tree.
	ClassKindRootAccessor ClassKind = "root"
	// ClassKindSupport is a type provided by the generator classpath.
	ClassKindSupport ClassKind = "support"
)

// ClassKindDirective marks the kind of a generated type in its doc comment:
//
//	//accessors:kind catalog
const ClassKindDirective = "accessors:kind"

var classKinds = []ClassKind{
	ClassKindCatalog, ClassKindBundles, ClassKindVersions, ClassKindProject, ClassKindRootAccessor, ClassKindSupport,
}

// KindDirective returns the comment line declaring kind.
func KindDirective(kind ClassKind) string {
	return "//" + ClassKindDirective + " " + string(kind)
}

// ParseKindDirective returns the kind declared by one comment line, if the line is a kind directive.
func ParseKindDirective(line string) (ClassKind, bool) {
	text := strings.TrimSpace(strings.TrimPrefix(line, "//"))
	rest, ok := strings.CutPrefix(text, ClassKindDirective)
	if !ok {
		return "", false
	}
	kind := ClassKind(strings.TrimSpace(rest))
	if !slices.Contains(classKinds, kind) {
		return "", false
	}
	return kind, true
}

// MemberKind classifies an accessor method by what it returns.
type MemberKind string

const (
	// MemberKindLibrary returns a Library.
	MemberKindLibrary MemberKind = "library"
	// MemberKindBundle returns a Bundle.
	MemberKindBundle MemberKind = "bundle"
	// MemberKindVersion returns a VersionRef.
	MemberKindVersion MemberKind = "version"
	// MemberKindProject returns a ProjectDependency.
	MemberKindProject MemberKind = "project"
	// MemberKindValue returns a constant.
	MemberKindValue MemberKind = "value"
	// MemberKindAccessor returns another generated class.
	MemberKindAccessor MemberKind = "accessor"
)

// SupportMemberKinds maps the support types returned by classpath constructors to member kinds.
var SupportMemberKinds = map[string]MemberKind{
	"Library":           MemberKindLibrary,
	"Bundle":            MemberKindBundle,
	"VersionRef":        MemberKindVersion,
	"ProjectDependency": MemberKindProject,
}

// Member is one accessor method of a compiled class.
type Member struct {
	// Symbol is the declared name the accessor was generated for.
	Symbol string `msgpack:"symbol"`
	// Method is the Go method name.
	Method string     `msgpack:"method"`
	Kind   MemberKind `msgpack:"kind"`
	// Result is the name of the returned type.
	Result string `msgpack:"result"`
	// Args are the constant arguments the accessor passes to its constructor, or its constant result.
	Args []string `msgpack:"args"`
}

// Class is the loadable descriptor of one compiled accessor type.
type Class struct {
	Name    string    `msgpack:"name"`
	Kind    ClassKind `msgpack:"kind"`
	Source  string    `msgpack:"source"`
	Members []Member  `msgpack:"members"`
}

// Member returns the member generated for a symbol or method name.
func (c *Class) Member(name string) (Member, bool) {
	for _, m := range c.Members {
		if m.Method == name || m.Symbol == name {
			return m, true
		}
	}
	sym := Symbol(name)
	for _, m := range c.Members {
		if sym != "" && Symbol(m.Method) == sym {
			return m, true
		}
	}
	return Member{}, false
}

// MemberOf is Member restricted to members of one kind.
func (c *Class) MemberOf(kind MemberKind, name string) (Member, bool) {
	sym := Symbol(name)
	for _, m := range c.MembersOf(kind) {
		if m.Method == name || m.Symbol == name || (sym != "" && Symbol(m.Method) == sym) {
			return m, true
		}
	}
	return Member{}, false
}

// MembersOf returns the members of the given kind in declaration order.
func (c *Class) MembersOf(kind MemberKind) []Member {
	var out []Member
	for _, m := range c.Members {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// ClassSource is one unit of generation. The set of implementations is closed:
// CatalogSource, ProjectSource and RootAggregatorSource.
type ClassSource interface {
	// ClassName is the qualified name of the class the source declares.
	ClassName() string

	classSource()
}

// CatalogSource generates the accessors of one catalog.
type CatalogSource struct {
	Model *CatalogModel
}

// ClassName implements ClassSource.
func (s CatalogSource) ClassName() string {
	if s.Model == nil {
		return ""
	}
	return CatalogClassName(s.Model.Name())
}

func (CatalogSource) classSource() {}

// ProjectSource generates the accessor class of one project.
type ProjectSource struct {
	Node *ProjectNode
}

// ClassName implements ClassSource.
func (s ProjectSource) ClassName() string {
	if s.Node == nil {
		return ""
	}
	return ProjectClassName(s.Node.Path)
}

func (ProjectSource) classSource() {}

// RootAggregatorSource generates the entry point of a whole project tree.
type RootAggregatorSource struct {
	Root *ProjectNode
}

// ClassName implements ClassSource.
func (RootAggregatorSource) ClassName() string { return RootProjectAccessorClass }

func (RootAggregatorSource) classSource() {}

// GeneratedFile is the rendered source of one ClassSource.
type GeneratedFile struct {
	ClassName string
	FileName  string
	Content   []byte
}

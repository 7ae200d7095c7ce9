package generator

import (
	"bytes"

	"github.com/dave/jennifer/jen"
	"go.trai.ch/accessors/internal/core/domain"
)

// SupportSource returns the generator classpath: the value types and constructors every generated accessor uses.
func SupportSource() domain.GeneratedFile {
	f := newFile()

	f.Comment("GeneratorVersion identifies the generator that wrote the accessors on this classpath.")
	f.Const().Id("GeneratorVersion").Op("=").Lit(Version)
	f.Line()

	f.Comment("Library is a module declared in a dependency catalog.")
	f.Type().Id("Library").Struct(
		jen.Id("Alias").String(),
		jen.Id("Group").String(),
		jen.Id("Artifact").String(),
		jen.Id("Version").String(),
	)
	f.Line()
	f.Comment("Module returns the group:artifact notation of the library.")
	f.Func().Params(jen.Id("l").Id("Library")).Id("Module").Params().String().Block(
		jen.Return(jen.Id("l").Dot("Group").Op("+").Lit(":").Op("+").Id("l").Dot("Artifact")),
	)
	f.Line()
	f.Comment("String returns the group:artifact:version notation of the library.")
	f.Func().Params(jen.Id("l").Id("Library")).Id("String").Params().String().Block(
		jen.If(jen.Id("l").Dot("Version").Op("==").Lit("")).Block(
			jen.Return(jen.Id("l").Dot("Module").Call()),
		),
		jen.Return(jen.Id("l").Dot("Module").Call().Op("+").Lit(":").Op("+").Id("l").Dot("Version")),
	)
	f.Line()
	f.Func().Id("newLibrary").Params(
		jen.List(jen.Id("alias"), jen.Id("group"), jen.Id("artifact"), jen.Id("version")).String(),
	).Id("Library").Block(
		jen.Return(jen.Id("Library").Values(jen.Dict{
			jen.Id("Alias"):    jen.Id("alias"),
			jen.Id("Group"):    jen.Id("group"),
			jen.Id("Artifact"): jen.Id("artifact"),
			jen.Id("Version"):  jen.Id("version"),
		})),
	)
	f.Line()

	f.Comment("Bundle groups libraries of one catalog by alias.")
	f.Type().Id("Bundle").Struct(
		jen.Id("Alias").String(),
		jen.Id("Members").Index().String(),
	)
	f.Line()
	f.Func().Id("newBundle").Params(
		jen.Id("alias").String(),
		jen.Id("members").Op("...").String(),
	).Id("Bundle").Block(
		jen.Return(jen.Id("Bundle").Values(jen.Dict{
			jen.Id("Alias"):   jen.Id("alias"),
			jen.Id("Members"): jen.Id("members"),
		})),
	)
	f.Line()

	f.Comment("VersionRef is a version declared in a dependency catalog.")
	f.Type().Id("VersionRef").Struct(
		jen.Id("Alias").String(),
		jen.Id("Version").String(),
	)
	f.Line()
	f.Func().Id("newVersionRef").Params(
		jen.List(jen.Id("alias"), jen.Id("version")).String(),
	).Id("VersionRef").Block(
		jen.Return(jen.Id("VersionRef").Values(jen.Dict{
			jen.Id("Alias"):   jen.Id("alias"),
			jen.Id("Version"): jen.Id("version"),
		})),
	)
	f.Line()

	f.Comment("ProjectDependency is a dependency on a project of the build.")
	f.Type().Id("ProjectDependency").Struct(
		jen.Id("Name").String(),
		jen.Id("Path").String(),
	)
	f.Line()
	f.Func().Id("newProjectDependency").Params(
		jen.List(jen.Id("name"), jen.Id("path")).String(),
	).Id("ProjectDependency").Block(
		jen.Return(jen.Id("ProjectDependency").Values(jen.Dict{
			jen.Id("Name"): jen.Id("name"),
			jen.Id("Path"): jen.Id("path"),
		})),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		// The support source is fixed; failing to render it is a bug in this package.
		panic(err)
	}
	return domain.GeneratedFile{
		ClassName: "support",
		FileName:  domain.SupportFileName,
		Content:   buf.Bytes(),
	}
}

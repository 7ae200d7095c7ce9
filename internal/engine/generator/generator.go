// Package generator renders accessor sources for catalogs and project trees.
package generator

import (
	"bytes"
	"cmp"
	"errors"
	"slices"

	"github.com/dave/jennifer/jen"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/zerr"
)

// Version identifies the generator. It is rendered into the generator classpath,
// so changing it changes the classpath fingerprint and with it every identity.
const Version = "1"

const header = "Code generated by accessors. DO NOT EDIT."

// SourcesFor lists the class sources of a request in generation order.
// A project tree yields one source per project followed by the root aggregator.
func SourcesFor(req domain.GenerationRequest) []domain.ClassSource {
	switch r := req.(type) {
	case domain.CatalogRequest:
		return []domain.ClassSource{domain.CatalogSource{Model: r.Model}}
	case domain.ProjectTreeRequest:
		var out []domain.ClassSource
		for node := range r.Root.Walk() {
			out = append(out, domain.ProjectSource{Node: node})
		}
		return append(out, domain.RootAggregatorSource{Root: r.Root})
	default:
		return nil
	}
}

// Generate renders the source of one class.
// Input that did not pass validation is a programming error and yields ErrGenerationFailed.
func Generate(src domain.ClassSource) (domain.GeneratedFile, error) {
	var f *jen.File
	var err error
	switch s := src.(type) {
	case domain.CatalogSource:
		f, err = catalog(s)
	case domain.ProjectSource:
		f, err = project(s)
	case domain.RootAggregatorSource:
		f, err = rootAggregator(s)
	default:
		err = zerr.New("unknown class source")
	}
	if err != nil {
		return domain.GeneratedFile{}, generationFailed(src, err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return domain.GeneratedFile{}, generationFailed(src, err)
	}
	return domain.GeneratedFile{
		ClassName: src.ClassName(),
		FileName:  src.ClassName() + ".go",
		Content:   buf.Bytes(),
	}, nil
}

func generationFailed(src domain.ClassSource, err error) error {
	var name string
	if src != nil {
		name = src.ClassName()
	}
	return zerr.With(errors.Join(domain.ErrGenerationFailed, err), "class", name)
}

func newFile() *jen.File {
	f := jen.NewFile(domain.AccessorsPackage)
	f.HeaderComment(header)
	return f
}

// accessor is one generated method: func (recv) Name() Result { return value }.
type accessor struct {
	name   string
	doc    string
	result jen.Code
	value  jen.Code
}

// declare emits a struct type with its accessors. The kind directive in the type doc
// tells the compiler which class kind the type is.
func declare(f *jen.File, typeName string, kind domain.ClassKind, doc string, methods []accessor) error {
	seen := make(map[string]bool, len(methods))
	for _, m := range methods {
		if m.name == "" || seen[m.name] {
			return zerr.With(zerr.New("duplicate or empty accessor"), "method", m.name)
		}
		seen[m.name] = true
	}

	f.Comment(doc)
	f.Comment(domain.KindDirective(kind))
	f.Type().Id(typeName).Struct()
	for _, m := range methods {
		f.Line()
		f.Comment(m.doc)
		f.Func().Params(jen.Id(typeName)).Id(m.name).Params().Add(m.result).Block(jen.Return(m.value))
	}
	return nil
}

func sortAccessors(methods []accessor) {
	slices.SortStableFunc(methods, func(a, b accessor) int { return cmp.Compare(a.name, b.name) })
}

func literals(values ...string) []jen.Code {
	out := make([]jen.Code, len(values))
	for i, v := range values {
		out[i] = jen.Lit(v)
	}
	return out
}

// Package compiler type-checks generated accessor sources and writes their class descriptors.
package compiler

import (
	"context"
	"errors"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/accessors/internal/adapters/classfile"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/zerr"
)

// Compiler implements ports.Compiler with go/parser and go/types.
// Every source of a batch is checked as one package together with the Go files of the classpath.
type Compiler struct{}

// New creates a new Compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile checks sources against classpath and writes one class per declared type into outputDir.
func (c *Compiler) Compile(ctx context.Context, sources []string, outputDir string, classpath []string) error {
	fset := token.NewFileSet()

	support, err := parseClasspath(fset, classpath)
	if err != nil {
		return err
	}

	files := make([]*ast.File, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := parser.ParseFile(fset, src, nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to parse source"), "source", src)
		}
		files = append(files, f)
	}

	var typeErrs []error
	conf := types.Config{
		Importer: importer.Default(),
		Error:    func(err error) { typeErrs = append(typeErrs, err) },
	}
	info := &types.Info{Defs: make(map[*ast.Ident]types.Object)}
	pkg, _ := conf.Check(domain.AccessorsPackage, fset, slices.Concat(support, files), info)
	if len(typeErrs) > 0 {
		return zerr.With(zerr.Wrap(errors.Join(typeErrs...), "type check failed"), "errors", len(typeErrs))
	}

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, class := range classesOf(f, filepath.Base(sources[i]), pkg, info) {
			if err := classfile.Write(outputDir, class); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseClasspath parses the Go files of every classpath directory, sorted by name.
func parseClasspath(fset *token.FileSet, classpath []string) ([]*ast.File, error) {
	var files []*ast.File
	for _, dir := range classpath {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read classpath"), "entry", dir)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".go" {
				continue
			}
			path := filepath.Join(dir, e.Name())
			f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to parse classpath source"), "source", path)
			}
			files = append(files, f)
		}
	}
	return files, nil
}

// kindOf reads the kind directive from the type doc. Types without one come from the classpath.
func kindOf(gen *ast.GenDecl, ts *ast.TypeSpec) domain.ClassKind {
	for _, doc := range []*ast.CommentGroup{ts.Doc, gen.Doc} {
		if doc == nil {
			continue
		}
		for _, c := range doc.List {
			if kind, ok := domain.ParseKindDirective(c.Text); ok {
				return kind
			}
		}
	}
	return domain.ClassKindSupport
}

// classesOf extracts the class descriptors declared by one file. Members keep source order.
func classesOf(f *ast.File, source string, pkg *types.Package, info *types.Info) []*domain.Class {
	var classes []*domain.Class
	byName := make(map[string]*domain.Class)

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			c := &domain.Class{Name: ts.Name.Name, Kind: kindOf(gen, ts), Source: source}
			classes = append(classes, c)
			byName[c.Name] = c
		}
	}

	qualifier := types.RelativeTo(pkg)
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 {
			continue
		}
		recv, ok := fn.Recv.List[0].Type.(*ast.Ident)
		if !ok {
			continue
		}
		c, ok := byName[recv.Name]
		if !ok {
			continue
		}
		c.Members = append(c.Members, member(fn, info, qualifier))
	}
	return classes
}

// member describes one accessor method from its signature and its single return statement.
func member(fn *ast.FuncDecl, info *types.Info, qualifier types.Qualifier) domain.Member {
	m := domain.Member{Symbol: fn.Name.Name, Method: fn.Name.Name, Kind: domain.MemberKindAccessor}
	if obj, ok := info.Defs[fn.Name].(*types.Func); ok {
		if sig, ok := obj.Type().(*types.Signature); ok && sig.Results().Len() == 1 {
			m.Result = types.TypeString(sig.Results().At(0).Type(), qualifier)
		}
	}

	value := returnedValue(fn)
	switch v := value.(type) {
	case *ast.CallExpr:
		m.Args = stringArgs(v.Args)
		if kind, ok := domain.SupportMemberKinds[m.Result]; ok {
			m.Kind = kind
		}
		if len(m.Args) > 0 && m.Kind != domain.MemberKindAccessor {
			m.Symbol = m.Args[0]
		}
	case *ast.BasicLit:
		m.Kind = domain.MemberKindValue
		m.Args = stringArgs([]ast.Expr{v})
	}
	return m
}

func returnedValue(fn *ast.FuncDecl) ast.Expr {
	if fn.Body == nil || len(fn.Body.List) != 1 {
		return nil
	}
	ret, ok := fn.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return nil
	}
	return ret.Results[0]
}

func stringArgs(exprs []ast.Expr) []string {
	out := make([]string, 0, len(exprs))
	for _, e := range exprs {
		lit, ok := e.(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			continue
		}
		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			s = strings.Trim(lit.Value, "`\"")
		}
		out = append(out, s)
	}
	return out
}

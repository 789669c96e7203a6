// Package backend transpiles expression trees into Go, and runs the
// result in an embedded Go interpreter.
package backend

import (
	"fmt"
	goast "go/ast"
	goparser "go/parser"
	"go/token"
	"log/slog"
	"slices"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/internal/log"
)

var (
	// fileSet holds the positions of prelude, the only parsed source in a transpiled file
	fileSet = token.NewFileSet()
	prelude = mustParsePrelude()
)

func mustParsePrelude() *goast.File {
	file, err := goparser.ParseFile(fileSet, "prelude.go", preludeSource, goparser.SkipObjectResolution)
	if err != nil {
		panic(fmt.Errorf("failed to parse prelude: %w", err))
	}
	return file
}

type Transpiler struct {
	// scope holds the names bound around the expression being transpiled
	scope immutable.Set[string]

	*slog.Logger
}

func NewTranspiler() *Transpiler {
	return &Transpiler{
		scope:  immutable.NewSet[string](immutable.NewHasher(""), primitiveNames...),
		Logger: ast.ExprLogger(log.DefaultLogger.With("section", log.SectionBackend)),
	}
}

// TranspileExpr makes a file of package main, made of the prelude and
//
//	func Main() any
//
// which returns the value of e.
// Names that are not bound anywhere are reported as a lamberr.NewUndefinedValue.
//
// The prelude's declarations are shared between files, so callers
// must not modify them.
func (tp *Transpiler) TranspileExpr(e ast.Expr) (*goast.File, error) {
	body, err := tp.transpileExpr(e)
	if err != nil {
		tp.Debug("failed to transpile", "expr", e, "err", err)
		return nil, err
	}
	decls := slices.Clone(prelude.Decls)
	decls = append(decls, &goast.FuncDecl{
		Name: goast.NewIdent(mainFuncName),
		Type: &goast.FuncType{
			Params:  &goast.FieldList{},
			Results: anyResult(),
		},
		Body: returning(body),
	})
	tp.Debug("transpiled", "expr", e)
	return &goast.File{
		Name:      prelude.Name,
		Decls:     decls,
		Imports:   prelude.Imports,
		GoVersion: GoVersion,
	}, nil
}

// AddEntrypoint adds a func main to a file made by TranspileExpr,
// which prints the result of Main to stdout
func AddEntrypoint(file *goast.File) {
	printResult := &goast.CallExpr{
		Fun: &goast.SelectorExpr{X: goast.NewIdent("fmt"), Sel: goast.NewIdent("Println")},
		Args: []goast.Expr{&goast.CallExpr{
			Fun:  goast.NewIdent("describe"),
			Args: []goast.Expr{&goast.CallExpr{Fun: goast.NewIdent(mainFuncName)}},
		}},
	}
	file.Decls = append(file.Decls, &goast.FuncDecl{
		Name: goast.NewIdent("main"),
		Type: &goast.FuncType{Params: &goast.FieldList{}},
		Body: &goast.BlockStmt{List: []goast.Stmt{&goast.ExprStmt{X: printResult}}},
	})
}

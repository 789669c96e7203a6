package backend

import (
	goast "go/ast"
)

// GoVersion is the Go version transpiled programs target, and the one built modules declare
const GoVersion = "1.23.3"

const (
	mainFuncName  = "Main"
	applyFuncName = "apply"
	// notAFunctionPanic prefixes the panic raised by apply, followed by the rendered value
	notAFunctionPanic = "not a function: "
)

// primitiveNames are the names the prelude binds, as written in source
var primitiveNames = []string{"add", "mult", "intToString"}

// preludeSource is the start of every transpiled file.
// Its imports stay ungrouped so that formatting never sorts them in place.
//
// Every value is an any: bool, int64, string or func(any) any.
// Primitives are bound under their mangled names, so user code
// refers to them like to any other variable.
const preludeSource = `package main

import "fmt"

import "strconv"

func apply(f any, x any) any {
	fn, ok := f.(func(any) any)
	if !ok {
		panic("` + notAFunctionPanic + `" + describe(f))
	}
	return fn(x)
}

func describe(v any) string {
	switch v := v.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return strconv.Quote(v)
	case func(any) any:
		return "<function>"
	default:
		return fmt.Sprint(v)
	}
}

func intBinOp(op func(a, b int64) int64) any {
	return func(a any) any {
		return func(b any) any {
			return op(a.(int64), b.(int64))
		}
	}
}

var v_add = intBinOp(func(a, b int64) int64 { return a + b })

var v_mult = intBinOp(func(a, b int64) int64 { return a * b })

var v_intToString any = func(i any) any {
	return strconv.FormatInt(i.(int64), 10)
}
`

func anyType() goast.Expr {
	return goast.NewIdent("any")
}

func anyResult() *goast.FieldList {
	return &goast.FieldList{List: []*goast.Field{{Type: anyType()}}}
}

func returning(expr goast.Expr) *goast.BlockStmt {
	return &goast.BlockStmt{List: []goast.Stmt{
		&goast.ReturnStmt{Results: []goast.Expr{expr}},
	}}
}

package ast

import (
	"strings"
)

// ExprString renders expr in surface syntax, parenthesising
// any non-atomic sub-expression in an application.
//
// The output is meant for humans: the parser only groups parenthesised
// lambdas, so it does not necessarily parse back to expr.
func ExprString(expr Expr) string {
	ctx := newShowContext()
	ctx.showExprWalker(expr, 0)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
}

func newShowContext() *showContext {
	return &showContext{
		Builder: &strings.Builder{},
	}
}

func (ctx *showContext) showExprWalker(expr Expr, outerPrecedence int16) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case *Literal:
		ctx.WriteString(expr.Syntax)
	case *Var:
		ctx.WriteString(expr.Name)
	case *Call:
		if outerPrecedence > 0 {
			ctx.WriteString("(")
			defer ctx.WriteString(")")
		}
		ctx.showExprWalker(expr.Func, 1)
		ctx.WriteString(" ")
		ctx.showExprWalker(expr.Arg, 1)
	case *Func:
		if outerPrecedence > 0 {
			ctx.WriteString("(")
			defer ctx.WriteString(")")
		}
		ctx.WriteString(`\` + expr.Param + " -> ")
		ctx.showExprWalker(expr.Body, 0)
	case *Let:
		if outerPrecedence > 0 {
			ctx.WriteString("(")
			defer ctx.WriteString(")")
		}
		ctx.WriteString("let " + expr.Var + " = ")
		ctx.showExprWalker(expr.Value, 0)
		ctx.WriteString(" in ")
		ctx.showExprWalker(expr.Body, 0)
	default:
		ctx.WriteString("<" + expr.ExprName() + ">")
	}
}

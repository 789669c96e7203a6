package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	goast "go/ast"
	"go/format"
	"io"
	"strings"

	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/lamberr"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// Format renders a file made by TranspileExpr as gofmt-ed source
func Format(file *goast.File) (string, error) {
	buf := bytes.Buffer{}
	if err := format.Node(&buf, fileSet, file); err != nil {
		return "", fmt.Errorf("failed to format transpiled file: %w", err)
	}
	return buf.String(), nil
}

// Run transpiles e and evaluates it in the yaegi interpreter,
// returning what Main returns: a bool, int64, string or func(any) any
func Run(ctx context.Context, e ast.Expr) (result any, err error) {
	tp := NewTranspiler()
	file, err := tp.TranspileExpr(e)
	if err != nil {
		return nil, err
	}
	src, err := Format(file)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, runtimeError(fmt.Errorf("%v", r), e)
		}
	}()

	// panics are reported through err, so the interpreter's own trace is not needed
	i := interp.New(interp.Options{Stderr: io.Discard})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load stdlib symbols: %w", err)
	}
	if _, err := i.EvalWithContext(ctx, src); err != nil {
		tp.Warn("had errors while loading transpiled source", "err", err.Error(), "body", src)
		return nil, fmt.Errorf("failed to load transpiled program: %w", err)
	}
	v, err := i.EvalWithContext(ctx, "main."+mainFuncName+"()")
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, runtimeError(err, e)
	}
	if !v.IsValid() || !v.CanInterface() {
		return nil, fmt.Errorf("transpiled program returned no value")
	}
	return v.Interface(), nil
}

// runtimeError turns a panic raised while running e into a lamberr.LamError
func runtimeError(err error, e ast.Expr) error {
	msg := err.Error()
	if _, shown, found := strings.Cut(msg, notAFunctionPanic); found {
		shown, _, _ = strings.Cut(shown, "\n")
		return lamberr.New(lamberr.NewNotAFunction{
			Positioner: ast.RangeOf(e),
			Value:      shown,
		})
	}
	return lamberr.New(lamberr.Unclassified{
		Positioner: ast.RangeOf(e),
		From:       fmt.Errorf("transpiled program failed: %s", msg),
	})
}

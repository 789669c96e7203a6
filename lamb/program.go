// Package lamb ties the parser, type inference, the evaluator and the Go
// backend together into a single pipeline over one program.
package lamb

import (
	"context"
	"strings"

	"github.com/cottand/lamb/backend"
	"github.com/cottand/lamb/eval"
	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/hm"
	"github.com/cottand/lamb/frontend/infer"
	"github.com/cottand/lamb/frontend/lamberr"
	"github.com/cottand/lamb/internal/log"
	"github.com/cottand/lamb/parser"
	"golang.org/x/sync/errgroup"
)

var programLogger = log.DefaultLogger.With("section", log.SectionRepl)

// Program is a parsed expression together with the source it came from
type Program struct {
	source string
	expr   ast.Expr
}

// NewProgram parses src. Parse errors are returned as they are, since
// nothing else can be done with a program that does not parse
func NewProgram(src string) (*Program, error) {
	expr, err := parser.ParseToAST(src)
	if err != nil {
		return nil, err
	}
	return &Program{source: src, expr: expr}, nil
}

func (p *Program) Source() string { return p.source }
func (p *Program) Expr() ast.Expr { return p.expr }

// Type infers the type of the program against the primitive context
func (p *Program) Type() (hm.Type, error) {
	return infer.Infer(p.expr)
}

// Value evaluates the program with the tree-walking evaluator
func (p *Program) Value(ctx context.Context) (eval.Value, error) {
	return eval.Evaluate(ctx, p.expr, nil)
}

// Compiled evaluates the program by transpiling it to Go and
// interpreting the result
func (p *Program) Compiled(ctx context.Context) (eval.Value, error) {
	result, err := backend.Run(ctx, p.expr)
	if err != nil {
		return nil, err
	}
	return eval.FromGo(result)
}

// GoSource is the transpiled program as a Go file whose Main returns its value
func (p *Program) GoSource() (string, error) {
	file, err := backend.NewTranspiler().TranspileExpr(p.expr)
	if err != nil {
		return "", err
	}
	return backend.Format(file)
}

// GoMainSource is like GoSource, but the file also has a main function
// printing the value, so that it can be built with go build
func (p *Program) GoMainSource() (string, error) {
	file, err := backend.NewTranspiler().TranspileExpr(p.expr)
	if err != nil {
		return "", err
	}
	backend.AddEntrypoint(file)
	return backend.Format(file)
}

// Show selects what Check reports. The program is always type-checked,
// since only well-typed programs are evaluated
type Show struct {
	Types  bool
	Values bool
	// Compiled evaluates through the Go backend rather than the evaluator
	Compiled bool
}

// Result holds what Check computed. Type and Value are nil when they were
// not asked for or when a pass failed
type Result struct {
	Type   hm.Type
	Value  eval.Value
	Errors *lamberr.Errors
}

// Check infers the type of the program and, only if that succeeds and
// show asks for values, evaluates it. Errors are collected in the Result
func (p *Program) Check(ctx context.Context, show Show) Result {
	var res Result
	t, err := p.Type()
	if err != nil {
		res.Errors = res.Errors.Add(err)
		programLogger.Debug("program does not type-check", "errs", res.Errors)
		return res
	}
	if show.Types {
		res.Type = t
	}
	if !show.Values {
		return res
	}

	if show.Compiled {
		res.Value, err = p.Compiled(ctx)
	} else {
		res.Value, err = p.Value(ctx)
	}
	if err != nil {
		res.Value = nil
		res.Errors = res.Errors.Add(err)
		programLogger.Debug("program failed to evaluate", "errs", res.Errors)
	}
	return res
}

// CheckAll checks programs concurrently, at most limit at a time, and
// returns their results in the same order
func CheckAll(ctx context.Context, programs []*Program, show Show, limit int) []Result {
	results := make([]Result, len(programs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for i, p := range programs {
		g.Go(func() error {
			results[i] = p.Check(ctx, show)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// FormatErrors renders every error in errs against the program's source,
// one after the other
func (p *Program) FormatErrors(errs *lamberr.Errors) string {
	sb := strings.Builder{}
	for _, err := range errs.Errors() {
		sb.WriteString(lamberr.FormatWithCodeAndSource(err, p.source))
		sb.WriteByte('\n')
	}
	return sb.String()
}

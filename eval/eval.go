// Package eval evaluates expression trees directly, without compiling them.
package eval

import (
	"context"
	"errors"
	"fmt"

	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/lamberr"
	"github.com/cottand/lamb/internal/log"
)

var logger = ast.ExprLogger(log.DefaultLogger.With("section", log.SectionEval))

// Evaluate reduces e to a value under env. A nil env means Primitives().
//
// ctx is checked before every application, so a caller can stop
// evaluation of a large program by cancelling it.
func Evaluate(ctx context.Context, e ast.Expr, env *Env) (Value, error) {
	if env == nil {
		env = Primitives()
	}
	return evaluate(ctx, e, env)
}

func evaluate(ctx context.Context, e ast.Expr, env *Env) (Value, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return literalValue(e)

	case *ast.Var:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, lamberr.New(lamberr.NewUndefinedValue{
				Positioner: e,
				Name:       e.Name,
			})
		}
		return v, nil

	case *ast.Call:
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		arg, err := evaluate(ctx, e.Arg, env)
		if err != nil {
			return nil, err
		}
		callee, err := evaluate(ctx, e.Func, env)
		if err != nil {
			return nil, err
		}
		fn, ok := callee.(Function)
		if !ok {
			return nil, lamberr.New(lamberr.NewNotAFunction{
				Positioner: e.Func,
				Value:      Show(callee),
			})
		}
		result, err := fn.Apply(ctx, arg)
		if err != nil {
			return nil, classify(err, e)
		}
		logger.Debug("applied", "expr", e, "result", Show(result))
		return result, nil

	case *ast.Func:
		return &Closure{Param: e.Param, Body: e.Body, Env: env}, nil

	case *ast.Let:
		value, err := evaluate(ctx, e.Value, env)
		if err != nil {
			return nil, err
		}
		return evaluate(ctx, e.Body, env.Extend(e.Var, value))

	default:
		return nil, lamberr.New(lamberr.Unclassified{
			Positioner: ast.RangeOf(e),
			From:       fmt.Errorf("cannot evaluate a %T", e),
		})
	}
}

func literalValue(lit *ast.Literal) (Value, error) {
	switch lit.Kind {
	case ast.LitBool:
		return Bool(lit.Bool), nil
	case ast.LitInt:
		return Int(lit.Int), nil
	case ast.LitString:
		return String(lit.Str), nil
	default:
		return nil, lamberr.New(lamberr.Unclassified{
			Positioner: lit,
			From:       fmt.Errorf("unknown literal kind %v", lit.Kind),
		})
	}
}

// classify keeps errors that already carry a position and context
// cancellation as they are, and places anything else at the call
func classify(err error, at ast.Positioner) error {
	var lamErr lamberr.LamError
	if errors.As(err, &lamErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return lamberr.New(lamberr.Unclassified{
		Positioner: at,
		From:       err,
	})
}

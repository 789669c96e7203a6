package infer

import (
	"fmt"

	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/hm"
	"github.com/cottand/lamb/frontend/lamberr"
)

func (s *Session) infer(env hm.Context, e ast.Expr) (hm.Subs, hm.Type, error) {
	switch e := e.(type) {
	case *ast.Literal:
		t, err := literalType(e)
		return nil, t, err

	case *ast.Var:
		scheme, ok := env.Lookup(e.Name)
		if !ok {
			return nil, nil, lamberr.New(lamberr.NewUndefinedVariable{
				Positioner: e,
				Name:       e.Name,
			})
		}
		return nil, s.instantiate(scheme), nil

	case *ast.Call:
		s1, tFunc, err := s.infer(env, e.Func)
		if err != nil {
			return nil, nil, err
		}
		s2, tArg, err := s.infer(env.Apply(s1), e.Arg)
		if err != nil {
			return nil, nil, err
		}
		result := s.fresh()
		s3, err := unify(s2.Apply(tFunc), &hm.Func{From: tArg, To: result}, e)
		if err != nil {
			return nil, nil, err
		}
		subs := hm.Compose(hm.Compose(s3, s2), s1)
		s.logger.Debug("call", "expr", e, "func", tFunc, "arg", tArg, "subs", subs)
		return subs, s3.Apply(result), nil

	case *ast.Func:
		param := s.fresh()
		subs, tBody, err := s.infer(env.Extend(e.Param, hm.Mono(param)), e.Body)
		if err != nil {
			return nil, nil, err
		}
		return subs, &hm.Func{From: subs.Apply(param), To: tBody}, nil

	case *ast.Let:
		s1, tValue, err := s.infer(env, e.Value)
		if err != nil {
			return nil, nil, err
		}
		bound := hm.Mono(s1.Apply(tValue))
		s.logger.Debug("let", "name", e.Var, "scheme", bound)
		s2, tBody, err := s.infer(env.Extend(e.Var, bound).Apply(s1), e.Body)
		if err != nil {
			return nil, nil, err
		}
		return hm.Compose(s1, s2), tBody, nil

	default:
		return nil, nil, lamberr.New(lamberr.Unclassified{
			Positioner: ast.RangeOf(e),
			From:       fmt.Errorf("cannot infer the type of a %T", e),
		})
	}
}

func literalType(lit *ast.Literal) (hm.Type, error) {
	switch lit.Kind {
	case ast.LitInt:
		return hm.Int, nil
	case ast.LitBool:
		return hm.Bool, nil
	case ast.LitString:
		return hm.String, nil
	default:
		return nil, lamberr.New(lamberr.Unclassified{
			Positioner: lit,
			From:       fmt.Errorf("unknown literal kind %v", lit.Kind),
		})
	}
}

// instantiate replaces the quantified variables of scheme with fresh ones
func (s *Session) instantiate(scheme *hm.Scheme) hm.Type {
	if scheme.IsMono() {
		return scheme.Type
	}
	subs := make(hm.Subs, len(scheme.Vars))
	for _, v := range scheme.Vars {
		subs[v] = s.fresh()
	}
	return subs.Apply(scheme.Type)
}

package infer

import (
	"fmt"

	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/hm"
	"github.com/cottand/lamb/frontend/lamberr"
)

// Unify returns the most general substitution that makes a and b equal
func Unify(a, b hm.Type) (hm.Subs, error) {
	return unify(a, b, ast.Range{})
}

// unify is Unify with errors reported at the expression that demanded it
func unify(a, b hm.Type, at ast.Positioner) (hm.Subs, error) {
	if v, ok := a.(hm.TypeVar); ok {
		return bindVar(v, b, at)
	}
	if v, ok := b.(hm.TypeVar); ok {
		return bindVar(v, a, at)
	}

	switch a := a.(type) {
	case *hm.Func:
		b, ok := b.(*hm.Func)
		if !ok {
			break
		}
		s1, err := unify(a.From, b.From, at)
		if err != nil {
			return nil, err
		}
		s2, err := unify(s1.Apply(a.To), s1.Apply(b.To), at)
		if err != nil {
			return nil, err
		}
		return hm.Compose(s2, s1), nil

	case hm.Const:
		if a.Equals(b) {
			return nil, nil
		}

	default:
		return nil, lamberr.New(lamberr.Unclassified{
			Positioner: at,
			From:       fmt.Errorf("cannot unify unknown type %T", a),
		})
	}

	return nil, lamberr.New(lamberr.NewTypeMismatch{
		Positioner: at,
		First:      a,
		Second:     b,
	})
}

// bindVar binds v to t unless they are the same variable.
// It fails when v occurs in t, since the binding would build an infinite type
func bindVar(v hm.TypeVar, t hm.Type, at ast.Positioner) (hm.Subs, error) {
	if v.Equals(t) {
		return nil, nil
	}
	if t.FreeTypeVars().Contains(v) {
		return nil, lamberr.New(lamberr.NewOccursCheck{
			Positioner: at,
			Var:        v,
			Type:       t,
		})
	}
	return hm.Singleton(v, t), nil
}

// Package infer implements Algorithm W over ast.Expr.
//
// Let-bound names are monomorphic: the value's type is bound as is, with no
// generalisation over its free type variables.
package infer

import (
	"log/slog"
	"strconv"

	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/hm"
	"github.com/cottand/lamb/internal/log"
)

var logger = ast.ExprLogger(log.DefaultLogger.With("section", log.SectionInference))

// Session owns the counter that fresh type variables are named after.
//
// A Session is not safe for concurrent use. Each top-level call resets
// the counter, so inferring the same tree twice yields the same names.
type Session struct {
	counter int
	logger  *slog.Logger
}

func NewSession() *Session {
	return &Session{logger: logger}
}

// Infer returns the type of e under env with the final substitution applied
func (s *Session) Infer(env hm.Context, e ast.Expr) (hm.Type, error) {
	subs, t, err := s.InferSubs(env, e)
	if err != nil {
		return nil, err
	}
	return subs.Apply(t), nil
}

// InferSubs returns the substitution and the type that inferring e under env produces,
// without applying one to the other
func (s *Session) InferSubs(env hm.Context, e ast.Expr) (hm.Subs, hm.Type, error) {
	s.counter = 0
	subs, t, err := s.infer(env, e)
	if err != nil {
		s.logger.Debug("inference failed", "expr", e, "err", err)
		return nil, nil, err
	}
	s.logger.Debug("inferred", "expr", e, "type", t, "subs", subs)
	return subs, t, nil
}

// Infer returns the type of e in the context of the primitives,
// using a session of its own
func Infer(e ast.Expr) (hm.Type, error) {
	return NewSession().Infer(hm.Primitives(), e)
}

// fresh returns a type variable that has not been handed out since the last reset.
// Names go 'a to 'z, then 'a1 to 'z1, 'a2 and so on
func (s *Session) fresh() hm.TypeVar {
	n := s.counter
	s.counter++
	return VarName(n)
}

// VarName is the name of the n-th fresh type variable
func VarName(n int) hm.TypeVar {
	name := "'" + string(rune('a'+n%26))
	if round := n / 26; round > 0 {
		name += strconv.Itoa(round)
	}
	return hm.TypeVar(name)
}

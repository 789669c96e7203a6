// Package hm holds the type model shared by inference and its callers:
// types, substitutions, schemes and typing contexts.
//
// Everything in this package is immutable once built. Operations that
// "change" a value return a new one.
package hm

import (
	"fmt"
)

var (
	_ Type = Const{}
	_ Type = TypeVar("")
	_ Type = (*Func)(nil)
)

// Type is one of Const, TypeVar or *Func.
type Type interface {
	fmt.Stringer
	// Apply returns a copy of the type with subs applied to every free type variable
	Apply(subs Subs) Type
	// FreeTypeVars returns the type variables occurring in the type
	FreeTypeVars() TypeVarSet
	Equals(other Type) bool
	typeNode()
}

// Const is a base type. The only values are Int, Bool and String.
type Const struct {
	name string
}

var (
	Int    = Const{"Int"}
	Bool   = Const{"Bool"}
	String = Const{"String"}
)

func (c Const) Name() string             { return c.name }
func (c Const) String() string           { return c.name }
func (c Const) Apply(Subs) Type          { return c }
func (c Const) FreeTypeVars() TypeVarSet { return nil }

func (c Const) Equals(other Type) bool {
	o, ok := other.(Const)
	return ok && o == c
}

func (Const) typeNode() {}

// TypeVar is a unification variable. Its name includes the leading quote, eg 'a
type TypeVar string

func (v TypeVar) String() string { return string(v) }

func (v TypeVar) Apply(subs Subs) Type {
	if t, ok := subs[v]; ok {
		return t
	}
	return v
}

func (v TypeVar) FreeTypeVars() TypeVarSet { return TypeVarSet{v} }

func (v TypeVar) Equals(other Type) bool {
	o, ok := other.(TypeVar)
	return ok && o == v
}

func (TypeVar) typeNode() {}

// Func is the type of single-argument functions, From -> To
type Func struct {
	From Type
	To   Type
}

// Arrow builds the curried function type from -> to -> rest[0] -> ...
func Arrow(from, to Type, rest ...Type) *Func {
	if len(rest) == 0 {
		return &Func{From: from, To: to}
	}
	return &Func{From: from, To: Arrow(to, rest[0], rest[1:]...)}
}

func (f *Func) Apply(subs Subs) Type {
	if len(subs) == 0 {
		return f
	}
	return &Func{From: f.From.Apply(subs), To: f.To.Apply(subs)}
}

func (f *Func) FreeTypeVars() TypeVarSet {
	return f.From.FreeTypeVars().Union(f.To.FreeTypeVars())
}

func (f *Func) Equals(other Type) bool {
	o, ok := other.(*Func)
	return ok && f.From.Equals(o.From) && f.To.Equals(o.To)
}

// String renders the type as T1 -> T2 -> ..., parenthesising functions in
// argument position so that ('a -> 'b) -> 'a is not confused with 'a -> 'b -> 'a
func (f *Func) String() string {
	from := f.From.String()
	if _, isFunc := f.From.(*Func); isFunc {
		from = "(" + from + ")"
	}
	return from + " -> " + f.To.String()
}

func (*Func) typeNode() {}

package hm

import (
	"iter"

	"github.com/benbjohnson/immutable"
)

// Context maps program variables to their type schemes.
//
// It is persistent: Extend and Apply return new contexts and leave the
// receiver untouched, so branches of inference can share one safely.
// The zero Context is empty and ready to use.
type Context struct {
	schemes *immutable.Map[string, *Scheme]
}

func NewContext() Context {
	return Context{schemes: immutable.NewMap[string, *Scheme](immutable.NewHasher(""))}
}

// Primitives returns the root context every top-level inference starts from
func Primitives() Context {
	intBinOp := Arrow(Int, Int, Int)
	return NewContext().
		Extend("add", Mono(intBinOp)).
		Extend("mult", Mono(intBinOp)).
		Extend("intToString", Mono(Arrow(Int, String)))
}

func (c Context) underlying() *immutable.Map[string, *Scheme] {
	if c.schemes == nil {
		return NewContext().schemes
	}
	return c.schemes
}

func (c Context) Lookup(name string) (*Scheme, bool) {
	return c.underlying().Get(name)
}

// Extend returns a new context where name is bound to scheme,
// shadowing any previous binding
func (c Context) Extend(name string, scheme *Scheme) Context {
	return Context{schemes: c.underlying().Set(name, scheme)}
}

// Apply returns a new context with subs applied to every scheme
func (c Context) Apply(subs Subs) Context {
	if len(subs) == 0 {
		return c
	}
	next := c.underlying()
	for name, scheme := range c.All() {
		next = next.Set(name, scheme.Apply(subs))
	}
	return Context{schemes: next}
}

func (c Context) All() iter.Seq2[string, *Scheme] {
	return func(yield func(string, *Scheme) bool) {
		itr := c.underlying().Iterator()
		for !itr.Done() {
			name, scheme, _ := itr.Next()
			if !yield(name, scheme) {
				return
			}
		}
	}
}

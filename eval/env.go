package eval

import (
	"github.com/benbjohnson/immutable"
)

// Env maps names to values.
//
// It is persistent, so a closure can keep the Env it was created
// in while evaluation carries on extending it elsewhere.
// A nil *Env is empty.
type Env struct {
	values *immutable.Map[string, Value]
}

func NewEnv() *Env {
	return &Env{values: immutable.NewMap[string, Value](immutable.NewHasher(""))}
}

func (e *Env) underlying() *immutable.Map[string, Value] {
	if e == nil || e.values == nil {
		return NewEnv().values
	}
	return e.values
}

func (e *Env) Lookup(name string) (Value, bool) {
	return e.underlying().Get(name)
}

// Extend returns a new Env where name is bound to v, shadowing any previous binding
func (e *Env) Extend(name string, v Value) *Env {
	return &Env{values: e.underlying().Set(name, v)}
}

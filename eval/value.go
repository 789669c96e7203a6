package eval

import (
	"context"
	"strconv"

	"github.com/cottand/lamb/frontend/ast"
)

var (
	_ Value    = Bool(false)
	_ Value    = Int(0)
	_ Value    = String("")
	_ Function = (*Closure)(nil)
	_ Function = (*Builtin)(nil)
)

// Value is one of Bool, Int, String or a Function
type Value interface {
	// Kind names the sort of value, for error messages
	Kind() string
	valueNode()
}

type Bool bool

type Int int64

type String string

func (Bool) Kind() string   { return "bool" }
func (Int) Kind() string    { return "int" }
func (String) Kind() string { return "string" }

func (Bool) valueNode()   {}
func (Int) valueNode()    {}
func (String) valueNode() {}

// Function is a value that can be applied to an argument
type Function interface {
	Value
	Apply(ctx context.Context, arg Value) (Value, error)
}

// Closure is a lambda together with the environment it was created in
type Closure struct {
	Param string
	Body  ast.Expr
	Env   *Env
}

func (c *Closure) Kind() string { return "function" }
func (c *Closure) valueNode()   {}

func (c *Closure) Apply(ctx context.Context, arg Value) (Value, error) {
	return Evaluate(ctx, c.Body, c.Env.Extend(c.Param, arg))
}

// Builtin is a function implemented in Go
type Builtin struct {
	Name string
	Fn   func(ctx context.Context, arg Value) (Value, error)
}

func (b *Builtin) Kind() string { return "function" }
func (b *Builtin) valueNode()   {}

func (b *Builtin) Apply(ctx context.Context, arg Value) (Value, error) {
	return b.Fn(ctx, arg)
}

// Show renders v for display: strings are quoted and functions are opaque
func Show(v Value) string {
	switch v := v.(type) {
	case Bool:
		return strconv.FormatBool(bool(v))
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case String:
		return strconv.Quote(string(v))
	case Function:
		return "<function>"
	case nil:
		return "<nil>"
	default:
		return "<" + v.Kind() + ">"
	}
}

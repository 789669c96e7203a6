package eval

import (
	"context"
	"fmt"
	"strconv"
)

// Primitives returns the environment every top-level evaluation starts from
func Primitives() *Env {
	return NewEnv().
		Extend("add", intBinOp("add", func(a, b Int) Int { return a + b })).
		Extend("mult", intBinOp("mult", func(a, b Int) Int { return a * b })).
		Extend("intToString", &Builtin{
			Name: "intToString",
			Fn: func(_ context.Context, arg Value) (Value, error) {
				i, err := expectInt("intToString", arg)
				if err != nil {
					return nil, err
				}
				return String(strconv.FormatInt(int64(i), 10)), nil
			},
		})
}

// intBinOp builds a curried two-argument builtin
func intBinOp(name string, op func(a, b Int) Int) *Builtin {
	return &Builtin{
		Name: name,
		Fn: func(_ context.Context, first Value) (Value, error) {
			a, err := expectInt(name, first)
			if err != nil {
				return nil, err
			}
			return &Builtin{
				Name: fmt.Sprintf("%s %d", name, a),
				Fn: func(_ context.Context, second Value) (Value, error) {
					b, err := expectInt(name, second)
					if err != nil {
						return nil, err
					}
					return op(a, b), nil
				},
			}, nil
		},
	}
}

func expectInt(name string, v Value) (Int, error) {
	i, ok := v.(Int)
	if !ok {
		return 0, fmt.Errorf("%s expects an int argument, got %s", name, Show(v))
	}
	return i, nil
}

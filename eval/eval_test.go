package eval_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cottand/lamb/eval"
	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/lamberr"
	"github.com/cottand/lamb/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalSrc(t *testing.T, src string) (eval.Value, error) {
	t.Helper()
	expr, err := parser.ParseToAST(src)
	require.NoError(t, err, "parsing %q", src)
	return eval.Evaluate(context.Background(), expr, nil)
}

func testValue(t *testing.T, src string, expected eval.Value) {
	t.Run(src, func(t *testing.T) {
		v, err := evalSrc(t, src)
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	})
}

func TestLiterals(t *testing.T) {
	testValue(t, "1", eval.Int(1))
	testValue(t, "true", eval.Bool(true))
	testValue(t, "false", eval.Bool(false))
	testValue(t, `"hello world"`, eval.String("hello world"))
}

func TestPrimitives(t *testing.T) {
	testValue(t, "intToString 42", eval.String("42"))
	testValue(t, "let m = mult 21 in m 2", eval.Int(42))
	testValue(t, "let inc = add 1 in inc 41", eval.Int(42))
	testValue(t, "let inc = add 1; intToString (x -> inc x) 2", eval.String("3"))
}

func TestScoping(t *testing.T) {
	testValue(t, `let x = 1 in (\x -> x) 2`, eval.Int(2))
	testValue(t, `let x = 1; let y = x; y`, eval.Int(1))
	testValue(t, `let x = 1; let x = true; x`, eval.Bool(true))
}

func TestClosuresCaptureTheirEnvironment(t *testing.T) {
	// k is evaluated where x is 1, so the later binding of x does not leak in
	testValue(t, `let x = 1; let k = \y -> x; let x = 5; k 0`, eval.Int(1))
	testValue(t, `let adder = (n -> add n); let add3 = adder 3; add3 4`, eval.Int(7))
}

func TestFunctionValues(t *testing.T) {
	v, err := evalSrc(t, `\x -> x`)
	require.NoError(t, err)

	closure, ok := v.(*eval.Closure)
	require.True(t, ok, "expected a closure, got %T", v)
	assert.Equal(t, "x", closure.Param)
	assert.Equal(t, "<function>", eval.Show(v))

	v, err = evalSrc(t, "add 1")
	require.NoError(t, err)
	assert.Implements(t, (*eval.Function)(nil), v)
}

func TestUndefinedValue(t *testing.T) {
	_, err := evalSrc(t, "undefinedName")
	require.Error(t, err)

	var undefined lamberr.NewUndefinedValue
	require.True(t, errors.As(err, &undefined))
	assert.Equal(t, "undefinedName", undefined.Name)
	assert.Equal(t, lamberr.UndefinedValue, undefined.Code())

	_, err = evalSrc(t, `let f = \x -> y; f 1`)
	require.True(t, errors.As(err, &undefined))
	assert.Equal(t, "y", undefined.Name)
}

func TestNotAFunction(t *testing.T) {
	cases := map[string]string{
		"1 2":       "1",
		`"s" true`:  `"s"`,
		"true 1":    "true",
		"mult 21 2": "21",
	}

	for src, applied := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := evalSrc(t, src)
			var notAFunction lamberr.NewNotAFunction
			require.True(t, errors.As(err, &notAFunction), "expected not-a-function, got %v", err)
			assert.Equal(t, applied, notAFunction.Value)
		})
	}
}

func TestBuiltinRejectsWrongArgument(t *testing.T) {
	_, err := evalSrc(t, "add true")
	require.Error(t, err)

	var unclassified lamberr.Unclassified
	require.True(t, errors.As(err, &unclassified))
	assert.Contains(t, err.Error(), "add expects an int argument")
	assert.True(t, ast.RangeOf(unclassified).IsValid())
}

func TestCancelledContext(t *testing.T) {
	expr, err := parser.ParseToAST("add 1 2")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = eval.Evaluate(ctx, expr, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCustomEnvironment(t *testing.T) {
	expr, err := parser.ParseToAST("greeting")
	require.NoError(t, err)

	env := eval.NewEnv().Extend("greeting", eval.String("hi"))
	v, err := eval.Evaluate(context.Background(), expr, env)
	require.NoError(t, err)
	assert.Equal(t, eval.String("hi"), v)

	// a custom environment does not include the primitives
	expr, err = parser.ParseToAST("add")
	require.NoError(t, err)
	_, err = eval.Evaluate(context.Background(), expr, env)
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	assert.Equal(t, "42", eval.Show(eval.Int(42)))
	assert.Equal(t, "-3", eval.Show(eval.Int(-3)))
	assert.Equal(t, "true", eval.Show(eval.Bool(true)))
	assert.Equal(t, `"a \"b\""`, eval.Show(eval.String(`a "b"`)))

	add, ok := eval.Primitives().Lookup("add")
	require.True(t, ok)
	assert.Equal(t, "<function>", eval.Show(add))
}

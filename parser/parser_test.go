package parser_test

import (
	"errors"
	"testing"

	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/lamberr"
	"github.com/cottand/lamb/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParse(t *testing.T, input string) ast.Expr {
	t.Helper()
	expr, err := parser.ParseToAST(input)
	require.NoError(t, err, "parsing %q", input)
	return expr
}

func TestNoPanics(t *testing.T) {
	inputs := map[string]string{
		"empty":                  ``,
		"only let":               `let`,
		"let without body":       `let x = 1 in`,
		"lone marker":            `\`,
		"lone paren":             `(`,
		"unbalanced parens":      `)))`,
		"unterminated string":    `"abc`,
		"lone quote":             `"`,
		"separator only":         `;`,
		"arrow only":             `->`,
		"nested lets on one in":  `let a = let b = 1 in b`,
		"application of nothing": `f )`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, _ = parser.ParseToAST(input)
			})
		})
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		input    string
		expected []string
	}{
		{`let x = 1 in x`, []string{"let", "x", "=", "1", "in", "x"}},
		{`  spaced   out  `, []string{"spaced", "out"}},
		{`"hello world" x`, []string{`"hello world"`, "x"}},
		{`"a;b(c) d"`, []string{`"a;b(c) d"`}},
		{`(x -> x) 2`, []string{`\x`, "->", "x", "2"}},
		{`(\x -> x) 2`, []string{`\x`, "->", "x", "2"}},
		{`\x -> x`, []string{`\x`, "->", "x"}},
		{`f(x)`, []string{"f", "x"}},
		{`(x -> (y -> y))`, []string{`\x`, "->", `\y`, "->", "y", ""}},
		{`let a = 1; a`, []string{"let", "a", "=", "1", "in", "a"}},
		{`let a = 1;a`, []string{"let", "a", "=", "1", "in", "a"}},
		{`let s = "a b"; s`, []string{"let", "s", "=", `"a b"`, "in", "s"}},
		{"let a = 1;\nlet b = 2;\nb", []string{"let", "a", "=", "1", "in", "let", "b", "=", "2", "in", "b"}},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			assert.Equal(t, c.expected, parser.TokenTexts(parser.Tokenize(c.input)))
		})
	}
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, parser.Tokenize(""))
	assert.Empty(t, parser.Tokenize(" \t\n"))
}

func TestTokenPositions(t *testing.T) {
	tokens := parser.Tokenize(`ab  cd;`)
	require.Len(t, tokens, 3)

	assert.Equal(t, ast.Range{PosStart: 1, PosEnd: 3}, tokens[0].Range)
	assert.Equal(t, ast.Range{PosStart: 5, PosEnd: 7}, tokens[1].Range)
	// the 'in' covers the ';' it replaced
	assert.Equal(t, "in", tokens[2].Text)
	assert.Equal(t, ast.Range{PosStart: 7, PosEnd: 8}, tokens[2].Range)
}

func TestParseLiterals(t *testing.T) {
	cases := []struct {
		input string
		kind  ast.LitKind
		check func(t *testing.T, lit *ast.Literal)
	}{
		{"1", ast.LitInt, func(t *testing.T, lit *ast.Literal) { assert.Equal(t, int64(1), lit.Int) }},
		{"042", ast.LitInt, func(t *testing.T, lit *ast.Literal) { assert.Equal(t, int64(42), lit.Int) }},
		{"true", ast.LitBool, func(t *testing.T, lit *ast.Literal) { assert.True(t, lit.Bool) }},
		// "false" is compared against the text "true", so it is not truthy just for being non-empty
		{"false", ast.LitBool, func(t *testing.T, lit *ast.Literal) { assert.False(t, lit.Bool) }},
		{`"hi"`, ast.LitString, func(t *testing.T, lit *ast.Literal) { assert.Equal(t, "hi", lit.Str) }},
		{`"hi there"`, ast.LitString, func(t *testing.T, lit *ast.Literal) { assert.Equal(t, "hi there", lit.Str) }},
		{`""`, ast.LitString, func(t *testing.T, lit *ast.Literal) { assert.Equal(t, "", lit.Str) }},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			expr := testParse(t, c.input)
			lit, ok := expr.(*ast.Literal)
			require.True(t, ok, "expected a literal, got %T", expr)
			assert.Equal(t, c.kind, lit.Kind)
			c.check(t, lit)
		})
	}
}

func TestParseVariable(t *testing.T) {
	expr := testParse(t, "someName")
	v, ok := expr.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "someName", v.Name)
	assert.Equal(t, ast.Range{PosStart: 1, PosEnd: 9}, v.Range)
}

func TestApplicationIsRightNested(t *testing.T) {
	expr := testParse(t, "f a b")

	outer, ok := expr.(*ast.Call)
	require.True(t, ok, "expected a call, got %T", expr)
	assert.Equal(t, "f", outer.Func.(*ast.Var).Name)

	inner, ok := outer.Arg.(*ast.Call)
	require.True(t, ok, "expected argument to be a call, got %T", outer.Arg)
	assert.Equal(t, "a", inner.Func.(*ast.Var).Name)
	assert.Equal(t, "b", inner.Arg.(*ast.Var).Name)

	assert.Equal(t, "f (a (b c))", ast.ExprString(testParse(t, "f a b c")))
}

func TestParseLambda(t *testing.T) {
	for _, input := range []string{`\x -> add x`, `(x -> add x)`, `(\x -> add x)`} {
		t.Run(input, func(t *testing.T) {
			expr := testParse(t, input)
			fn, ok := expr.(*ast.Func)
			require.True(t, ok, "expected a function, got %T", expr)
			assert.Equal(t, "x", fn.Param)
			assert.Equal(t, "add x", ast.ExprString(fn.Body))
		})
	}
}

func TestParseLet(t *testing.T) {
	expr := testParse(t, "let x = add 1 in intToString x")
	let, ok := expr.(*ast.Let)
	require.True(t, ok, "expected a let, got %T", expr)
	assert.Equal(t, "x", let.Var)
	assert.Equal(t, "add 1", ast.ExprString(let.Value))
	assert.Equal(t, "intToString x", ast.ExprString(let.Body))
	assert.Equal(t, ast.Range{PosStart: 1, PosEnd: 31}, let.Range)
}

func TestParseSeparatorIsLet(t *testing.T) {
	withSemi := testParse(t, "let x = 1; let y = x; y")
	withIn := testParse(t, "let x = 1 in let y = x in y")
	assert.Equal(t, ast.ExprString(withIn), ast.ExprString(withSemi))
}

func TestParseLambdaInLetWithScope(t *testing.T) {
	expr := testParse(t, `let x = 1 in (\x -> x) 2`)
	assert.Equal(t, `let x = 1 in (\x -> x) 2`, ast.ExprString(expr))

	let := expr.(*ast.Let)
	call, ok := let.Body.(*ast.Call)
	require.True(t, ok, "expected the lambda to be applied, got %T", let.Body)
	assert.IsType(t, &ast.Func{}, call.Func)
}

func TestParenthesisedLambdaEndsAtItsParen(t *testing.T) {
	cases := map[string]string{
		`(x -> x) 2`:                         `(\x -> x) 2`,
		`(x -> (y -> y) x)`:                  `\x -> (\y -> y) x`,
		`(x -> (y -> y)) 1 2`:                `(\x -> \y -> y) (1 2)`,
		`\x -> x 2`:                          `\x -> x 2`,
		`let f = (x -> let y = x in y) in f`: `let f = \x -> let y = x in y in f`,
		`f(x) y`:                             `f (x y)`,
	}

	for input, expected := range cases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, ast.ExprString(testParse(t, input)))
		})
	}
}

func TestTokenGroups(t *testing.T) {
	tokens := parser.Tokenize(`(x -> (y -> y))`)
	require.Len(t, tokens, 6)

	assert.True(t, tokens[0].Opens)
	assert.True(t, tokens[2].Opens)
	assert.Equal(t, 1, tokens[4].Closes)
	// the second ')' has nothing left to close but still yields a token
	assert.Equal(t, "", tokens[5].Text)
	assert.Equal(t, 1, tokens[5].Closes)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input   string
		message string
		token   string
	}{
		{"", "empty input", ""},
		{"   ", "empty input", ""},
		{"let x 1 in x", "expected '='", "1"},
		{"let x", "expected '='", "x"},
		{"let", "expects a name", "let"},
		{"let x = 1", "expects an 'in'", "let"},
		{"let x = in x", "empty input", ""},
		{"let x = 1 in", "empty input", ""},
		{`\x x`, "expected '->'", "x"},
		{`\x ->`, "empty input", ""},
		{`\ -> x`, "expects a parameter name", `\`},
		{`"abc`, "unterminated string literal", `"abc`},
		{`99999999999999999999`, "malformed integer literal", "99999999999999999999"},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			_, err := parser.ParseToAST(c.input)
			require.Error(t, err)

			var parseErr lamberr.NewParse
			require.True(t, errors.As(err, &parseErr), "expected a parse error, got %T", err)
			assert.Contains(t, parseErr.Error(), c.message)
			assert.Equal(t, c.token, parseErr.Token)
			assert.Equal(t, lamberr.Parse, parseErr.Code())
		})
	}
}

func TestParseErrorPointsAtToken(t *testing.T) {
	_, err := parser.ParseToAST(`\x => x`)
	var parseErr lamberr.NewParse
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, ast.Range{PosStart: 4, PosEnd: 6}, ast.RangeOf(parseErr))
}

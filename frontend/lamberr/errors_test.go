package lamberr_test

import (
	"testing"

	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/hm"
	"github.com/cottand/lamb/frontend/lamberr"
	"github.com/stretchr/testify/assert"
)

func TestTypeOperandsAreQuotedOnce(t *testing.T) {
	a, b := hm.TypeVar("'a"), hm.TypeVar("'b")
	cases := []struct {
		err      lamberr.LamError
		expected string
	}{
		{
			lamberr.New(lamberr.NewOccursCheck{Positioner: ast.Range{}, Var: a, Type: hm.Arrow(a, b)}),
			"(E004) occurs check failed: `'a` occurs in `'a -> 'b`, which would make an infinite type",
		},
		{
			lamberr.New(lamberr.NewTypeMismatch{Positioner: ast.Range{}, First: hm.Int, Second: hm.Arrow(hm.Int, a)}),
			"(E003) type mismatch: type `Int` cannot be unified with `Int -> 'a`",
		},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, lamberr.FormatWithCode(c.err))
	}
}

func TestFormatWithCodeAndSource(t *testing.T) {
	err := lamberr.New(lamberr.NewUndefinedVariable{
		Positioner: ast.Range{PosStart: 12, PosEnd: 13},
		Name:       "y",
	})
	expected := "(E002) unbound variable 'y'\n" +
		"   2 | add y 1\n" +
		"           ^"
	assert.Equal(t, expected, lamberr.FormatWithCodeAndSource(err, "let x;\nadd y 1"))
}

package util

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringTakeUntil(t *testing.T) {
	head, tail := StringTakeUntil(":ast add 1", ' ')
	assert.Equal(t, ":ast", head)
	assert.Equal(t, "add 1", tail)

	head, tail = StringTakeUntil(":q", ' ')
	assert.Equal(t, ":q", head)
	assert.Equal(t, "", tail)
}

func TestMangledIdent(t *testing.T) {
	cases := map[string]string{
		"x":        "v_x",
		"add":      "v_add",
		"func":     "v_func",
		"a_b":      "v_a_5f_b",
		"a'":       "v_a_27_",
		"x-y":      "v_x_2d_y",
		"naïve":    "v_naïve",
		"apply":    "v_apply",
		"v_apply":  "v_v_5f_apply",
		"1st":      "v_1st",
		"with.dot": "v_with_2e_dot",
	}

	for name, expected := range cases {
		t.Run(name, func(t *testing.T) {
			mangled := MangledIdent(name)
			assert.Equal(t, expected, mangled)
			assert.True(t, token.IsIdentifier(mangled))
		})
	}
}

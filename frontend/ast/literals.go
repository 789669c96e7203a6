package ast

import (
	"strconv"
)

type LitKind uint8

const (
	_ LitKind = iota
	LitBool
	LitInt
	LitString
)

func (k LitKind) String() string {
	switch k {
	case LitBool:
		return "bool"
	case LitInt:
		return "int"
	case LitString:
		return "string"
	default:
		return "invalid"
	}
}

// Literal is a constant value written in the source.
//
// Only the field matching Kind is meaningful.
type Literal struct {
	Kind LitKind
	// Syntax is the literal as it was written, including quotes for strings
	Syntax string

	Bool bool
	Int  int64
	Str  string

	Range
}

func BoolLiteral(value bool, in Positioner) *Literal {
	return &Literal{
		Kind:   LitBool,
		Syntax: strconv.FormatBool(value),
		Bool:   value,
		Range:  RangeOf(in),
	}
}

func IntLiteral(value int64, in Positioner) *Literal {
	return &Literal{
		Kind:   LitInt,
		Syntax: strconv.FormatInt(value, 10),
		Int:    value,
		Range:  RangeOf(in),
	}
}

// StringLiteral builds a string literal from its unquoted contents.
// No escape sequences exist in the surface syntax.
func StringLiteral(value string, in Positioner) *Literal {
	return &Literal{
		Kind:   LitString,
		Syntax: `"` + value + `"`,
		Str:    value,
		Range:  RangeOf(in),
	}
}

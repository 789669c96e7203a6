package parser

import (
	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/lamberr"
)

func syntaxError(msg string, at Token) lamberr.LamError {
	return lamberr.New(lamberr.NewParse{
		Positioner:    at.Range,
		ParserMessage: msg,
		Token:         at.Text,
	})
}

// emptyInput is reported when a sub-expression has no tokens at all;
// after points at whatever came right before the missing expression
func emptyInput(after ast.Range) lamberr.LamError {
	return lamberr.New(lamberr.NewParse{
		Positioner:    ast.Range{PosStart: after.PosEnd, PosEnd: after.PosEnd},
		ParserMessage: "empty input",
	})
}

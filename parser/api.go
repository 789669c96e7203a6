package parser

import (
	"github.com/cottand/lamb/frontend/ast"
)

// ParseToAST tokenizes and parses src into an expression tree
func ParseToAST(src string) (ast.Expr, error) {
	return Parse(Tokenize(src))
}

package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/internal/log"
)

const (
	keywordLet   = "let"
	keywordIn    = "in"
	keywordEq    = "="
	keywordArrow = "->"
)

var (
	logger     = ast.ExprLogger(log.DefaultLogger.With("section", log.SectionParser))
	intLiteral = regexp.MustCompile(`^[0-9]+$`)
)

// Parse builds an expression tree out of tokens.
//
// Empty tokens, which Tokenize produces for a ')' that closes nothing
// new, are skipped. Parse fails with a lamberr.NewParse when tokens is
// empty or when a required keyword is missing.
func Parse(tokens []Token) (ast.Expr, error) {
	tokens = dropEmpty(tokens)
	expr, err := parseExpression(tokens, ast.Range{})
	if err != nil {
		logger.Debug("parse failed", "tokens", TokenTexts(tokens), "err", err)
		return nil, err
	}
	logger.Debug("parsed", "expr", expr)
	return expr, nil
}

// dropEmpty removes empty tokens, handing the groups they closed
// to the token before them
func dropEmpty(tokens []Token) []Token {
	kept := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Text != "" {
			kept = append(kept, t)
			continue
		}
		closes := t.Closes
		if t.Opens {
			closes--
		}
		if closes > 0 && len(kept) > 0 {
			kept[len(kept)-1].Closes += closes
		}
	}
	return kept
}

// groupEnd returns the index of the token closing the group that
// tokens[0] opens, or the last index when the group is left open
func groupEnd(tokens []Token) int {
	depth := 0
	for i, t := range tokens {
		if t.Opens {
			depth++
		}
		depth -= t.Closes
		if depth <= 0 {
			return i
		}
	}
	return len(tokens) - 1
}

// indexOutsideGroups finds the first keyword that is not inside parentheses
func indexOutsideGroups(tokens []Token, keyword string) int {
	depth := 0
	for i, t := range tokens {
		if depth == 0 && t.Text == keyword {
			return i
		}
		if t.Opens {
			depth++
		}
		depth = max(depth-t.Closes, 0)
	}
	return -1
}

// parseExpression dispatches on the first token.
// after is the range of whatever precedes tokens, for error reporting
func parseExpression(tokens []Token, after ast.Range) (ast.Expr, error) {
	if len(tokens) == 0 {
		return nil, emptyInput(after)
	}
	switch {
	case tokens[0].Text == keywordLet:
		return parseLet(tokens)
	case strings.HasPrefix(tokens[0].Text, string(LambdaMarker)):
		return parseFuncGroup(tokens)
	case len(tokens) > 1:
		return parseCall(tokens)
	default:
		return parseLiteralOrVariable(tokens[0])
	}
}

// expect consumes the first of tokens, which must be keyword
func expect(keyword string, tokens []Token, after Token) ([]Token, Token, error) {
	if len(tokens) == 0 {
		return nil, Token{}, syntaxError("expected '"+keyword+"'", after)
	}
	if tokens[0].Text != keyword {
		return nil, Token{}, syntaxError("expected '"+keyword+"'", tokens[0])
	}
	return tokens[1:], tokens[0], nil
}

// parseLet parses let name = value in body
//
// value spans up to the first 'in' outside parentheses, so a let can only
// appear inside the value of another let within a parenthesised lambda.
func parseLet(tokens []Token) (ast.Expr, error) {
	letTok := tokens[0]
	if len(tokens) < 2 {
		return nil, syntaxError("let expression expects a name", letTok)
	}
	name := tokens[1]
	remaining, eqTok, err := expect(keywordEq, tokens[2:], name)
	if err != nil {
		return nil, err
	}

	inIndex := indexOutsideGroups(remaining, keywordIn)
	if inIndex == -1 {
		return nil, syntaxError("let expression expects an 'in'", letTok)
	}
	inTok := remaining[inIndex]

	value, err := parseExpression(remaining[:inIndex], eqTok.Range)
	if err != nil {
		return nil, err
	}
	body, err := parseExpression(remaining[inIndex+1:], inTok.Range)
	if err != nil {
		return nil, err
	}
	return &ast.Let{
		Var:   name.Text,
		Value: value,
		Body:  body,
		Range: ast.RangeBetween(letTok, body),
	}, nil
}

// parseFuncGroup parses a lambda. One opened by '(' ends at the matching
// ')', and whatever follows is applied to it: (x -> x) 2
func parseFuncGroup(tokens []Token) (ast.Expr, error) {
	end := len(tokens)
	if tokens[0].Opens {
		end = groupEnd(tokens) + 1
	}
	fn, err := parseFunc(tokens[:end])
	if err != nil {
		return nil, err
	}
	if end == len(tokens) {
		return fn, nil
	}
	arg, err := parseExpression(tokens[end:], tokens[end-1].Range)
	if err != nil {
		return nil, err
	}
	return &ast.Call{
		Func:  fn,
		Arg:   arg,
		Range: ast.RangeBetween(fn, arg),
	}, nil
}

// parseFunc parses \param -> body
func parseFunc(tokens []Token) (ast.Expr, error) {
	paramTok := tokens[0]
	param := strings.TrimPrefix(paramTok.Text, string(LambdaMarker))
	if param == "" {
		return nil, syntaxError("lambda expects a parameter name", paramTok)
	}
	remaining, arrowTok, err := expect(keywordArrow, tokens[1:], paramTok)
	if err != nil {
		return nil, err
	}
	body, err := parseExpression(remaining, arrowTok.Range)
	if err != nil {
		return nil, err
	}
	return &ast.Func{
		Param: param,
		Body:  body,
		Range: ast.RangeBetween(paramTok, body),
	}, nil
}

// parseCall parses f a b c as f (a (b c)): the function is always the
// first token alone, and the argument is everything after it
func parseCall(tokens []Token) (ast.Expr, error) {
	fn, err := parseExpression(tokens[:1], ast.Range{})
	if err != nil {
		return nil, err
	}
	arg, err := parseExpression(tokens[1:], tokens[0].Range)
	if err != nil {
		return nil, err
	}
	return &ast.Call{
		Func:  fn,
		Arg:   arg,
		Range: ast.RangeBetween(fn, arg),
	}, nil
}

func parseLiteralOrVariable(tok Token) (ast.Expr, error) {
	text := tok.Text
	switch {
	case text == "true" || text == "false":
		return ast.BoolLiteral(text == "true", tok), nil

	case intLiteral.MatchString(text):
		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, syntaxError("malformed integer literal", tok)
		}
		return ast.IntLiteral(value, tok), nil

	case strings.HasPrefix(text, `"`):
		if len(text) < 2 || !strings.HasSuffix(text, `"`) {
			return nil, syntaxError("unterminated string literal", tok)
		}
		return ast.StringLiteral(text[1:len(text)-1], tok), nil

	default:
		return &ast.Var{Name: text, Range: tok.Range}, nil
	}
}

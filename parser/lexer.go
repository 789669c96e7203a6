package parser

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cottand/lamb/frontend/ast"
)

// LambdaMarker starts a token that introduces a lambda, as in \x -> x.
// An opening parenthesis at the start of a token stands for it: (x -> x)
const LambdaMarker = '\\'

// Token is a lexed word together with the source range it came from.
//
// The range covers the source characters consumed for the token, which may
// differ from Text: a token seeded by '(' starts with LambdaMarker, and the
// 'in' produced by ';' covers the ';'.
type Token struct {
	Text string
	ast.Range

	// Opens is set when the token started right after a '('
	Opens bool
	// Closes counts the ')' that ended the token
	Closes int
}

// TokenTexts returns the text of each token
func TokenTexts(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}
	return texts
}

type lexer struct {
	tokens  []Token
	current strings.Builder
	// start is the byte offset where current began, or -1 if nothing has been consumed for it
	start    int
	inString bool
	// seeded is set while current holds nothing but the marker that '(' put there
	seeded bool
	// opened is set when the next emitted token starts a parenthesised group
	opened bool
}

// Tokenize splits input into tokens in a single left-to-right scan.
//
// Outside of string literals:
//   - whitespace separates tokens
//   - '(' at the start of a token seeds it with LambdaMarker, otherwise it
//     ends the current token. It is never emitted itself
//   - ')' always ends the current token, emitting it even when empty
//   - ';' ends the current token and emits the keyword 'in'
//
// A '"' opens or closes a string literal, and closing one emits
// the token immediately, quotes included.
//
// Parentheses are never tokens, but each Token records whether it opened
// or closed a group so that the parser can find where a (x -> ...) ends.
func Tokenize(input string) []Token {
	l := &lexer{start: -1}
	for offset, r := range input {
		width := utf8.RuneLen(r)
		if l.inString {
			l.append(offset, r)
			if r == '"' {
				l.inString = false
				l.emit(offset+width, false)
			}
			continue
		}

		switch {
		case r == '"':
			l.append(offset, r)
			l.inString = true
		case unicode.IsSpace(r):
			l.emit(offset, false)
		case r == '(':
			if l.current.Len() == 0 {
				l.append(offset, LambdaMarker)
				l.seeded = true
			} else {
				l.emit(offset, false)
			}
			l.opened = true
		case r == ')':
			l.emitClosing(offset)
		case r == ';':
			l.emit(offset, false)
			l.tokens = append(l.tokens, Token{
				Text:  "in",
				Range: ast.Range{PosStart: pos(offset), PosEnd: pos(offset + width)},
			})
		case r == LambdaMarker && l.seeded:
			// (\x -> x) is the same as (x -> x)
			l.seeded = false
		default:
			l.append(offset, r)
		}
	}
	l.emit(len(input), false)
	return l.tokens
}

// pos converts a byte offset into a 1-based token.Pos
func pos(offset int) token.Pos {
	return token.Pos(offset + 1)
}

func (l *lexer) append(offset int, r rune) {
	if l.start < 0 {
		l.start = offset
	}
	l.current.WriteRune(r)
	l.seeded = false
}

// emit ends the current token at offset end, adding it to the output
// if it is non-empty or if evenIfEmpty is set
func (l *lexer) emit(end int, evenIfEmpty bool) {
	l.emitToken(end, evenIfEmpty, 0)
}

// emitClosing emits the current token, even if empty, for a ')' at offset
func (l *lexer) emitClosing(offset int) {
	l.emitToken(offset, true, 1)
}

func (l *lexer) emitToken(end int, evenIfEmpty bool, closes int) {
	if l.current.Len() != 0 || evenIfEmpty {
		start := l.start
		if start < 0 {
			start = end
		}
		l.tokens = append(l.tokens, Token{
			Text:   l.current.String(),
			Range:  ast.Range{PosStart: pos(start), PosEnd: pos(end)},
			Opens:  l.opened,
			Closes: closes,
		})
		l.opened = false
	}
	l.current.Reset()
	l.start = -1
	l.seeded = false
}

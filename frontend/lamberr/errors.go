package lamberr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/hm"
)

// enableDebugErrorPrinting makes FormatWithCode prefix errors with the frame that created them
var enableDebugErrorPrinting = false

// SetDebug toggles printing of the frame that created an error
func SetDebug(enabled bool) { enableDebugErrorPrinting = enabled }

type ErrCode int

const (
	None ErrCode = iota
	Parse
	UndefinedVariable
	TypeMismatch
	OccursCheck
	UndefinedValue
	NotAFunction
)

// LamError is implemented by every error the frontend reports
// against a position in the source
type LamError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) LamError
	getStack() []byte
}

// FormatWithCode renders e as (E003) message
func FormatWithCode(e LamError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		lines := strings.Split(string(e.getStack()), "\n")
		// 0: goroutine header, 1-2: debug.Stack, 3-4: New, 5-6: the caller of New
		frame := ""
		if len(lines) > 6 {
			frame = strings.TrimSpace(lines[6])
		}
		return fmt.Sprintf("%s:(E%03d) %s", frame, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// New records the stack of the caller onto err
func New[E LamError](err E) LamError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Unwrap() error    { return e.From }
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

// NewParse is reported when the input cannot be parsed
type NewParse struct {
	ast.Positioner
	ParserMessage string
	// Token is the offending token, if any
	Token string
	stack []byte
}

func (e NewParse) Error() string {
	if e.Token == "" {
		return "parse error: " + e.ParserMessage
	}
	return fmt.Sprintf("parse error: %s, at '%s'", e.ParserMessage, e.Token)
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

// NewUndefinedVariable is a type error: the name is not bound in the typing context
type NewUndefinedVariable struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Code() ErrCode { return UndefinedVariable }
func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("unbound variable '%s'", e.Name)
}
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

type NewTypeMismatch struct {
	ast.Positioner
	First  hm.Type
	Second hm.Type
	stack  []byte
}

func (e NewTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: type `%v` cannot be unified with `%v`", e.First, e.Second)
}
func (e NewTypeMismatch) Code() ErrCode    { return TypeMismatch }
func (e NewTypeMismatch) getStack() []byte { return e.stack }
func (e NewTypeMismatch) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

// NewOccursCheck is reported when binding Var to Type would build an infinite type
type NewOccursCheck struct {
	ast.Positioner
	Var   hm.TypeVar
	Type  hm.Type
	stack []byte
}

func (e NewOccursCheck) Error() string {
	return fmt.Sprintf("occurs check failed: `%v` occurs in `%v`, which would make an infinite type", e.Var, e.Type)
}
func (e NewOccursCheck) Code() ErrCode    { return OccursCheck }
func (e NewOccursCheck) getStack() []byte { return e.stack }
func (e NewOccursCheck) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

// NewUndefinedValue is an evaluation error: the name has no value in the environment
type NewUndefinedValue struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedValue) Code() ErrCode { return UndefinedValue }
func (e NewUndefinedValue) Error() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}
func (e NewUndefinedValue) getStack() []byte { return e.stack }
func (e NewUndefinedValue) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

// NewNotAFunction is an evaluation error: a value that is not a function was applied
type NewNotAFunction struct {
	ast.Positioner
	// Value is the rendered value that was applied
	Value string
	stack []byte
}

func (e NewNotAFunction) Code() ErrCode { return NotAFunction }
func (e NewNotAFunction) Error() string {
	return fmt.Sprintf("cannot apply %s: it is not a function", e.Value)
}
func (e NewNotAFunction) getStack() []byte { return e.stack }
func (e NewNotAFunction) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

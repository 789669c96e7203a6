package ast

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Let)(nil)
)

// Expr is the base for all expressions.
//
// The following expressions are supported:
//
//	Literal:  boolean, integer or string literal
//	Var:      variable
//	Call:     application of a function to a single argument
//	Func:     single-parameter function abstraction
//	Let:      non-recursive let-binding
//
// The set is closed: consumers type-switch over these five and
// treat anything else as a bug.
type Expr interface {
	Positioner
	// ExprName is the Name of the syntax-type of the expression.
	ExprName() string
	// Describe is what to call this expression in error messages
	Describe() string
	exprNode()
}

func (e *Literal) Describe() string { return e.Kind.String() + " literal" }
func (e *Var) Describe() string     { return "variable" }
func (e *Call) Describe() string    { return "function application" }
func (e *Func) Describe() string    { return "function" }
func (e *Let) Describe() string     { return "let binding" }

func (e *Literal) ExprName() string { return e.Syntax }
func (e *Var) ExprName() string     { return e.Name }
func (e *Call) ExprName() string    { return "Call" }
func (e *Func) ExprName() string    { return "Func" }
func (e *Let) ExprName() string     { return "Let" }

func (*Literal) exprNode() {}
func (*Var) exprNode()     {}
func (*Call) exprNode()    {}
func (*Func) exprNode()    {}
func (*Let) exprNode()     {}

// Var is a reference to a bound identifier.
type Var struct {
	Name string
	Range
}

// Call is the application of Func to Arg.
type Call struct {
	Func Expr
	Arg  Expr
	Range
}

// Func is a lambda abstraction: \Param -> Body
type Func struct {
	Param string
	Body  Expr
	Range
}

// Let binds Var to Value, visible only within Body.
//
// Let is not recursive: Var is not in scope in Value.
type Let struct {
	Var   string
	Value Expr
	Body  Expr
	Range
}

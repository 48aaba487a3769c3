/*
File    : lox/ast/expr.go

Package ast holds the expression and statement node types produced by the
parser. Every node is a plain struct implementing Accept, following the
visitor pattern so the resolver and the evaluator can each walk the same
tree without the tree knowing about either of them.

Every expression node carries a stable NodeID, assigned once at parse
time, so the resolver can key its node-identity -> distance side table on
something that survives unchanged through resolution and evaluation.
*/
package ast

import "github.com/loxwalk/lox/lexer"

// Expr is any expression node.
type Expr interface {
	Accept(v ExprVisitor) (any, error)
	ID() int
}

// ExprVisitor dispatches on concrete expression node types.
type ExprVisitor interface {
	VisitLiteralExpr(e *Literal) (any, error)
	VisitGroupingExpr(e *Grouping) (any, error)
	VisitUnaryExpr(e *Unary) (any, error)
	VisitBinaryExpr(e *Binary) (any, error)
	VisitLogicalExpr(e *Logical) (any, error)
	VisitVariableExpr(e *Variable) (any, error)
	VisitAssignExpr(e *Assign) (any, error)
	VisitCallExpr(e *Call) (any, error)
	VisitGetExpr(e *Get) (any, error)
	VisitSetExpr(e *Set) (any, error)
	VisitThisExpr(e *This) (any, error)
	VisitSuperExpr(e *Super) (any, error)
}

// Base is embedded by every expression node to supply NodeID/ID without
// repeating the field and accessor on each type.
type Base struct {
	NodeID int
}

func (e Base) ID() int { return e.NodeID }

// Literal is a constant value appearing directly in source: a number,
// string, boolean, or nil.
type Literal struct {
	Base
	Value any
}

func (e *Literal) Accept(v ExprVisitor) (any, error) { return v.VisitLiteralExpr(e) }

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so a printer could reproduce the source parentheses.
type Grouping struct {
	Base
	Expression Expr
}

func (e *Grouping) Accept(v ExprVisitor) (any, error) { return v.VisitGroupingExpr(e) }

// Unary is a prefix operator application: "-x" or "!x".
type Unary struct {
	Base
	Operator lexer.Token
	Right    Expr
}

func (e *Unary) Accept(v ExprVisitor) (any, error) { return v.VisitUnaryExpr(e) }

// Binary is an infix operator application evaluating both operands
// unconditionally (unlike Logical).
type Binary struct {
	Base
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Binary) Accept(v ExprVisitor) (any, error) { return v.VisitBinaryExpr(e) }

// Logical is "and"/"or"; it short-circuits and never forces its operands
// to booleans, so it gets its own node instead of sharing Binary.
type Logical struct {
	Base
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Logical) Accept(v ExprVisitor) (any, error) { return v.VisitLogicalExpr(e) }

// Variable reads the value bound to Name, resolved by the resolver to a
// local distance or left to fall back to globals.
type Variable struct {
	Base
	Name lexer.Token
}

func (e *Variable) Accept(v ExprVisitor) (any, error) { return v.VisitVariableExpr(e) }

// Assign stores Value under Name, same resolution rules as Variable.
type Assign struct {
	Base
	Name  lexer.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (any, error) { return v.VisitAssignExpr(e) }

// Call invokes Callee with Args. Paren is the closing ")" token, kept so
// runtime errors (arity mismatch, non-callable target) can report a line.
type Call struct {
	Base
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (e *Call) Accept(v ExprVisitor) (any, error) { return v.VisitCallExpr(e) }

// Get reads property Name off Object — a field if present, else a bound
// method lookup on the instance's class chain.
type Get struct {
	Base
	Object Expr
	Name   lexer.Token
}

func (e *Get) Accept(v ExprVisitor) (any, error) { return v.VisitGetExpr(e) }

// Set assigns Value to property Name on Object.
type Set struct {
	Base
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (e *Set) Accept(v ExprVisitor) (any, error) { return v.VisitSetExpr(e) }

// This reads the instance bound in the nearest enclosing method scope.
type This struct {
	Base
	Keyword lexer.Token
}

func (e *This) Accept(v ExprVisitor) (any, error) { return v.VisitThisExpr(e) }

// Super reads Method off the superclass of the enclosing class, bound to
// the current instance.
type Super struct {
	Base
	Keyword lexer.Token
	Method  lexer.Token
}

func (e *Super) Accept(v ExprVisitor) (any, error) { return v.VisitSuperExpr(e) }

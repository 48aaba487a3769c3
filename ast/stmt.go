/*
File    : lox/ast/stmt.go
*/
package ast

import "github.com/loxwalk/lox/lexer"

// Stmt is any statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// StmtVisitor dispatches on concrete statement node types.
type StmtVisitor interface {
	VisitExprStmt(s *ExprStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
	VisitClassStmt(s *ClassStmt) error
}

// ExprStmt evaluates an expression for its side effects, discarding the
// result.
type ExprStmt struct {
	Expression Expr
}

func (s *ExprStmt) Accept(v StmtVisitor) error { return v.VisitExprStmt(s) }

// PrintStmt evaluates an expression and writes its canonical display form.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares Name in the current scope, bound to Initializer's
// value or nil if Initializer is absent.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil when there is no initializer
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt is a sequence of statements sharing one fresh lexical scope.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt executes Then when Condition is truthy, otherwise Else (which
// may be nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when there is no else branch
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt repeats Body while Condition is truthy. The parser desugars
// "for" into this plus an enclosing BlockStmt.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function (or, nested inside a ClassStmt,
// a method). Params holds parameter name tokens; Body is executed as a
// block when called.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds to the nearest enclosing function call, carrying
// Value's result (nil when Value is absent).
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil when there is no return value
}

func (s *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }

// ClassStmt declares a class: its own Methods (reusing FunctionStmt) and
// an optional Superclass reference resolved like any other Variable use.
type ClassStmt struct {
	Name       lexer.Token
	Superclass *Variable // nil when there is no "< Superclass" clause
	Methods    []*FunctionStmt
}

func (s *ClassStmt) Accept(v StmtVisitor) error { return v.VisitClassStmt(s) }

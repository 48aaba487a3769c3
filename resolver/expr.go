/*
File    : lox/resolver/expr.go
*/
package resolver

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/loxerr"
)

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (any, error) { return nil, nil }

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) (any, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (any, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

// VisitVariableExpr guards the one case resolveLocal can't: reading a
// name inside its own initializer, e.g. "var a = a;".
func (r *Resolver) VisitVariableExpr(e *ast.Variable) (any, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.errs.Report(loxerr.New(loxerr.Resolve, e.Name.Line,
				"can't read local variable '%s' in its own initializer", e.Name.Lexeme))
		}
	}
	r.resolveLocal(e.ID(), e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.Assign) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e.ID(), e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) (any, error) {
	r.resolveExpr(e.Callee)
	for _, a := range e.Args {
		r.resolveExpr(a)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) (any, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) (any, error) {
	if r.currentCls == classNone {
		r.errs.Report(loxerr.New(loxerr.Resolve, e.Keyword.Line, "can't use 'this' outside of a class"))
		return nil, nil
	}
	r.resolveLocal(e.ID(), "this")
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *ast.Super) (any, error) {
	switch r.currentCls {
	case classNone:
		r.errs.Report(loxerr.New(loxerr.Resolve, e.Keyword.Line, "can't use 'super' outside of a class"))
	case classClass:
		r.errs.Report(loxerr.New(loxerr.Resolve, e.Keyword.Line, "can't use 'super' in a class with no superclass"))
	}
	r.resolveLocal(e.ID(), "super")
	return nil, nil
}

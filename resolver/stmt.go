/*
File    : lox/resolver/stmt.go
*/
package resolver

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/loxerr"
)

func (r *Resolver) VisitExprStmt(s *ast.ExprStmt) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) error {
	r.declare(s.Name.Line, s.Name.Lexeme)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) error {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) error {
	r.declare(s.Name.Line, s.Name.Lexeme)
	r.define(s.Name.Lexeme)
	r.resolveFunction(s, fnFunction)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) error {
	if r.currentFn == fnNone {
		r.errs.Report(loxerr.New(loxerr.Resolve, s.Keyword.Line, "can't return from top-level code"))
	}
	if s.Value != nil {
		if r.currentFn == fnInitializer {
			r.errs.Report(loxerr.New(loxerr.Resolve, s.Keyword.Line, "can't return a value from an initializer"))
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) error {
	enclosingCls := r.currentCls
	r.currentCls = classClass
	defer func() { r.currentCls = enclosingCls }()

	r.declare(s.Name.Line, s.Name.Lexeme)
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errs.Report(loxerr.New(loxerr.Resolve, s.Superclass.Name.Line, "a class can't inherit from itself"))
		}
		r.currentCls = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}
	return nil
}

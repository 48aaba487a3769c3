/*
File    : lox/interp/stmt.go
*/
package interp

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/control"
	"github.com/loxwalk/lox/environment"
	"github.com/loxwalk/lox/loxerr"
	"github.com/loxwalk/lox/loxvalue"
)

func (it *Interpreter) VisitExprStmt(s *ast.ExprStmt) error {
	_, err := it.evaluate(s.Expression)
	return err
}

func (it *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := it.evaluate(s.Expression)
	if err != nil {
		return err
	}
	it.print(v)
	return nil
}

func (it *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	var value any
	if s.Initializer != nil {
		v, err := it.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	it.env.Define(s.Name.Lexeme, value)
	return nil
}

func (it *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return it.ExecuteBlock(s.Statements, environment.New(it.env))
}

func (it *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := it.evaluate(s.Condition)
	if err != nil {
		return err
	}
	switch {
	case isTruthy(cond):
		return it.execute(s.Then)
	case s.Else != nil:
		return it.execute(s.Else)
	default:
		return nil
	}
}

func (it *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := it.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := it.execute(s.Body); err != nil {
			return err
		}
	}
}

func (it *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	fn := &loxvalue.Function{Declaration: s, Closure: it.env}
	it.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (it *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) error {
	var value any
	if s.Value != nil {
		v, err := it.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &control.Return{Value: value}
}

func (it *Interpreter) VisitClassStmt(s *ast.ClassStmt) error {
	var superclass *loxvalue.Class
	if s.Superclass != nil {
		v, err := it.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*loxvalue.Class)
		if !ok {
			return loxerr.New(loxerr.Runtime, s.Superclass.Name.Line, "superclass must be a class")
		}
		superclass = sc
	}

	it.env.Define(s.Name.Lexeme, nil)

	classEnv := it.env
	if superclass != nil {
		classEnv = environment.New(it.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*loxvalue.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &loxvalue.Function{
			Declaration:   m,
			Closure:       classEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &loxvalue.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	it.env.Assign(s.Name.Lexeme, class)
	return nil
}

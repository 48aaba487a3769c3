/*
File    : lox/interp/expr.go
*/
package interp

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/lexer"
	"github.com/loxwalk/lox/loxerr"
	"github.com/loxwalk/lox/loxvalue"
)

func (it *Interpreter) VisitLiteralExpr(e *ast.Literal) (any, error) {
	return e.Value, nil
}

func (it *Interpreter) VisitGroupingExpr(e *ast.Grouping) (any, error) {
	return it.evaluate(e.Expression)
}

func (it *Interpreter) VisitUnaryExpr(e *ast.Unary) (any, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		n, err := checkNumber(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case lexer.BANG:
		return !isTruthy(right), nil
	}
	return nil, loxerr.New(loxerr.Runtime, e.Operator.Line, "unknown unary operator '%s'", e.Operator.Lexeme)
}

func (it *Interpreter) VisitBinaryExpr(e *ast.Binary) (any, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	op := e.Operator

	switch op.Type {
	case lexer.MINUS:
		l, r, err := checkNumbers(op, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case lexer.SLASH:
		l, r, err := checkNumbers(op, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case lexer.STAR:
		l, r, err := checkNumbers(op, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case lexer.PLUS:
		return addOrConcat(op, left, right)
	case lexer.GREATER:
		l, r, err := checkNumbers(op, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case lexer.GREATER_EQUAL:
		l, r, err := checkNumbers(op, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case lexer.LESS:
		l, r, err := checkNumbers(op, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case lexer.LESS_EQUAL:
		l, r, err := checkNumbers(op, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	return nil, loxerr.New(loxerr.Runtime, op.Line, "unknown binary operator '%s'", op.Lexeme)
}

func (it *Interpreter) VisitLogicalExpr(e *ast.Logical) (any, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else { // AND
		if !isTruthy(left) {
			return left, nil
		}
	}
	return it.evaluate(e.Right)
}

func (it *Interpreter) VisitVariableExpr(e *ast.Variable) (any, error) {
	return it.lookUpVariable(e.Name.Lexeme, e.ID(), e.Name.Line)
}

func (it *Interpreter) VisitAssignExpr(e *ast.Assign) (any, error) {
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := it.locals[e.ID()]; ok {
		it.env.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if !it.Globals.Assign(e.Name.Lexeme, value) {
		return nil, loxerr.New(loxerr.Runtime, e.Name.Line, "undefined variable '%s'", e.Name.Lexeme)
	}
	return value, nil
}

func (it *Interpreter) VisitCallExpr(e *ast.Call) (any, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]any, len(e.Args))
	for i, a := range e.Args {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(loxvalue.Callable)
	if !ok {
		return nil, loxerr.New(loxerr.Runtime, e.Paren.Line, "can only call functions and classes")
	}
	if len(args) != fn.Arity() {
		return nil, loxerr.New(loxerr.Runtime, e.Paren.Line,
			"expected %d arguments but got %d", fn.Arity(), len(args))
	}
	return fn.Call(it, args)
}

func (it *Interpreter) VisitGetExpr(e *ast.Get) (any, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*loxvalue.Instance)
	if !ok {
		return nil, loxerr.New(loxerr.Runtime, e.Name.Line, "only instances have properties")
	}
	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return nil, loxerr.New(loxerr.Runtime, e.Name.Line, "undefined property '%s'", e.Name.Lexeme)
	}
	return v, nil
}

func (it *Interpreter) VisitSetExpr(e *ast.Set) (any, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*loxvalue.Instance)
	if !ok {
		return nil, loxerr.New(loxerr.Runtime, e.Name.Line, "only instances have fields")
	}
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (it *Interpreter) VisitThisExpr(e *ast.This) (any, error) {
	return it.lookUpVariable("this", e.ID(), e.Keyword.Line)
}

// VisitSuperExpr fetches the superclass from the ancestor frame the
// resolver recorded for "super", and the bound instance from one frame
// closer in (distance-1), per spec.md §4.4.
func (it *Interpreter) VisitSuperExpr(e *ast.Super) (any, error) {
	distance, ok := it.locals[e.ID()]
	if !ok {
		return nil, loxerr.New(loxerr.Runtime, e.Keyword.Line, "unresolved 'super'")
	}
	superVal, _ := it.env.GetAt(distance, "super")
	superclass, _ := superVal.(*loxvalue.Class)

	instEnv := it.env.Ancestor(distance - 1)
	thisVal, _ := instEnv.Get("this")
	instance, _ := thisVal.(*loxvalue.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, loxerr.New(loxerr.Runtime, e.Method.Line, "undefined property '%s'", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

// --- shared value helpers ---

func isTruthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

func isEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		return af == bf // NaN != NaN falls out of IEEE-754 == here
	}
	return a == b
}

func checkNumber(op lexer.Token, v any) (float64, error) {
	if n, ok := v.(float64); ok {
		return n, nil
	}
	return 0, loxerr.New(loxerr.Runtime, op.Line, "operand must be a number")
}

func checkNumbers(op lexer.Token, a, b any) (float64, float64, error) {
	an, aok := a.(float64)
	bn, bok := b.(float64)
	if !aok || !bok {
		return 0, 0, loxerr.New(loxerr.Runtime, op.Line, "operands must be numbers")
	}
	return an, bn, nil
}

// addOrConcat implements Lox's overloaded '+': numeric sum, string
// concatenation, or a runtime error for any other combination.
func addOrConcat(op lexer.Token, a, b any) (any, error) {
	if an, ok := a.(float64); ok {
		if bn, ok := b.(float64); ok {
			return an + bn, nil
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as + bs, nil
		}
	}
	return nil, loxerr.New(loxerr.Runtime, op.Line, "operands must be two numbers or two strings")
}

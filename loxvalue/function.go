/*
File    : lox/loxvalue/function.go

Grounded on the teacher's function/function.go: a Function is its
declaration plus the scope captured at the point the declaration was
evaluated (its closure), which is what makes counters and other stateful
closures work (see spec.md §8 scenario 2).
*/
package loxvalue

import (
	"fmt"

	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/control"
	"github.com/loxwalk/lox/environment"
)

// Function is a user-defined function or method value: its declaration,
// the frame it closes over, and whether it is a class's "init" method
// (which always returns the bound instance regardless of any "return").
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Call creates a fresh frame parented on the closure, binds parameters to
// args, and runs the body as a block. A Return unwinding out of the body
// supplies the result; falling off the end of the body yields nil,
// except for an initializer, whose result is always the instance bound
// to "this" in its closure frame (the frame Bind added) — regardless of
// what (if anything) its body returned.
func (f *Function) Call(it Interp, args []any) (any, error) {
	env := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := it.ExecuteBlock(f.Declaration.Body, env)
	if ret, ok := err.(*control.Return); ok {
		if f.IsInitializer {
			return f.boundInstance()
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.boundInstance()
	}
	return nil, nil
}

func (f *Function) boundInstance() (any, error) {
	this, _ := f.Closure.GetAt(0, "this")
	return this, nil
}

// Bind returns a new Function identical to f except its closure is
// extended with a fresh frame defining "this" = instance. The original
// body is unchanged; the result is itself a first-class value that may
// be stored in a variable and invoked later (spec.md §8 scenario 3).
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// NativeFunction wraps a host-provided builtin such as clock().
type NativeFunction struct {
	Name string
	Ar   int
	Fn   func(args []any) (any, error)
}

func (n *NativeFunction) Arity() int { return n.Ar }

func (n *NativeFunction) Call(_ Interp, args []any) (any, error) {
	return n.Fn(args)
}

func (n *NativeFunction) String() string {
	return fmt.Sprintf("<native fn %s>", n.Name)
}

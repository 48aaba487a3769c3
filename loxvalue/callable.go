/*
File    : lox/loxvalue/callable.go

Package loxvalue holds the runtime value representation: the literal
value is simply Go's `any`, narrowed at each use site to float64, string,
bool, nil, or one of the four types defined in this package (Function,
NativeFunction, Class, Instance).

Function, Class and NativeFunction all share the two-operation call
capability spec.md §9 describes: Arity and Call. Keeping that as a small
interface — rather than a tagged variant — is the idiomatic Go shape and
matches how go-mix's Function/GoMixStruct pair expose GetName/GetMethod
without a shared supertype of their own; here we add the supertype
because the evaluator genuinely needs to invoke either kind uniformly.
*/
package loxvalue

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/environment"
)

// Interp is the slice of interpreter behavior a Callable needs to run its
// body. Declaring it here (rather than importing the interp package)
// avoids a loxvalue<->interp import cycle: interp depends on loxvalue for
// the values it manipulates, and loxvalue depends back on only this
// interface, which interp.Interpreter satisfies structurally.
type Interp interface {
	// ExecuteBlock runs stmts with env as the active frame, restoring the
	// previously active frame on every exit path including error/return.
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error
}

// Callable is any value that can appear as the callee of a Call
// expression: a user-defined Function, a Class acting as its own
// constructor, or a host-provided NativeFunction such as clock().
type Callable interface {
	Arity() int
	Call(it Interp, args []any) (any, error)
	String() string
}

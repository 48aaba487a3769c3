/*
File    : lox/interp/interp.go

Package interp is the tree-walking evaluator: spec.md §4.4. It owns the
globals frame, the currently active frame, and the resolver's node-id ->
distance side table, and exposes Interpret to run a program plus Resolve
for the resolver to populate that table before Interpret runs.

Grounded on the teacher's eval/evaluator.go for the overall shape (an
Evaluator struct holding scope + writer + builtins, constructed once and
reused across REPL lines), generalized from go-mix's dynamic scope chain
to the resolver-assisted lexical lookup spec.md requires.
*/
package interp

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/environment"
	"github.com/loxwalk/lox/loxerr"
	"github.com/loxwalk/lox/loxvalue"
)

// Interpreter walks a resolved program, producing print side effects and
// a terminal success/failure. One Interpreter persists across REPL lines
// (so the globals frame accumulates declarations); a fresh one backs
// each file run.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	locals  map[int]int // node id -> distance, filled in by the resolver
	writer  io.Writer
	errs    *loxerr.Reporter
}

// New creates an Interpreter with clock() installed in its globals frame
// and output directed to stdout.
func New(rep *loxerr.Reporter) *Interpreter {
	globals := environment.New(nil)
	it := &Interpreter{
		Globals: globals,
		env:     globals,
		locals:  make(map[int]int),
		writer:  os.Stdout,
		errs:    rep,
	}
	it.defineNatives()
	return it
}

// SetWriter redirects print output, primarily for tests capturing stdout.
func (it *Interpreter) SetWriter(w io.Writer) {
	it.writer = w
}

func (it *Interpreter) defineNatives() {
	it.Globals.Define("clock", &loxvalue.NativeFunction{
		Name: "clock",
		Ar:   0,
		Fn: func(args []any) (any, error) {
			return float64(time.Now().UnixMilli()), nil
		},
	})
}

// Resolve records that the expression node nodeID resolves to a local
// variable distance scopes out from wherever it is evaluated. Called by
// the resolver; absent entries mean "look up in globals instead".
func (it *Interpreter) Resolve(nodeID int, distance int) {
	it.locals[nodeID] = distance
}

// Interpret runs every statement in program in order. It returns the
// first runtime error encountered (a *loxerr.Error), if any; the caller
// is responsible for having already checked for lexical/parse/resolve
// errors before calling this.
func (it *Interpreter) Interpret(program []ast.Stmt) error {
	for _, stmt := range program {
		if err := it.execute(stmt); err != nil {
			return it.asRuntimeError(err)
		}
	}
	return nil
}

func (it *Interpreter) asRuntimeError(err error) error {
	if rerr, ok := err.(*loxerr.Error); ok {
		it.errs.Report(rerr)
		return rerr
	}
	wrapped := loxerr.New(loxerr.Runtime, 0, "%s", err.Error())
	it.errs.Report(wrapped)
	return wrapped
}

func (it *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.Accept(it)
}

// ExecuteBlock runs stmts with env as the active frame, implementing
// loxvalue.Interp so Function.Call can invoke function bodies. The
// previously active frame is restored on every exit path, including an
// error or Return unwinding through.
func (it *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) evaluate(expr ast.Expr) (any, error) {
	return expr.Accept(it)
}

// print writes value's canonical display form followed by a newline.
func (it *Interpreter) print(value any) {
	fmt.Fprintln(it.writer, loxvalue.Stringify(value))
}

// lookUpVariable reads name for a node the resolver may have recorded a
// local distance for; an absent entry falls back to a late-bound lookup
// in globals, per spec.md §9's global/local distinction.
func (it *Interpreter) lookUpVariable(name string, nodeID int, line int) (any, error) {
	if distance, ok := it.locals[nodeID]; ok {
		if v, ok := it.env.GetAt(distance, name); ok {
			return v, nil
		}
	} else if v, ok := it.Globals.Get(name); ok {
		return v, nil
	}
	return nil, loxerr.New(loxerr.Runtime, line, "undefined variable '%s'", name)
}

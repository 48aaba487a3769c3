/*
File    : lox/resolver/resolver.go

Package resolver performs the single static pass described in spec.md
§4.3: for every variable read, assignment, "this" and "super" use, it
computes how many enclosing lexical scopes separate the use from its
declaration (its "distance") and records that on the evaluator's side
table. Uses with no recorded distance fall back to late-bound global
lookup at evaluation time.

The resolver also catches every static error spec.md §7 assigns to this
stage: reading a local in its own initializer, redeclaring a local,
"return" outside a function, a valued "return" from an initializer,
"this" outside a class, "super" outside a subclass, and a class
inheriting from itself.
*/
package resolver

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/loxerr"
)

// Resolvable is the side table the resolver writes into. interp.Interpreter
// implements this; keeping it as a narrow interface here avoids an import
// cycle between resolver and interp.
type Resolvable interface {
	Resolve(nodeID int, depth int)
}

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// scope maps a name to whether its declaration has finished resolving
// its initializer yet (false = declared but not yet defined).
type scope map[string]bool

// Resolver walks a program once, depth-first, maintaining a stack of
// lexical scopes that mirrors the block/function/class nesting the
// evaluator will later maintain at runtime with environment frames.
type Resolver struct {
	interp      Resolvable
	errs        *loxerr.Reporter
	scopes      []scope
	currentFn   functionKind
	currentCls  classKind
}

// New creates a Resolver that records distances on interp and reports
// static errors on rep.
func New(interp Resolvable, rep *loxerr.Reporter) *Resolver {
	return &Resolver{interp: interp, errs: rep}
}

// Resolve walks every top-level statement.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	_ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare inserts name into the innermost scope as not-yet-defined. At
// global scope (no open scopes) this is a no-op: globals are late-bound
// and may shadow freely in any order.
func (r *Resolver) declare(line int, text string) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if _, ok := s[text]; ok {
		r.errs.Report(loxerr.New(loxerr.Resolve, line, "already a variable named '%s' in this scope", text))
	}
	s[text] = false
}

func (r *Resolver) define(text string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][text] = true
}

// resolveLocal scans scopes innermost-first; the first scope containing
// name yields the distance recorded for nodeID. No match means the use
// resolves at evaluation time against the globals frame instead.
func (r *Resolver) resolveLocal(nodeID int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.interp.Resolve(nodeID, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFn := r.currentFn
	r.currentFn = kind
	defer func() { r.currentFn = enclosingFn }()

	r.beginScope()
	defer r.endScope()
	for _, p := range fn.Params {
		r.declare(p.Line, p.Lexeme)
		r.define(p.Lexeme)
	}
	r.resolveStmts(fn.Body)
}

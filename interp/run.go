/*
File    : lox/interp/run.go

Run is the core's single entry point, spec.md §6: given a source string
and a host Interpreter, it runs the full lexer -> parser -> resolver ->
evaluator pipeline to completion, or stops and reports at the first stage
that produced any diagnostic. The host (REPL or file runner) is
responsible for constructing the Interpreter, choosing whether it
persists across calls, and deciding the process exit code from the
returned error.
*/
package interp

import (
	"github.com/loxwalk/lox/lexer"
	"github.com/loxwalk/lox/loxerr"
	"github.com/loxwalk/lox/parser"
	"github.com/loxwalk/lox/resolver"
)

// Run executes source against it. rep accumulates diagnostics from every
// stage; Run returns rep.Errors()[0] (wrapped, if necessary) as a
// conventional error so callers that only care about success/failure can
// use the plain `err != nil` check, while callers that want every
// diagnostic can inspect rep directly.
func Run(source string, it *Interpreter, rep *loxerr.Reporter) error {
	tokens := lexer.New(source, rep).ScanTokens()
	if rep.HadError() {
		return rep.Errors()[0]
	}

	program := parser.New(tokens, rep).Parse()
	if rep.HadError() {
		return rep.Errors()[0]
	}

	resolver.New(it, rep).Resolve(program)
	if rep.HadError() {
		return rep.Errors()[0]
	}

	return it.Interpret(program)
}

/*
File    : lox/loxerr/loxerr.go

Package loxerr defines the diagnostic kinds shared by every stage of the
pipeline (lexer, parser, resolver, evaluator). Every stage reports through
the same shape so the host can collect, colorize, and display errors
uniformly regardless of which stage produced them.
*/
package loxerr

import "fmt"

// Kind classifies which pipeline stage raised an Error.
type Kind string

const (
	Lex      Kind = "lexical error"
	Parse    Kind = "parse error"
	Resolve  Kind = "static error"
	Runtime  Kind = "runtime error"
)

// Error is a single diagnostic: its stage, a human-readable message, and
// the source line it concerns (0 when no line is known).
type Error struct {
	Kind    Kind
	Message string
	Line    int
}

// New constructs an Error for the given stage.
func New(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line}
}

// Error renders the diagnostic as "[line N] <kind>: msg": the original Lox
// host's "[line N] Error: msg" form with the stage name in place of "Error",
// so lexical, parse, static and runtime errors are distinguishable in mixed
// output. The "[line N] " tag is left out when Line is 0.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[line %d] %s: %s", e.Line, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Reporter accumulates diagnostics for a single run. A run with any
// reported error must not proceed to the next pipeline stage.
type Reporter struct {
	errors []*Error
}

// Report records a diagnostic.
func (r *Reporter) Report(err *Error) {
	r.errors = append(r.errors, err)
}

// HadError reports whether any diagnostic has been recorded.
func (r *Reporter) HadError() bool {
	return len(r.errors) > 0
}

// Errors returns every diagnostic recorded so far, in report order.
func (r *Reporter) Errors() []*Error {
	return r.errors
}

// Reset clears accumulated diagnostics, used by the REPL so one bad line
// does not poison the next.
func (r *Reporter) Reset() {
	r.errors = nil
}

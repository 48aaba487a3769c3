/*
File    : lox/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop collaborator
spec.md §6 describes: a CLI surface outside the core, invoking it through
interp.Run on each line. One Interpreter persists across the whole
session so the globals frame accumulates var/fun/class declarations
across lines, while the loxerr.Reporter is reset between lines so one bad
line does not poison the next (carried over from the Rust original's
Lox.error reset between run_prompt iterations).

Grounded on the teacher's repl/repl.go for structure (a Repl value
wrapping banner/prompt config, readline for line editing and history,
fatih/color for diagnostic coloring).
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxwalk/lox/interp"
	"github.com/loxwalk/lox/loxerr"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the REPL's banner/version configuration.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Repl with the given display configuration.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "lox "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type your code and press enter")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop over stdin/stdout (via readline) until the
// user exits or EOF. One Interpreter persists for the whole session.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	rep := &loxerr.Reporter{}
	it := interp.New(rep)
	it.SetWriter(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good bye!\n"))
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good bye!\n"))
			return nil
		}
		rl.SaveHistory(line)
		r.runLine(w, line, it, rep)
	}
}

func (r *Repl) runLine(w io.Writer, line string, it *interp.Interpreter, rep *loxerr.Reporter) {
	defer rep.Reset()
	if err := interp.Run(line, it, rep); err != nil {
		for _, e := range rep.Errors() {
			redColor.Fprintf(w, "%s\n", e.Error())
		}
	}
}

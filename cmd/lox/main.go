/*
File    : lox/cmd/lox/main.go

Package main is the entry point for the lox interpreter: the
out-of-scope collaborator spec.md §1 describes, owning argument parsing,
source-file reading and the REPL input loop, and invoking the core
through interp.Run.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/loxwalk/lox/interp"
	"github.com/loxwalk/lox/loxerr"
	"github.com/loxwalk/lox/repl"
)

const version = "v0.1.0"

var banner = `
  _
 | |    ___  __  __
 | |   / _ \ \ \/ /
 | |__| (_) | >  <
 |_____\___/ /_/\_\
`

var line = "----------------------------------------------------------------"

func main() {
	root := &cobra.Command{
		Use:   "lox [script]",
		Short: "A tree-walking interpreter for Lox",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFile(args[0])
			}
			return repl.New(banner, version, line, "lox> ").Start(os.Stdout)
		},
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runFile reads path, runs it to completion, and exits non-zero on any
// lexical, parse, resolve, or runtime error, per spec.md §6's exit code
// convention.
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	rep := &loxerr.Reporter{}
	it := interp.New(rep)

	if err := interp.Run(string(src), it, rep); err != nil {
		for _, e := range rep.Errors() {
			color.New(color.FgRed).Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}
	return nil
}

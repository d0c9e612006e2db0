/*
File    : tinyjs/cmd/tinyjs/main.go

Package main is the entry point for the tinyjs interpreter. It provides
two modes of operation:
 1. REPL mode (default, no arguments): interactive read-eval-print loop
 2. File mode (one argument): parse, optimize, and run a tinyjs source file

The interpreter uses the lexer-parser-optimizer-evaluator pipeline to
process tinyjs source.
*/
package main

import (
	"flag"
	"os"

	"github.com/fatih/color"

	"tinyjs/evaluator"
	"tinyjs/optimizer"
	"tinyjs/parser"
	"tinyjs/repl"
)

// VERSION is the current version of the tinyjs interpreter.
var VERSION = "v1.0.0"

// AUTHOR is the contact point for the interpreter.
var AUTHOR = "tinyjs maintainers"

// LICENSE is the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "tinyjs >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 _   _              _
| |_(_)_ __  _   _  (_)___
| __| | '_ \| | | | | / __|
| |_| | | | | |_| |_| \__ \
 \__|_|_| |_|\__, (_)_|___/
             |___/
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var redColor = color.New(color.FgRed)

func main() {
	noOptimize := flag.Bool("no-optimize", false, "skip the constant-propagation/folding optimizer pass")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	runFile(args[0], !*noOptimize)
}

// runFile reads, parses, optionally optimizes, and runs the source file at
// path, printing any error to stderr and exiting non-zero on failure.
func runFile(path string, optimize bool) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	prog, err := parser.New(string(source)).Parse()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	if optimize {
		prog = optimizer.Optimize(prog)
	}

	ev := evaluator.New()
	if err := ev.Run(prog); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

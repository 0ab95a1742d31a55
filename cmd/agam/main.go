// ==============================================================================================
// FILE: cmd/agam/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: CLI entry point. Script mode runs a .agam file to completion; with no file
//          argument it launches the REPL. Flag parsing follows the corpus's getopt idiom
//          rather than stdlib flag.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"agam/builtins"
	"agam/evaluator"
	"agam/lexer"
	"agam/object"
	"agam/parser"
	"agam/repl"

	"github.com/juju/loggo"
	"github.com/pborman/getopt"
)

var logger = loggo.GetLogger("agam.cli")

func main() {
	var debug, help bool
	getopt.BoolVarLong(&debug, "debug", 'd', "enable debug-level logging")
	getopt.BoolVarLong(&help, "help", '?', "display this help")
	getopt.SetParameters("[FILE]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.CommandLine.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stdout)
		return
	}
	if debug {
		loggo.GetLogger("agam").SetLogLevel(loggo.DEBUG)
	}

	args := getopt.Args()
	if len(args) > 0 {
		runFile(args[0])
		return
	}

	repl.Start(os.Stdin, os.Stdout)
}

func runFile(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		logger.Errorf("reading %q: %v", filename, err)
		fmt.Fprintf(os.Stderr, "கோப்பு படிக்க முடியவில்லை: %s\n", err)
		os.Exit(1)
	}

	l := lexer.New(string(data))
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		fmt.Fprintln(os.Stderr, "Parser Errors:")
		for _, e := range p.Errors() {
			fmt.Fprintf(os.Stderr, "\t%s\n", e.Error())
		}
		os.Exit(1)
	}

	ev := evaluator.New(builtins.All())
	evaluated := ev.Run(program)

	if evaluated != nil && evaluated.Type() == object.ERROR_OBJ {
		fmt.Fprintln(os.Stderr, evaluated.Inspect())
		os.Exit(1)
	}
}

// Command lox is the CLI front-end for the interpreter: dispatch of
// tokenize|parse|evaluate|run over a file argument, per spec.md §6. It is a
// collaborator, not part of the evaluation core — only `evaluate` and `run`
// invoke internal/interp. Subcommand dispatch follows funvibe/funxy's own
// cmd/funxy/main.go: plain os.Args inspection, no flag-parsing library.
package main

import (
	"fmt"
	"os"

	"github.com/funvibe/loxvm/internal/ast"
	"github.com/funvibe/loxvm/internal/diagnostics"
	"github.com/funvibe/loxvm/internal/interp"
	"github.com/funvibe/loxvm/internal/lexer"
	"github.com/funvibe/loxvm/internal/parser"
	"github.com/funvibe/loxvm/internal/resolver"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(64)
	}

	command := os.Args[1]
	path := os.Args[2]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	switch command {
	case "tokenize":
		runTokenize(string(source))
	case "parse":
		runParse(string(source))
	case "evaluate":
		runEvaluate(string(source), true)
	case "run":
		runEvaluate(string(source), false)
	default:
		usage()
		os.Exit(64)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: lox tokenize|parse|evaluate|run <file>")
}

func runTokenize(source string) {
	tokens, errs := lexer.New(source).ScanTokens()
	for _, t := range tokens {
		fmt.Println(t.Type, t.Lexeme)
	}
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(diagnostics.ExitStaticError)
	}
}

// runParse prints only the first statement's expression AST (spec.md §6),
// and only when that statement is a bare expression statement; for any
// other kind of first statement (print, var, block, ...) nothing is printed.
func runParse(source string) {
	stmts := mustParse(source)
	if len(stmts) == 0 {
		return
	}
	if es, ok := stmts[0].(*ast.ExpressionStmt); ok {
		printer := &ast.Printer{}
		fmt.Println(printer.Print(es.Expression))
	}
}

func runEvaluate(source string, echoExpressions bool) {
	stmts := mustParse(source)

	res := resolver.New()
	if errs := res.Resolve(stmts); len(errs) > 0 {
		for _, e := range errs {
			diagnostics.Emit(os.Stderr, diagnostics.Report{Phase: diagnostics.PhaseResolve, Message: e.Message, Line: e.Token.Line})
		}
		os.Exit(diagnostics.ExitStaticError)
	}

	eval := interp.New(res.Depths)
	if err := eval.Interpret(stmts, echoExpressions); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			diagnostics.Emit(os.Stderr, diagnostics.Report{Phase: diagnostics.PhaseRuntime, Message: rerr.Message, Line: rerr.Line})
			os.Exit(diagnostics.ExitRuntimeError)
		}
		diagnostics.Emit(os.Stderr, diagnostics.Report{Phase: diagnostics.PhaseRuntime, Message: err.Error()})
		os.Exit(diagnostics.ExitRuntimeError)
	}
}

// mustParse runs the lexer and parser, exiting 65 on any lex/parse error
// per spec.md §6.
func mustParse(source string) []ast.Statement {
	tokens, lexErrs := lexer.New(source).ScanTokens()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(diagnostics.ExitStaticError)
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(diagnostics.ExitStaticError)
	}
	return stmts
}

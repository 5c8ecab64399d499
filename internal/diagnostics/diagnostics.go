// Package diagnostics formats pipeline errors into the single-line reports
// spec.md §6/§7 specifies, and assigns each phase its exit code (65 for
// static errors, 70 for runtime errors). The CLI routes resolve and runtime
// errors through it; lex and parse errors are printed in the lexer's and
// parser's own "[line N] Error..." form.
//
// TTY detection follows funvibe/funxy's own use of
// github.com/mattn/go-isatty (internal/evaluator/builtins_term.go): when
// stderr is a real terminal, the offending line is highlighted; piped or
// redirected output (CI logs, golden test fixtures) always gets the plain,
// uncolored form so scenario assertions stay stable across environments.
package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ExitStaticError  = 65
	ExitRuntimeError = 70
)

// Phase identifies which stage of the pipeline produced a Report.
type Phase string

const (
	PhaseLex     Phase = "lex"
	PhaseParse   Phase = "parse"
	PhaseResolve Phase = "resolve"
	PhaseRuntime Phase = "runtime"
)

// Report is one reportable diagnostic: a message, its originating phase,
// and the source line it applies to (0 if unknown).
type Report struct {
	Phase   Phase
	Message string
	Line    int
}

// ExitCode returns the process exit code spec.md §6/§7 assigns to this
// report's phase.
func (r Report) ExitCode() int {
	if r.Phase == PhaseRuntime {
		return ExitRuntimeError
	}
	return ExitStaticError
}

// colorEnabled reports whether w supports ANSI color: only when w is an
// *os.File attached to a real terminal.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Emit writes r's canonical rendering to w: "{message} [line {line}]" per
// spec.md §6, optionally ANSI-highlighted when w is a terminal.
func Emit(w io.Writer, r Report) {
	line := fmt.Sprintf("%s [line %d]", r.Message, r.Line)
	if r.Line == 0 {
		line = r.Message
	}
	if colorEnabled(w) {
		fmt.Fprintf(w, "\x1b[31m%s\x1b[0m\n", line)
		return
	}
	fmt.Fprintln(w, line)
}

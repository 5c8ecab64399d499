// Package scripttest runs whole-program fixtures end to end and diffs the
// result against golden files, the same directory-of-source-plus-golden-file
// convention mna/nenuphar's internal/filetest uses for its own language
// tests, narrowed to a single combined run (tokenize+parse+resolve+evaluate)
// per fixture rather than separate passes per compiler stage.
package scripttest

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/loxvm/internal/interp"
	"github.com/funvibe/loxvm/internal/lexer"
	"github.com/funvibe/loxvm/internal/parser"
	"github.com/funvibe/loxvm/internal/resolver"
	"github.com/kylelemons/godebug/diff"
)

var update = flag.Bool("test.update-golden", false, "write fixture output into the golden files instead of comparing")

// SourceFiles returns every .lox fixture directly under dir.
func SourceFiles(t *testing.T, dir string) []os.FileInfo {
	t.Helper()
	dents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var res []os.FileInfo
	for _, dent := range dents {
		if !dent.Type().IsRegular() || filepath.Ext(dent.Name()) != ".lox" {
			continue
		}
		fi, err := dent.Info()
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, fi)
	}
	return res
}

// Run executes the fixture named by fi in dir and diffs what it produced
// against the sibling golden files: "<name>.want" for stdout, always
// expected, and "<name>.err" for the runtime/static error message, expected
// only when the fixture is meant to fail. A fixture with no ".err" file is
// expected to run to completion with no error.
func Run(t *testing.T, fi os.FileInfo, dir string) {
	t.Helper()

	source, err := os.ReadFile(filepath.Join(dir, fi.Name()))
	if err != nil {
		t.Fatal(err)
	}

	gotOut, gotErr := execute(string(source))

	diffGolden(t, filepath.Join(dir, fi.Name()+".want"), gotOut)

	errGold := filepath.Join(dir, fi.Name()+".err")
	if _, statErr := os.Stat(errGold); statErr == nil || *update {
		diffGolden(t, errGold, gotErr)
	} else if gotErr != "" {
		t.Errorf("%s: unexpected error (no .err golden present): %s", fi.Name(), gotErr)
	}
}

// execute runs source the way the `run` CLI subcommand does and returns its
// stdout and, if evaluation failed, the offending error's message.
func execute(source string) (stdout, errMessage string) {
	tokens, lexErrs := lexer.New(source).ScanTokens()
	if len(lexErrs) > 0 {
		return "", lexErrs[0].Error()
	}
	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) > 0 {
		return "", parseErrs[0].Error()
	}
	res := resolver.New()
	if resolveErrs := res.Resolve(stmts); len(resolveErrs) > 0 {
		return "", resolveErrs[0].Error()
	}

	eval := interp.New(res.Depths)
	var buf bytes.Buffer
	eval.Out = &buf
	if err := eval.Interpret(stmts, false); err != nil {
		return buf.String(), err.Error()
	}
	return buf.String(), ""
}

func diffGolden(t *testing.T, goldFile, got string) {
	t.Helper()

	if *update {
		if err := os.WriteFile(goldFile, []byte(got), 0o600); err != nil {
			t.Fatal(err)
		}
		return
	}

	wantb, err := os.ReadFile(goldFile)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	want := string(wantb)
	if patch := diff.Diff(want, got); patch != "" {
		t.Errorf("%s:\n%s", goldFile, patch)
	}
}

package lexer_test

import (
	"testing"

	"github.com/funvibe/loxvm/internal/lexer"
	"github.com/funvibe/loxvm/internal/token"
)

func TestScanTokensBasic(t *testing.T) {
	tokens, errs := lexer.New(`var x = 1 + "two";`).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Type{
		token.Var, token.Identifier, token.Equal, token.Number,
		token.Plus, token.String, token.Semicolon, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d: got type %v, want %v (lexeme %q)", i, tokens[i].Type, w, tokens[i].Lexeme)
		}
	}
}

func TestScanTokensTracksLines(t *testing.T) {
	tokens, errs := lexer.New("var a = 1;\nvar b = 2;").ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	var secondVarLine int
	seen := 0
	for _, tok := range tokens {
		if tok.Type == token.Var {
			seen++
			if seen == 2 {
				secondVarLine = tok.Line
			}
		}
	}
	if secondVarLine != 2 {
		t.Errorf("second var line = %d, want 2", secondVarLine)
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	_, errs := lexer.New(`"unterminated`).ScanTokens()
	if len(errs) == 0 {
		t.Fatal("expected an unterminated-string error")
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	tokens, errs := lexer.New("// a whole line\nvar x = 1;").ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Type != token.Var {
		t.Errorf("first token = %v, want Var", tokens[0].Type)
	}
}

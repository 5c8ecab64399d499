// Package token defines the lexical tokens produced by the scanner and
// consumed by the parser. It is the contract between the two external
// collaborators (lexer, parser) and has no dependency on the evaluator.
package token

// Type identifies the lexical category of a Token.
type Type int

const (
	EOF Type = iota

	// single-character tokens
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// one or two character tokens
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
)

var keywords = map[string]Type{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Lookup returns the keyword Type for ident, and ok=false if ident is a
// plain identifier.
func Lookup(ident string) (Type, bool) {
	t, ok := keywords[ident]
	return t, ok
}

// Token is a single lexical unit: its kind, the exact source text it came
// from, and the line it started on (used for error reporting throughout the
// rest of the pipeline).
type Token struct {
	Type    Type
	Lexeme  string
	Literal interface{} // parsed Number/String literal value, nil otherwise
	Line    int
}

func (t Token) String() string {
	return t.Lexeme
}

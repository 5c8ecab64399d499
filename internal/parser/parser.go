// Package parser implements a recursive-descent parser producing the AST
// defined in internal/ast. Like internal/lexer, it is an external
// collaborator to the evaluation core: it produces statements, and nothing
// downstream depends on how parsing is implemented.
package parser

import (
	"fmt"

	"github.com/funvibe/loxvm/internal/ast"
	"github.com/funvibe/loxvm/internal/token"
)

// Error is a single parse-time diagnostic, tied to the offending token's
// line for reporting per spec.md §7.
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	if e.Token.Type == token.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// Parser consumes a flat token stream and produces a Program (ordered
// statement list). It recovers from a parse error by discarding tokens
// until the next statement boundary (synchronize), so a single run reports
// every syntax error it finds rather than stopping at the first.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []*Error
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse returns the parsed statement sequence and any errors collected
// along the way. A non-empty error slice means the statements are not safe
// to evaluate (spec.md §6: exit 65 before evaluation begins).
func (p *Parser) Parse() ([]ast.Statement, []*Error) {
	var stmts []ast.Statement
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, p.errors
}

// ParseExpression parses a single expression starting at the current token.
// It does not check that the expression is followed by EOF. The `parse` CLI
// subcommand does not call it: it uses Parse and prints the first
// statement's expression AST.
func (p *Parser) ParseExpression() (ast.Expression, []*Error) {
	expr := p.expression()
	return expr, p.errors
}

// ---- declarations & statements ----

func (p *Parser) declaration() ast.Statement {
	defer func() {
		if r := recover(); r != nil {
			p.synchronize()
		}
	}()

	if p.match(token.Fun) {
		return p.function("function")
	}
	if p.match(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() ast.Statement {
	name := p.consume(token.Identifier, "Expect variable name.")
	var initializer ast.Expression
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.Identifier, "Expect "+kind+" name.")
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name.")
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")
	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) statement() ast.Statement {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Statement {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() ast.Statement {
	keyword := p.previous()
	var value ast.Expression
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) ifStatement() ast.Statement {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")
	thenBranch := p.statement()
	var elseBranch ast.Statement
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() ast.Statement {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars the C-style for loop into an equivalent while loop
// wrapped in a block, per original_source/'s jlox: no ForStmt evaluator case
// ever exists, so the evaluator's statement switch stays exactly as
// spec.md §4.4 describes it.
func (p *Parser) forStatement() ast.Statement {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Statement
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expression
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expression
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Statement{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = ast.NewLiteralExpr(true)
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Statement{initializer, body}}
	}
	return body
}

func (p *Parser) block() []ast.Statement {
	var stmts []ast.Statement
	for !p.check(token.RightBrace) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) expressionStatement() ast.Statement {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}

// ---- expressions, lowest to highest precedence ----

func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expression {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.VariableExpr); ok {
			return ast.NewAssignExpr(v.Name, value)
		}
		p.errorAt(equals, "Invalid assignment target.")
	}
	return expr
}

func (p *Parser) or() ast.Expression {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogicalExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) and() ast.Expression {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogicalExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expression {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expression {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expression {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expression {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expression {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnaryExpr(op, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expression {
	expr := p.primary()
	for {
		if p.match(token.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expression) ast.Expression {
	var args []ast.Expression
	if !p.check(token.RightParen) {
		for {
			if len(args) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return ast.NewCallExpr(callee, paren, args)
}

func (p *Parser) primary() ast.Expression {
	switch {
	case p.match(token.False):
		return ast.NewLiteralExpr(false)
	case p.match(token.True):
		return ast.NewLiteralExpr(true)
	case p.match(token.Nil):
		return ast.NewLiteralExpr(nil)
	case p.match(token.Number, token.String):
		return ast.NewLiteralExpr(p.previous().Literal)
	case p.match(token.Identifier):
		return ast.NewVariableExpr(p.previous())
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return ast.NewGroupingExpr(expr)
	}
	p.errorAt(p.peek(), "Expect expression.")
	panic(&Error{Token: p.peek(), Message: "Expect expression."})
}

// ---- token-stream helpers ----

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	tok := p.peek()
	p.errorAt(tok, message)
	panic(&Error{Token: tok, Message: message})
}

func (p *Parser) errorAt(tok token.Token, message string) {
	p.errors = append(p.errors, &Error{Token: tok, Message: message})
}

// synchronize discards tokens until it reaches a likely statement boundary,
// so one parse pass can surface more than one error.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}
		switch p.peek().Type {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

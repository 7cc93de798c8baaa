// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Recursive-descent parser with Pratt precedence climbing for
//          expressions and panic-mode error recovery for statements.
//          Tokens -> AST exactly per spec.md §4.2's grammar.
//          Table mechanism (prefixParseFns/infixParseFns) grounded on
//          amoghasbhardwaj-Eloquence/parser/parser.go, re-pointed at the
//          spec.md grammar instead of Eloquence's natural-language one.
// ==============================================================================================

package parser

import (
	"lucid/ast"
	"lucid/report"
	"lucid/token"
)

// Precedence levels, low to high.
const (
	_ int = iota
	LOWEST
	OR         // or
	AND        // and
	EQUALITY   // == !=
	COMPARISON // < <= > >=
	TERM       // + -
	FACTOR     // * /
	UNARY      // ! -
	CALL       // foo(...)
)

var precedences = map[token.Type]int{
	token.OR:            OR,
	token.AND:           AND,
	token.EQUAL_EQUAL:   EQUALITY,
	token.BANG_EQUAL:    EQUALITY,
	token.LESS:          COMPARISON,
	token.LESS_EQUAL:    COMPARISON,
	token.GREATER:       COMPARISON,
	token.GREATER_EQUAL: COMPARISON,
	token.PLUS:          TERM,
	token.MINUS:         TERM,
	token.STAR:          FACTOR,
	token.SLASH:         FACTOR,
	token.LEFT_PAREN:    CALL,
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Parser holds the state of one parse over a token stream.
type Parser struct {
	tokens    []token.Token
	current   int
	rep       report.Reporter
	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New builds a Parser over a fully-scanned token slice (the last of which
// must be EOF), reporting syntax errors through rep.
func New(tokens []token.Token, rep report.Reporter) *Parser {
	p := &Parser{tokens: tokens, rep: rep}

	p.prefixFns = map[token.Type]prefixParseFn{
		token.NUMBER:     p.parseNumber,
		token.STRING:     p.parseString,
		token.TRUE:       p.parseTrue,
		token.FALSE:      p.parseFalse,
		token.NIL:        p.parseNil,
		token.IDENTIFIER: p.parseIdentifier,
		token.LEFT_PAREN: p.parseGrouping,
		token.MINUS:      p.parseUnary,
		token.BANG:       p.parseUnary,
	}

	p.infixFns = map[token.Type]infixParseFn{
		token.PLUS:          p.parseBinary,
		token.MINUS:         p.parseBinary,
		token.STAR:          p.parseBinary,
		token.SLASH:         p.parseBinary,
		token.EQUAL_EQUAL:   p.parseBinary,
		token.BANG_EQUAL:    p.parseBinary,
		token.LESS:          p.parseBinary,
		token.LESS_EQUAL:    p.parseBinary,
		token.GREATER:       p.parseBinary,
		token.GREATER_EQUAL: p.parseBinary,
		token.AND:           p.parseLogical,
		token.OR:            p.parseLogical,
		token.LEFT_PAREN:    p.parseCall,
	}

	return p
}

// Parse runs the parser to completion and returns every top-level
// statement it managed to recover. Callers should check
// rep.HadCompileError() before evaluating the result.
func Parse(tokens []token.Token, rep report.Reporter) []ast.Stmt {
	return New(tokens, rep).ParseProgram()
}

// ParseProgram is the `program` production: declaration* EOF.
func (p *Parser) ParseProgram() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// --- token stream primitives ---

func (p *Parser) peek() token.Token { return p.tokens[p.current] }
func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}
func (p *Parser) isAtEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt token.Type) bool {
	if p.isAtEnd() {
		return tt == token.EOF
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...token.Type) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume reports no error itself; callers that need panic-mode recovery
// follow a failed consume with p.fail, which both reports and unwinds.
func (p *Parser) consume(tt token.Type, message string) (token.Token, bool) {
	if p.check(tt) {
		return p.advance(), true
	}
	return token.Token{}, false
}

func (p *Parser) error(tok token.Token, message string) {
	where := " at end"
	if tok.Type != token.EOF {
		where = " at '" + tok.Lexeme + "'"
	}
	p.rep.CompileError(tok.Line, where, message)
}

// synchronize discards tokens until it passes a ';' or reaches the start of
// a statement keyword — panic-mode recovery per spec.md §4.2.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- declarations ---

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.VAR):
		return p.varDeclaration()
	case p.match(token.FUN):
		return p.function()
	default:
		return p.statement()
	}
}

// parseError is a sentinel used only to unwind to the nearest
// synchronization point in declaration(); it is never surfaced as a
// runtime or compile error itself (the CompileError call already happened
// at the point of failure).
type parseError struct{}

func (p *Parser) fail(tok token.Token, message string) {
	p.error(tok, message)
	panic(parseError{})
}

func (p *Parser) varDeclaration() ast.Stmt {
	name, ok := p.consume(token.IDENTIFIER, "Expect variable name.")
	if !ok {
		p.fail(p.peek(), "Expect variable name.")
	}

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); !ok {
		p.fail(p.peek(), "Expect ';' after variable declaration.")
	}
	return &ast.Var{Name: name, Initializer: initializer}
}

func (p *Parser) function() ast.Stmt {
	name, ok := p.consume(token.IDENTIFIER, "Expect function name.")
	if !ok {
		p.fail(p.peek(), "Expect function name.")
	}
	if _, ok := p.consume(token.LEFT_PAREN, "Expect '(' after function name."); !ok {
		p.fail(p.peek(), "Expect '(' after function name.")
	}

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			param, ok := p.consume(token.IDENTIFIER, "Expect parameter name.")
			if !ok {
				p.fail(p.peek(), "Expect parameter name.")
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after parameters."); !ok {
		p.fail(p.peek(), "Expect ')' after parameters.")
	}
	if _, ok := p.consume(token.LEFT_BRACE, "Expect '{' before function body."); !ok {
		p.fail(p.peek(), "Expect '{' before function body.")
	}
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}

// --- statements ---

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.Block{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if _, ok := p.consume(token.RIGHT_BRACE, "Expect '}' after block."); !ok {
		p.fail(p.peek(), "Expect '}' after block.")
	}
	return statements
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after value."); !ok {
		p.fail(p.peek(), "Expect ';' after value.")
	}
	return &ast.Print{Expr: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after return value."); !ok {
		p.fail(p.peek(), "Expect ';' after return value.")
	}
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *Parser) ifStatement() ast.Stmt {
	if _, ok := p.consume(token.LEFT_PAREN, "Expect '(' after 'if'."); !ok {
		p.fail(p.peek(), "Expect '(' after 'if'.")
	}
	condition := p.expression()
	if _, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after if condition."); !ok {
		p.fail(p.peek(), "Expect ')' after if condition.")
	}

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	if _, ok := p.consume(token.LEFT_PAREN, "Expect '(' after 'while'."); !ok {
		p.fail(p.peek(), "Expect '(' after 'while'.")
	}
	condition := p.expression()
	if _, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after while condition."); !ok {
		p.fail(p.peek(), "Expect ')' after while condition.")
	}
	body := p.statement()
	return &ast.While{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond ?? true) { body; incr; } }`, wrapping only the
// non-nil pieces in Blocks, exactly per spec.md §4.2.
func (p *Parser) forStatement() ast.Stmt {
	if _, ok := p.consume(token.LEFT_PAREN, "Expect '(' after 'for'."); !ok {
		p.fail(p.peek(), "Expect '(' after 'for'.")
	}

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); !ok {
		p.fail(p.peek(), "Expect ';' after loop condition.")
	}

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	if _, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses."); !ok {
		p.fail(p.peek(), "Expect ')' after for clauses.")
	}

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expr: increment}}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.While{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after expression."); !ok {
		p.fail(p.peek(), "Expect ';' after expression.")
	}
	return &ast.Expression{Expr: expr}
}

// --- expressions ---

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → IDENT "=" assignment | logic_or (and below), per spec.md §4.2.
func (p *Parser) assignment() ast.Expr {
	expr := p.parseBinaryExpr(LOWEST)

	if p.check(token.EQUAL) {
		equals := p.peek()
		p.advance()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}
		p.error(equals, "Invalid assignment target.")
		return expr
	}

	return expr
}

func (p *Parser) parseBinaryExpr(precedence int) ast.Expr {
	prefix, ok := p.prefixFns[p.peek().Type]
	if !ok {
		p.fail(p.peek(), "Expect expression.")
	}
	left := prefix()

	for !p.isAtEnd() && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peek().Type]
		if !ok {
			return left
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek().Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseNumber() ast.Expr {
	tok := p.advance()
	return &ast.Literal{Value: tok.Literal}
}

func (p *Parser) parseString() ast.Expr {
	tok := p.advance()
	return &ast.Literal{Value: tok.Literal}
}

func (p *Parser) parseTrue() ast.Expr  { p.advance(); return &ast.Literal{Value: true} }
func (p *Parser) parseFalse() ast.Expr { p.advance(); return &ast.Literal{Value: false} }
func (p *Parser) parseNil() ast.Expr   { p.advance(); return &ast.Literal{Value: nil} }

func (p *Parser) parseIdentifier() ast.Expr {
	tok := p.advance()
	return &ast.Variable{Name: tok}
}

func (p *Parser) parseGrouping() ast.Expr {
	p.advance() // consume '('
	expr := p.expression()
	if _, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); !ok {
		p.fail(p.peek(), "Expect ')' after expression.")
	}
	return &ast.Grouping{Expression: expr}
}

func (p *Parser) parseUnary() ast.Expr {
	op := p.advance()
	right := p.parseBinaryExpr(UNARY)
	return &ast.Unary{Operator: op, Right: right}
}

func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	op := p.advance()
	precedence := precedences[op.Type]
	right := p.parseBinaryExpr(precedence)
	return &ast.Binary{Left: left, Operator: op, Right: right}
}

func (p *Parser) parseLogical(left ast.Expr) ast.Expr {
	op := p.advance()
	precedence := precedences[op.Type]
	right := p.parseBinaryExpr(precedence)
	return &ast.Logical{Left: left, Operator: op, Right: right}
}

func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	p.advance() // consume '('
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, ok := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	if !ok {
		p.fail(p.peek(), "Expect ')' after arguments.")
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

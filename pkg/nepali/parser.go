package nepali

import (
	"fmt"
	"strings"
)

// Parser consumes the flat token slice produced by the lexer and builds
// statement trees one top-level statement at a time.
//
// Grammar:
//
//	program    = statement* EOF
//	statement  = varDecl ";" | assignment ";" | print ";" | if | for | while | doWhile
//	varDecl    = TYPE IDENTIFIER "=" expression
//	assignment = IDENTIFIER "=" expression
//	print      = PRINT "(" expression ")"
//	if         = IF "(" condition ")" block (ELSE (if | block))?
//	for        = FOR "(" (varDecl | assignment) ";" condition ";" assignment ")" block
//	while      = WHILE "(" condition ")" block
//	doWhile    = DO block WHILE "(" condition ")" ";"
//	block      = "{" statement* "}"
//	condition  = expression ("<" | "<=" | ">" | ">=" | "==" | "!=") expression
//	expression = additive
//	additive   = term (("+" | "-") term)*
//	term       = factor (("*" | "/" | "%") factor)*
//	factor     = NUMBER | IDENTIFIER | "(" expression ")"
type Parser struct {
	tokens      []Token
	pos         int
	sourceLines []string
}

func NewParser(tokens []Token, rawSource string) *Parser {
	return &Parser{tokens: tokens, sourceLines: strings.Split(rawSource, "\n")}
}

// fmtError builds an *Error of the given kind positioned at tok.
func (p *Parser) fmtError(kind error, tok Token, format string, args ...any) error {
	return &Error{
		Kind:    kind,
		Line:    tok.Line,
		Msg:     fmt.Sprintf(format, args...),
		Snippet: snippetAt(p.sourceLines, tok.Line),
		atEOF:   tok.Kind == EOF,
	}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos]
}

// eof synthesises an EOF token for slices that lack the sentinel.
func (p *Parser) eof() Token {
	line := 1
	if n := len(p.tokens); n > 0 {
		line = p.tokens[n-1].Line
	}
	return Token{Kind: EOF, Line: line}
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches kind, otherwise returns an error.
func (p *Parser) expect(kind TokenKind) (Token, error) {
	tok := p.advance()
	if tok.Kind != kind {
		return tok, p.fmtError(ErrSyntax, tok, "expected %s, got %s (%q)", kind, tok.Kind, tok.Lexeme)
	}
	return tok, nil
}

// Done reports whether every statement has been consumed.
func (p *Parser) Done() bool {
	return p.peek().Kind == EOF
}

// Next parses the next top-level statement. It must not be called once Done
// reports true.
func (p *Parser) Next() (Stmt, error) {
	return p.parseStatement()
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, error) {
	return p.parseAdditive()
}

// parseAdditive handles + and -
func (p *Parser) parseAdditive() (Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.peek().Kind
		if kind != PLUS && kind != MINUS {
			break
		}
		opTok := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = foldBinary(&BinaryExpr{Op: opTok.Kind, Left: expr, Right: right, Line: opTok.Line})
	}
	return expr, nil
}

// parseTerm handles *, / and %
func (p *Parser) parseTerm() (Expr, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.peek().Kind
		if kind != MULTIPLY && kind != DIVIDE && kind != MODULO {
			break
		}
		opTok := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = foldBinary(&BinaryExpr{Op: opTok.Kind, Left: expr, Right: right, Line: opTok.Line})
	}
	return expr, nil
}

// parseFactor handles literals, variables, and parenthesised expressions.
func (p *Parser) parseFactor() (Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case NUMBER:
		p.advance()
		return &Literal{Value: tok.Value}, nil

	case IDENTIFIER:
		p.advance()
		return &VarRef{Name: tok.Lexeme, Line: tok.Line}, nil

	case LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.fmtError(ErrSyntax, tok, "unexpected token in expression: %s (%q)", tok.Kind, tok.Lexeme)
	}
}

// parseCondition parses  expression relop expression
func (p *Parser) parseCondition() (*Condition, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if !tok.Kind.isRelational() {
		return nil, p.fmtError(ErrSyntax, tok, "expected a relational operator, got %s (%q)", tok.Kind, tok.Lexeme)
	}
	p.advance()
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Condition{Op: tok.Kind, Left: left, Right: right}, nil
}

// parseVarDecl parses  TYPE IDENTIFIER = expression  without the semicolon.
func (p *Parser) parseVarDecl() (*VariableDecl, error) {
	typeTok, err := p.expect(TYPE)
	if err != nil {
		return nil, err
	}
	nameTok := p.peek()
	if nameTok.Kind != IDENTIFIER {
		p.advance()
		return nil, p.fmtError(ErrSyntax, nameTok, "expected an identifier after type %q, got %s (%q)",
			typeTok.Lexeme, nameTok.Kind, nameTok.Lexeme)
	}
	p.advance()
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &VariableDecl{Type: typeTok.Lexeme, Name: nameTok.Lexeme, Init: init}, nil
}

// parseAssignment parses  IDENTIFIER = expression  without the semicolon.
func (p *Parser) parseAssignment() (*Assignment, error) {
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Assignment{Name: nameTok.Lexeme, Value: val}, nil
}

// parsePrint parses  PRINT ( expression )  without the semicolon.
func (p *Parser) parsePrint() (Stmt, error) {
	if _, err := p.expect(PRINT); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: expr}, nil
}

// parseBlock parses { stmt1; stmt2; ... }
func (p *Parser) parseBlock() (*BlockStmt, error) {
	open := p.peek()
	if open.Kind != LBRACE {
		p.advance()
		return nil, p.fmtError(ErrSyntax, open, "expected '{' at start of block, got %s (%q)", open.Kind, open.Lexeme)
	}
	p.advance()

	block := &BlockStmt{}
	for p.peek().Kind != RBRACE {
		if p.peek().Kind == EOF {
			return nil, p.fmtError(ErrUnterminatedBlock, p.peek(), "block opened on line %d", open.Line)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	p.advance() // }
	return block, nil
}

// parseParenCondition parses  ( condition )
func (p *Parser) parseParenCondition() (*Condition, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseIf parses Yedi (cond) body [Athawa (Yedi ... | body)]
func (p *Parser) parseIf() (Stmt, error) {
	if _, err := p.expect(IF); err != nil {
		return nil, err
	}
	cond, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &IfStmt{Condition: cond, Body: body}
	if p.peek().Kind != ELSE {
		return stmt, nil
	}
	p.advance()
	if p.peek().Kind == IF {
		stmt.ElseBody, err = p.parseIf()
	} else {
		stmt.ElseBody, err = p.parseBlock()
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseFor parses Kolagi (init; cond; post) body
func (p *Parser) parseFor() (Stmt, error) {
	if _, err := p.expect(FOR); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}

	var (
		init Stmt
		err  error
	)
	switch tok := p.peek(); tok.Kind {
	case TYPE:
		init, err = p.parseVarDecl()
	case IDENTIFIER:
		init, err = p.parseAssignment()
	default:
		p.advance()
		err = p.fmtError(ErrSyntax, tok, "invalid initialization in for-loop: %s (%q)", tok.Kind, tok.Lexeme)
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}

	post, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ForStmt{Init: init, Cond: cond, Post: post, Body: body}, nil
}

// parseWhile parses Jabasamma (cond) body
func (p *Parser) parseWhile() (Stmt, error) {
	if _, err := p.expect(WHILE); err != nil {
		return nil, err
	}
	cond, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: cond, Body: body}, nil
}

// parseDoWhile parses Karo body Jabasamma (cond);
func (p *Parser) parseDoWhile() (Stmt, error) {
	if _, err := p.expect(DO); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(WHILE); err != nil {
		return nil, err
	}
	cond, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &DoWhileStmt{Body: body, Condition: cond}, nil
}

// parseStatement dispatches to the correct sub-parser based on the leading token.
func (p *Parser) parseStatement() (Stmt, error) {
	var (
		stmt Stmt
		err  error
	)
	tok := p.peek()
	switch tok.Kind {
	case TYPE:
		stmt, err = p.parseVarDecl()
	case IDENTIFIER:
		stmt, err = p.parseAssignment()
	case PRINT:
		stmt, err = p.parsePrint()

	case IF:
		return p.parseIf()
	case FOR:
		return p.parseFor()
	case WHILE:
		return p.parseWhile()
	case DO:
		return p.parseDoWhile()

	default:
		p.advance()
		if tok.Kind.isReserved() {
			return nil, p.fmtError(ErrUnsupported, tok, "%s (%q) is reserved but not implemented", tok.Kind, tok.Lexeme)
		}
		return nil, p.fmtError(ErrSyntax, tok, "unexpected token in statement: %s (%q)", tok.Kind, tok.Lexeme)
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return stmt, nil
}

// Parse builds every top-level statement of a program without running any of
// them.
func Parse(tokens []Token, rawSource string) ([]Stmt, error) {
	p := NewParser(tokens, rawSource)
	var stmts []Stmt
	for !p.Done() {
		stmt, err := p.Next()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

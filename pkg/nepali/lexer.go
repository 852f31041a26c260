package nepali

import (
	"strconv"
	"unicode"
)

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src     []rune
	pos     int // index of the next rune to consume
	line    int // current 1-based source line
	dialect *Dialect
}

func newLexer(src string, d *Dialect) *Lexer {
	if d == nil {
		d = MixedDialect
	}
	return &Lexer{src: []rune(src), line: 1, dialect: d}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// skipLineComment discards everything up to, not including, the next newline.
func (l *Lexer) skipLineComment() {
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
}

func isWordStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanWord collects an identifier or keyword. Keywords win over IDENTIFIER,
// but only when the whole word matches.
func (l *Lexer) scanWord() Token {
	line := l.line
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	return Token{Kind: l.dialect.Lookup(lexeme), Lexeme: lexeme, Line: line}
}

// scanNumber collects a run of decimal digits. A run too large for int64
// degrades to UNKNOWN so the parser reports it.
func (l *Lexer) scanNumber() Token {
	line := l.line
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	val, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Token{Kind: UNKNOWN, Lexeme: lexeme, Line: line}
	}
	return Token{Kind: NUMBER, Lexeme: lexeme, Value: val, Line: line}
}

// scanString matches the shortest quoted span on the current line. It
// returns false, consuming nothing, when the quote is never closed.
func (l *Lexer) scanString() (Token, bool) {
	line := l.line
	end := l.pos + 1
	for end < len(l.src) && l.src[end] != '"' {
		if l.src[end] == '\n' {
			return Token{}, false
		}
		end++
	}
	if end >= len(l.src) {
		return Token{}, false
	}
	lexeme := string(l.src[l.pos : end+1])
	l.pos = end + 1
	return Token{Kind: STRING_LITERAL, Lexeme: lexeme, Line: line}, true
}

// nextToken skips whitespace/comments and returns the next Token.
func (l *Lexer) nextToken() Token {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.src) {
			return Token{Kind: EOF, Lexeme: "", Line: l.line}
		}
		if l.peek() == '/' && l.peek2() == '/' {
			l.skipLineComment()
			continue
		}
		break
	}

	ch := l.peek()
	line := l.line

	// Two-character relational operators come before their prefixes.
	switch {
	case ch == '<' && l.peek2() == '=':
		l.pos += 2
		return Token{LE, "<=", 0, line}
	case ch == '>' && l.peek2() == '=':
		l.pos += 2
		return Token{GE, ">=", 0, line}
	case ch == '!' && l.peek2() == '=':
		l.pos += 2
		return Token{NEQ, "!=", 0, line}
	case ch == '=' && l.peek2() == '=':
		l.pos += 2
		return Token{EQ, "==", 0, line}
	}

	if isWordStart(ch) {
		return l.scanWord()
	}
	if isDigit(ch) {
		return l.scanNumber()
	}
	if ch == '"' {
		if tok, ok := l.scanString(); ok {
			return tok
		}
	}

	l.advance()
	switch ch {
	case '(':
		return Token{LPAREN, "(", 0, line}
	case ')':
		return Token{RPAREN, ")", 0, line}
	case '{':
		return Token{LBRACE, "{", 0, line}
	case '}':
		return Token{RBRACE, "}", 0, line}
	case ';':
		return Token{SEMICOLON, ";", 0, line}
	case ',':
		return Token{COMMA, ",", 0, line}
	case '=':
		return Token{ASSIGN, "=", 0, line}
	case '+':
		return Token{PLUS, "+", 0, line}
	case '-':
		return Token{MINUS, "-", 0, line}
	case '*':
		return Token{MULTIPLY, "*", 0, line}
	case '/':
		return Token{DIVIDE, "/", 0, line}
	case '%':
		return Token{MODULO, "%", 0, line}
	case '<':
		return Token{LT, "<", 0, line}
	case '>':
		return Token{GT, ">", 0, line}
	default:
		return Token{UNKNOWN, string(ch), 0, line}
	}
}

// Lex tokenises src with the mixed dialect and returns all tokens including
// the final EOF token. Lexing never fails: runes no rule accepts come back as
// UNKNOWN tokens.
func Lex(src string) []Token {
	return LexDialect(src, MixedDialect)
}

// LexDialect is Lex with an explicit keyword table.
func LexDialect(src string, d *Dialect) []Token {
	l := newLexer(src, d)
	var tokens []Token
	for {
		tok := l.nextToken()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}

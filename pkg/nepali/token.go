package nepali

import "fmt"

// TokenKind identifies the category of a lexed token.
type TokenKind int

const (
	EOF TokenKind = iota // sentinel: end of input

	// Literals
	IDENTIFIER     // variable name
	NUMBER         // decimal integer literal, decoded into Token.Value
	STRING_LITERAL // "..." (recognised, never evaluated)

	// Control keywords
	IF       // Yedi
	ELSE     // Athawa
	WHILE    // Jabasamma
	FOR      // Kolagi
	DO       // Karo
	PRINT    // Dekhau
	TYPE     // anka, Dashanka, ...
	RETURN   // Farkau
	FUNCTION // Karyakram
	INPUT    // Linuhoos

	// Reserved words with no statement form
	TRUE     // Sahi
	FALSE    // Galat
	AND      // Ra
	OR       // Wa
	NOT      // Hoina
	BREAK    // rokdinus
	CONTINUE // chalos
	SWITCH   // Pariwartan
	CASE     // Sthiti
	DEFAULT  // hoinava

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,
	ASSIGN    // =

	// Arithmetic operators
	PLUS     // +
	MINUS    // -
	MULTIPLY // *
	DIVIDE   // /
	MODULO   // %

	// Relational operators (two-character forms are lexed first)
	LE  // <=
	GE  // >=
	NEQ // !=
	EQ  // ==
	LT  // <
	GT  // >

	UNKNOWN // any rune no other rule accepts
)

var tokenNames = [...]string{
	EOF:            "EOF",
	IDENTIFIER:     "IDENTIFIER",
	NUMBER:         "NUMBER",
	STRING_LITERAL: "STRING_LITERAL",
	IF:             "IF",
	ELSE:           "ELSE",
	WHILE:          "WHILE",
	FOR:            "FOR",
	DO:             "DO",
	PRINT:          "PRINT",
	TYPE:           "TYPE",
	RETURN:         "RETURN",
	FUNCTION:       "FUNCTION",
	INPUT:          "INPUT",
	TRUE:           "TRUE",
	FALSE:          "FALSE",
	AND:            "AND",
	OR:             "OR",
	NOT:            "NOT",
	BREAK:          "BREAK",
	CONTINUE:       "CONTINUE",
	SWITCH:         "SWITCH",
	CASE:           "CASE",
	DEFAULT:        "DEFAULT",
	LPAREN:         "LPAREN",
	RPAREN:         "RPAREN",
	LBRACE:         "LBRACE",
	RBRACE:         "RBRACE",
	SEMICOLON:      "SEMICOLON",
	COMMA:          "COMMA",
	ASSIGN:         "ASSIGN",
	PLUS:           "PLUS",
	MINUS:          "MINUS",
	MULTIPLY:       "MULTIPLY",
	DIVIDE:         "DIVIDE",
	MODULO:         "MODULO",
	LE:             "LE",
	GE:             "GE",
	NEQ:            "NEQ",
	EQ:             "EQ",
	LT:             "LT",
	GT:             "GT",
	UNKNOWN:        "UNKNOWN",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// symbol returns the operator spelling used when printing trees.
func (k TokenKind) symbol() string {
	switch k {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case MULTIPLY:
		return "*"
	case DIVIDE:
		return "/"
	case MODULO:
		return "%"
	case LE:
		return "<="
	case GE:
		return ">="
	case NEQ:
		return "!="
	case EQ:
		return "=="
	case LT:
		return "<"
	case GT:
		return ">"
	}
	return k.String()
}

// isRelational reports whether k can join the two sides of a condition.
func (k TokenKind) isRelational() bool {
	switch k {
	case LT, LE, GT, GE, EQ, NEQ:
		return true
	}
	return false
}

// isReserved reports whether k is a keyword the language reserves but has no
// statement form for.
func (k TokenKind) isReserved() bool {
	switch k {
	case RETURN, FUNCTION, INPUT, TRUE, FALSE, AND, OR, NOT,
		BREAK, CONTINUE, SWITCH, CASE, DEFAULT:
		return true
	}
	return false
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Kind   TokenKind
	Lexeme string // the exact source text that was matched
	Value  int64  // decoded value, NUMBER only
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-14s %-14q  line %d", t.Kind, t.Lexeme, t.Line)
}

package nepali

import (
	"reflect"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Empty",
			input: "",
			expected: []Token{
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Punctuation and Operators",
			input: "( ) { } ; , = + - * / % < > <= >= == !=",
			expected: []Token{
				{Kind: LPAREN, Lexeme: "(", Line: 1},
				{Kind: RPAREN, Lexeme: ")", Line: 1},
				{Kind: LBRACE, Lexeme: "{", Line: 1},
				{Kind: RBRACE, Lexeme: "}", Line: 1},
				{Kind: SEMICOLON, Lexeme: ";", Line: 1},
				{Kind: COMMA, Lexeme: ",", Line: 1},
				{Kind: ASSIGN, Lexeme: "=", Line: 1},
				{Kind: PLUS, Lexeme: "+", Line: 1},
				{Kind: MINUS, Lexeme: "-", Line: 1},
				{Kind: MULTIPLY, Lexeme: "*", Line: 1},
				{Kind: DIVIDE, Lexeme: "/", Line: 1},
				{Kind: MODULO, Lexeme: "%", Line: 1},
				{Kind: LT, Lexeme: "<", Line: 1},
				{Kind: GT, Lexeme: ">", Line: 1},
				{Kind: LE, Lexeme: "<=", Line: 1},
				{Kind: GE, Lexeme: ">=", Line: 1},
				{Kind: EQ, Lexeme: "==", Line: 1},
				{Kind: NEQ, Lexeme: "!=", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Two Character Operators Without Spaces",
			input: "a<=b==c",
			expected: []Token{
				{Kind: IDENTIFIER, Lexeme: "a", Line: 1},
				{Kind: LE, Lexeme: "<=", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "b", Line: 1},
				{Kind: EQ, Lexeme: "==", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "c", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Keywords and Identifiers",
			input: "Yedi Athawa Jabasamma Kolagi Karo Dekhau anka Ganna ankara _tmp",
			expected: []Token{
				{Kind: IF, Lexeme: "Yedi", Line: 1},
				{Kind: ELSE, Lexeme: "Athawa", Line: 1},
				{Kind: WHILE, Lexeme: "Jabasamma", Line: 1},
				{Kind: FOR, Lexeme: "Kolagi", Line: 1},
				{Kind: DO, Lexeme: "Karo", Line: 1},
				{Kind: PRINT, Lexeme: "Dekhau", Line: 1},
				{Kind: TYPE, Lexeme: "anka", Line: 1},
				{Kind: TYPE, Lexeme: "Ganna", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "ankara", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "_tmp", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Reserved Words",
			input: "Farkau Karyakram Sahi Galat Ra Wa Hoina rokdinus chalos",
			expected: []Token{
				{Kind: RETURN, Lexeme: "Farkau", Line: 1},
				{Kind: FUNCTION, Lexeme: "Karyakram", Line: 1},
				{Kind: TRUE, Lexeme: "Sahi", Line: 1},
				{Kind: FALSE, Lexeme: "Galat", Line: 1},
				{Kind: AND, Lexeme: "Ra", Line: 1},
				{Kind: OR, Lexeme: "Wa", Line: 1},
				{Kind: NOT, Lexeme: "Hoina", Line: 1},
				{Kind: BREAK, Lexeme: "rokdinus", Line: 1},
				{Kind: CONTINUE, Lexeme: "chalos", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Numbers",
			input: "0 42 007 12abc",
			expected: []Token{
				{Kind: NUMBER, Lexeme: "0", Value: 0, Line: 1},
				{Kind: NUMBER, Lexeme: "42", Value: 42, Line: 1},
				{Kind: NUMBER, Lexeme: "007", Value: 7, Line: 1},
				{Kind: NUMBER, Lexeme: "12", Value: 12, Line: 1},
				{Kind: IDENTIFIER, Lexeme: "abc", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Number Too Large",
			input: "99999999999999999999",
			expected: []Token{
				{Kind: UNKNOWN, Lexeme: "99999999999999999999", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Comments and Lines",
			input: "anka a = 1; // comment Dekhau(a);\n// whole line\nDekhau(a);",
			expected: []Token{
				{Kind: TYPE, Lexeme: "anka", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "a", Line: 1},
				{Kind: ASSIGN, Lexeme: "=", Line: 1},
				{Kind: NUMBER, Lexeme: "1", Value: 1, Line: 1},
				{Kind: SEMICOLON, Lexeme: ";", Line: 1},
				{Kind: PRINT, Lexeme: "Dekhau", Line: 3},
				{Kind: LPAREN, Lexeme: "(", Line: 3},
				{Kind: IDENTIFIER, Lexeme: "a", Line: 3},
				{Kind: RPAREN, Lexeme: ")", Line: 3},
				{Kind: SEMICOLON, Lexeme: ";", Line: 3},
				{Kind: EOF, Lexeme: "", Line: 3},
			},
		},
		{
			name:  "Strings",
			input: `"a" "b c"`,
			expected: []Token{
				{Kind: STRING_LITERAL, Lexeme: `"a"`, Line: 1},
				{Kind: STRING_LITERAL, Lexeme: `"b c"`, Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Unterminated String",
			input: "\"ab\nc",
			expected: []Token{
				{Kind: UNKNOWN, Lexeme: `"`, Line: 1},
				{Kind: IDENTIFIER, Lexeme: "ab", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "c", Line: 2},
				{Kind: EOF, Lexeme: "", Line: 2},
			},
		},
		{
			name:  "Unknown Runes",
			input: "a @ b ! ज",
			expected: []Token{
				{Kind: IDENTIFIER, Lexeme: "a", Line: 1},
				{Kind: UNKNOWN, Lexeme: "@", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "b", Line: 1},
				{Kind: UNKNOWN, Lexeme: "!", Line: 1},
				{Kind: UNKNOWN, Lexeme: "ज", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lex(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lex(%q)\n got: %v\nwant: %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLexDialects(t *testing.T) {
	src := "Yedi If anka int"
	tests := []struct {
		dialect *Dialect
		want    []TokenKind
	}{
		{NepaliDialect, []TokenKind{IF, IDENTIFIER, TYPE, IDENTIFIER, EOF}},
		{EnglishDialect, []TokenKind{IDENTIFIER, IF, IDENTIFIER, TYPE, EOF}},
		{MixedDialect, []TokenKind{IF, IF, TYPE, TYPE, EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.dialect.Name, func(t *testing.T) {
			var got []TokenKind
			for _, tok := range LexDialect(src, tt.dialect) {
				got = append(got, tok.Kind)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// Dropping comments and whitespace must keep every other token, in order.
func TestLexPreservesOrder(t *testing.T) {
	src := `anka a = 10; anka b = 5; // trailing
anka c = (a + b) * 2 % 7 - a / b;
Dekhau(c);`
	var sb strings.Builder
	for _, tok := range Lex(src) {
		if tok.Kind == UNKNOWN {
			t.Fatalf("unexpected UNKNOWN token %q", tok.Lexeme)
		}
		sb.WriteString(tok.Lexeme)
	}

	stripped := strings.Join(strings.Fields(strings.Replace(src, "// trailing", "", 1)), "")
	if sb.String() != stripped {
		t.Errorf("concatenated lexemes\n got: %s\nwant: %s", sb.String(), stripped)
	}
}

func TestDialectByName(t *testing.T) {
	for name, want := range map[string]*Dialect{
		"":        MixedDialect,
		"mixed":   MixedDialect,
		"Nepali":  NepaliDialect,
		"en":      EnglishDialect,
		"english": EnglishDialect,
	} {
		got, err := DialectByName(name)
		if err != nil {
			t.Fatalf("DialectByName(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("DialectByName(%q) = %s, want %s", name, got.Name, want.Name)
		}
	}
	if _, err := DialectByName("klingon"); err == nil {
		t.Error("expected an error for an unknown dialect")
	}
}

func TestDialectKeywords(t *testing.T) {
	got := MixedDialect.Keywords(PRINT)
	want := []string{"Dekhau", "Print"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords(PRINT) = %v, want %v", got, want)
	}
	if n := len(NepaliDialect.Keywords(TYPE)); n != 10 {
		t.Errorf("expected 10 Nepali type keywords, got %d", n)
	}
}

package nepali

import (
	"fmt"
	"sort"
	"strings"
)

// Dialect is the keyword table the lexer consults before falling back to
// IDENTIFIER. Keywords match whole words only.
type Dialect struct {
	Name     string
	keywords map[string]TokenKind
}

var nepaliKeywords = map[string]TokenKind{
	"Yedi":       IF,
	"Athawa":     ELSE,
	"Jabasamma":  WHILE,
	"Kolagi":     FOR,
	"Karo":       DO,
	"Farkau":     RETURN,
	"Karyakram":  FUNCTION,
	"Dekhau":     PRINT,
	"Linuhoos":   INPUT,
	"Sahi":       TRUE,
	"Galat":      FALSE,
	"Ra":         AND,
	"Wa":         OR,
	"Hoina":      NOT,
	"rokdinus":   BREAK,
	"chalos":     CONTINUE,
	"Pariwartan": SWITCH,
	"Sthiti":     CASE,
	"hoinava":    DEFAULT,

	"anka":       TYPE,
	"Dashanka":   TYPE,
	"Shabda":     TYPE,
	"Akshar":     TYPE,
	"Satya":      TYPE,
	"Suchi":      TYPE,
	"Shabdakosh": TYPE,
	"Khali":      TYPE,
	"Ganna":      TYPE,
	"Sanrachana": TYPE,
}

var englishKeywords = map[string]TokenKind{
	"If":       IF,
	"Else":     ELSE,
	"While":    WHILE,
	"For":      FOR,
	"Do":       DO,
	"Return":   RETURN,
	"Function": FUNCTION,
	"Print":    PRINT,
	"Input":    INPUT,
	"True":     TRUE,
	"False":    FALSE,
	"And":      AND,
	"Or":       OR,
	"Not":      NOT,
	"Break":    BREAK,
	"Continue": CONTINUE,
	"Switch":   SWITCH,
	"Case":     CASE,
	"Default":  DEFAULT,
	"int":      TYPE,
}

var (
	NepaliDialect  = newDialect("nepali", nepaliKeywords)
	EnglishDialect = newDialect("english", englishKeywords)
	MixedDialect   = newDialect("mixed", nepaliKeywords, englishKeywords)
)

func newDialect(name string, tables ...map[string]TokenKind) *Dialect {
	d := &Dialect{Name: name, keywords: make(map[string]TokenKind)}
	for _, table := range tables {
		for word, kind := range table {
			d.keywords[word] = kind
		}
	}
	return d
}

// Lookup returns the keyword kind for word, or IDENTIFIER.
func (d *Dialect) Lookup(word string) TokenKind {
	if kind, ok := d.keywords[word]; ok {
		return kind
	}
	return IDENTIFIER
}

// Keywords returns every word of d spelled for kind, sorted.
func (d *Dialect) Keywords(kind TokenKind) []string {
	var words []string
	for word, k := range d.keywords {
		if k == kind {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	return words
}

// DialectByName resolves the names accepted by the -dialect flags.
func DialectByName(name string) (*Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mixed":
		return MixedDialect, nil
	case "nepali", "ne":
		return NepaliDialect, nil
	case "english", "en":
		return EnglishDialect, nil
	}
	return nil, fmt.Errorf("unknown dialect %q (want nepali, english or mixed)", name)
}

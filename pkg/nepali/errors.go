package nepali

import (
	"errors"
	"fmt"
	"strings"
)

// Every failure aborts the run. Callers tell the kinds apart with errors.Is.
var (
	ErrSyntax            = errors.New("syntax error")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUnknownOperator   = errors.New("unknown operator")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrUnterminatedBlock = errors.New("missing closing '}' for block")
	ErrUnsupported       = errors.New("unsupported construct")
)

// Error carries the kind of failure together with the source position.
type Error struct {
	Kind    error
	Line    int
	Msg     string
	Snippet string // trimmed source line, empty when unavailable

	atEOF bool // input ran out inside an open construct
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", e.Line)
	}
	sb.WriteString(e.Kind.Error())
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Snippet != "" {
		sb.WriteString("\n  |> ")
		sb.WriteString(e.Snippet)
	}
	return sb.String()
}

func (e *Error) Unwrap() error { return e.Kind }

// IsIncomplete reports whether err came from input that ended inside an open
// block, parenthesis or condition, so more input could still complete it.
func IsIncomplete(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.atEOF
}

// snippetAt returns the trimmed text of the 1-based line, or "".
func snippetAt(lines []string, line int) string {
	idx := line - 1
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[idx])
}

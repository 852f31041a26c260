// Package nepali implements a lexer, parser and tree-walking evaluator for a
// small imperative language with Nepali keywords.
//
// Pipeline: source → Lex → Parser.Next → Interpreter.Exec, one top-level
// statement at a time, so output of earlier statements is produced before a
// later statement is parsed.
package nepali

import (
	"io"
	"os"
	"strings"

	"fortio.org/log"
)

// Interpreter owns the variable table of one program run. It is not safe for
// concurrent use.
type Interpreter struct {
	vars    *Vars
	out     io.Writer
	dialect *Dialect
	lines   []string // source of the current run, for error snippets
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets where Dekhau writes. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// WithDialect selects the keyword table used by Run.
func WithDialect(d *Dialect) Option {
	return func(in *Interpreter) { in.dialect = d }
}

// WithVars makes the interpreter read and write an existing table.
func WithVars(v *Vars) Option {
	return func(in *Interpreter) { in.vars = v }
}

func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		vars:    NewVars(),
		out:     os.Stdout,
		dialect: MixedDialect,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func (in *Interpreter) Vars() *Vars { return in.vars }

func (in *Interpreter) Dialect() *Dialect { return in.dialect }

// Run lexes src with the interpreter's dialect and executes it. The first
// error aborts the run; statements before it have already taken effect.
func (in *Interpreter) Run(src string) error {
	return in.RunTokens(LexDialect(src, in.dialect), src)
}

// RunTokens executes an already lexed program. src is only used for error
// snippets and may be empty.
func (in *Interpreter) RunTokens(tokens []Token, src string) error {
	in.lines = strings.Split(src, "\n")
	p := NewParser(tokens, src)
	n := 0
	for !p.Done() {
		stmt, err := p.Next()
		if err != nil {
			return err
		}
		if err := in.Exec(stmt); err != nil {
			return err
		}
		n++
	}
	log.LogVf("ran %d statements, %d variables bound", n, in.vars.Len())
	return nil
}

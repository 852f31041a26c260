package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/log"

	"nepalilang/pkg/nepali"
	"nepalilang/pkg/utils"
)

const sampleSource = `anka a = 10;
anka b = 5;
Kolagi (anka i = 0; i < 3; i = i + 1) {
	Yedi (i % 2 == 0) { a = a + b * i; } Athawa { Dekhau(i); }
}
Dekhau(a);
`

func main() {
	dialectName := flag.String("dialect", "mixed", "keyword set: nepali, english or mixed")
	flag.Parse()

	log.SetDefaultsForClientTools()
	dialect, err := nepali.DialectByName(*dialectName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	src := sampleSource
	if flag.NArg() > 0 {
		_, src, err = utils.ReadSource(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
	}
	if err := inspect(os.Stdout, src, dialect); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// inspect writes the source, its tokens and statement tree, then runs it and
// dumps the final table.
func inspect(w io.Writer, src string, dialect *nepali.Dialect) error {
	fmt.Fprintf(w, "Source:\n%s\n", src)

	tokens := nepali.LexDialect(src, dialect)
	fmt.Fprintf(w, "Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Fprintln(w, " ", tok)
	}
	fmt.Fprintln(w)

	stmts, err := nepali.Parse(tokens, src)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	fmt.Fprintln(w, "Tree")
	for _, s := range stmts {
		fmt.Fprintln(w, " ", s)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	in := nepali.New(nepali.WithOutput(w), nepali.WithDialect(dialect))
	for _, s := range stmts {
		if err := in.Exec(s); err != nil {
			fmt.Fprint(w, in.Vars())
			return fmt.Errorf("runtime error: %w", err)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, in.Vars())
	return nil
}

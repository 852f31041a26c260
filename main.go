//go:build !js

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"gopkg.in/yaml.v3"

	"nepalilang/pkg/nepali"
	"nepalilang/pkg/utils"
)

func main() {
	inPath := flag.String("in", "", "source file to run (\"-\" reads stdin)")
	expr := flag.String("e", "", "run the given source text instead of a file")
	dialectName := flag.String("dialect", "mixed", "keyword set: nepali, english or mixed")
	logLevel := flag.String("log", "info", "log level (debug, verbose, info, warning, error)")
	dumpVars := flag.Bool("vars", false, "print the final variable table as YAML")
	dumpTokens := flag.Bool("tokens", false, "print the token list before running")
	flag.Parse()

	log.SetDefaultsForClientTools()
	if err := log.SetLogLevelStr(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}

	if *inPath != "" && *expr != "" {
		fmt.Fprintln(os.Stderr, "use either -in or -e, not both")
		os.Exit(2)
	}
	if *inPath == "" && *expr == "" {
		if flag.NArg() == 0 {
			fmt.Fprintln(os.Stderr, "nothing to do: provide -in <file>, -e <source> or a file argument")
			flag.Usage()
			os.Exit(2)
		}
		*inPath = flag.Arg(0)
	}

	dialect, err := nepali.DialectByName(*dialectName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	name, src := "<expr>", *expr
	if *inPath != "" {
		name, src, err = utils.ReadSource(*inPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	log.Infof("running %s (%s dialect)", name, dialect.Name)

	tokens := nepali.LexDialect(src, dialect)
	if *dumpTokens {
		fmt.Printf("Tokens (%d)\n", len(tokens))
		for _, tok := range tokens {
			fmt.Println(" ", tok)
		}
		fmt.Println()
	}

	in := nepali.New(nepali.WithDialect(dialect))
	runErr := in.RunTokens(tokens, src)

	if *dumpVars {
		if err := writeVars(os.Stdout, in.Vars()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write variables: %v\n", err)
			os.Exit(1)
		}
	}

	if runErr != nil {
		log.Errf("%s: %v", name, runErr)
		os.Exit(1)
	}
}

// writeVars encodes the table as a YAML mapping ordered by name.
func writeVars(w io.Writer, vars *nepali.Vars) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(vars); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

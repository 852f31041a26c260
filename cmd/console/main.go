package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"fortio.org/log"
	"github.com/peterh/liner"

	"nepalilang/pkg/nepali"
)

const (
	historyFile = ".nepalilang_history"
	promptMain  = "np> "
	promptCont  = "... "
	banner      = "nepalilang console. :vars shows the table, :reset clears it, :quit exits."
)

func main() {
	dialectName := flag.String("dialect", "mixed", "keyword set: nepali, english or mixed")
	logLevel := flag.String("log", "info", "log level (debug, verbose, info, warning, error)")
	flag.Parse()

	log.SetDefaultsForClientTools()
	if err := log.SetLogLevelStr(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	dialect, err := nepali.DialectByName(*dialectName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(repl(dialect))
}

func repl(dialect *nepali.Dialect) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	in := nepali.New(nepali.WithDialect(dialect))

	for {
		code, ok := readByParseProbe(ln, dialect)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return 0
			case ":vars":
				fmt.Print(in.Vars())
			case ":reset":
				in.Vars().Reset()
				fmt.Println("table cleared")
			default:
				fmt.Println("unknown command. Try :vars, :reset or :quit.")
			}
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if err := in.Run(code); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return 0
}

// readByParseProbe reads lines until they form a complete program, or until
// the parse fails for a reason other than running out of input.
func readByParseProbe(ln *liner.State, dialect *nepali.Dialect) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C drops the pending entry.
			b.Reset()
			continue
		}
		if err != nil {
			log.Errf("prompt: %v", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if needsMore(src, dialect) {
			continue
		}
		return src, true
	}
}

// needsMore reports whether src stops inside an open block, parenthesis or
// statement. Console commands are always complete.
func needsMore(src string, dialect *nepali.Dialect) bool {
	if strings.HasPrefix(strings.TrimSpace(src), ":") {
		return false
	}
	_, err := nepali.Parse(nepali.LexDialect(src, dialect), src)
	return nepali.IsIncomplete(err)
}

// cmd/mint/main.go
package main

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"
	pkgerrors "github.com/pkg/errors"

	"mint/internal/formatter"
	"mint/internal/interp"
	"mint/internal/lexer"
	"mint/internal/repl"
)

const version = "1.0.0"

func main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}

	var inline string
	opts, optind, err := getopt.Getopts(os.Args, "e:nv")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		showUsage()
		os.Exit(2)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'e':
			inline = opt.Value
		case 'n':
			color.NoColor = true
		case 'v':
			showVersion()
			return
		}
	}
	args := os.Args[optind:]

	if inline != "" {
		if err := interp.Run(inline, os.Stdout, os.Stderr); err != nil {
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		showUsage()
		return
	}

	switch args[0] {
	case "help", "--help":
		showUsage()
	case "version", "--version":
		showVersion()
	case "repl":
		repl.Start()
	case "run":
		runFile(fileArg(args, "run"))
	case "check":
		checkFile(fileArg(args, "check"))
	case "tokens":
		dumpTokens(fileArg(args, "tokens"))
	case "fmt":
		formatFile(fileArg(args, "fmt"))
	default:
		runFile(args[0])
	}
}

func fileArg(args []string, command string) string {
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: mint %s <file>\n", command)
		os.Exit(2)
	}
	return args[1]
}

func readSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, pkgerrors.Wrapf(err, "cannot open '%s'", path))
		os.Exit(1)
	}
	return string(data)
}

func runFile(path string) {
	if err := interp.Run(readSource(path), os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// checkFile runs the full front end with execution output discarded,
// so only diagnostics surface.
func checkFile(path string) {
	if err := interp.Run(readSource(path), io.Discard, os.Stderr); err != nil {
		os.Exit(1)
	}
	color.Green("%s: syntax is valid", path)
}

func dumpTokens(path string) {
	tokens, err := lexer.NewScanner(readSource(path)).ScanTokens()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%# v\n", pretty.Formatter(tokens))
}

func formatFile(path string) {
	out, err := formatter.FormatSource(readSource(path))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func showVersion() {
	fmt.Printf("mint %s\n", version)
}

func showUsage() {
	color.Cyan("mint - minimal integer language")
	fmt.Println(`
Usage:
  mint <file>            run a program
  mint run <file>        run a program
  mint check <file>      check a program without executing prints
  mint fmt <file>        print the canonical formatting of a program
  mint tokens <file>     dump the token sequence
  mint repl              start an interactive session
  mint version           show version

Options:
  -e <source>   run an inline program (e.g. mint -e 'print(1+2);')
  -n            disable colored status output
  -v            show version`)
}

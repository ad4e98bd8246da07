// internal/repl/repl.go
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"mint/internal/errors"
	"mint/internal/lexer"
	"mint/internal/parser"
	"mint/internal/symbol"
)

func Start() {
	color.Cyan("mint repl | type 'exit' to quit")
	input := bufio.NewScanner(os.Stdin)

	// Variables persist for the whole session; each line is its own
	// run, so one bad line does not suppress output from later ones.
	table := symbol.NewTable()

	for {
		fmt.Print(">>> ")
		if !input.Scan() {
			break
		}
		line := input.Text()
		if strings.TrimSpace(line) == "exit" {
			break
		}
		runLine(line, table, os.Stdout, os.Stderr)
	}
}

// runLine executes one line as its own run against the session table.
// Diagnostics of every category render with caret context; the
// one-line batch format is untouched, it belongs to interp.
func runLine(line string, table *symbol.Table, out, errw io.Writer) {
	tokens, err := lexer.NewScanner(line).ScanTokens()
	if err != nil {
		printDetail(errw, err, line)
		return
	}

	p := parser.NewParser(tokens, table, out, io.Discard)
	p.ParseProgram()
	for _, perr := range p.Errors {
		printDetail(errw, perr, line)
	}
}

func printDetail(w io.Writer, err error, line string) {
	if e, ok := err.(*errors.Error); ok {
		fmt.Fprintln(w, e.Detail(line))
		return
	}
	fmt.Fprintln(w, err)
}

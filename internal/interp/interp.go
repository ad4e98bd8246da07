// internal/interp/interp.go
package interp

import (
	"fmt"
	"io"

	"mint/internal/lexer"
	"mint/internal/parser"
	"mint/internal/symbol"
)

// Run executes one program: tokenize everything up front, then parse
// and evaluate in a single pass. Print output goes to out, diagnostics
// to diag. Every call owns a fresh scanner, cursor, symbol table and
// error flag, so repeated runs of the same source behave identically.
//
// The returned error is non-nil iff the run emitted any diagnostic. A
// lexical error aborts before parsing; all other categories are
// accumulated while the rest of the input is still checked.
func Run(source string, out, diag io.Writer) error {
	tokens, err := lexer.NewScanner(source).ScanTokens()
	if err != nil {
		fmt.Fprintln(diag, err)
		return err
	}

	p := parser.NewParser(tokens, symbol.NewTable(), out, diag)
	p.ParseProgram()
	if p.HadError() {
		return fmt.Errorf("%d error(s)", len(p.Errors))
	}
	return nil
}

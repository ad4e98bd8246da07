// internal/parser/parser.go
//
// Recursive-descent parser that evaluates as it goes. One method per
// grammar nonterminal:
//
//	Program     := Stmt* EOF
//	Stmt        := Declaration | PrintStmt
//	Declaration := "int" IDENTIFIER "=" Expr ";"
//	PrintStmt   := "print" "(" Expr ")" ";"
//	Expr        := Term (("+"|"-") Term)*
//	Term        := Factor (("*"|"/") Factor)*
//	Factor      := INTEGER | IDENTIFIER | "(" Expr ")"
//
// No AST is built; expression methods return the computed value. The
// first error of any category sets a sticky flag that suppresses print
// output for the rest of the run, while parsing keeps going so one pass
// reports as many diagnostics as it can.
package parser

import (
	"fmt"
	"io"

	"mint/internal/errors"
	"mint/internal/lexer"
	"mint/internal/symbol"
)

// DefaultMaxDepth bounds parenthesis nesting so hostile input fails
// with a diagnostic instead of exhausting the call stack.
const DefaultMaxDepth = 64

// Parser walks the token sequence with a single forward cursor. It
// owns the sticky error flag; the symbol table and output writers are
// supplied by the caller so every run is independent.
type Parser struct {
	tokens  []lexer.Token
	current int
	symbols *symbol.Table
	out     io.Writer
	diag    io.Writer

	Errors   []error
	hadError bool

	depth    int
	maxDepth int
}

// NewParser expects a token sequence ending in an EOF token, as
// produced by lexer.Scanner. Print output goes to out, diagnostics to
// diag, one line each as they are detected.
func NewParser(tokens []lexer.Token, symbols *symbol.Table, out, diag io.Writer) *Parser {
	return NewParserWithLimit(tokens, symbols, out, diag, DefaultMaxDepth)
}

func NewParserWithLimit(tokens []lexer.Token, symbols *symbol.Table, out, diag io.Writer, maxDepth int) *Parser {
	return &Parser{
		tokens:   tokens,
		symbols:  symbols,
		out:      out,
		diag:     diag,
		maxDepth: maxDepth,
	}
}

// ParseProgram parses and executes the whole token sequence.
func (p *Parser) ParseProgram() {
	for !p.check(lexer.TokenEOF) {
		p.statement()
	}
	p.expect(lexer.TokenEOF)
}

// HadError reports whether any diagnostic was emitted during the run.
func (p *Parser) HadError() bool {
	return p.hadError
}

// Stmt := Declaration | PrintStmt
func (p *Parser) statement() {
	t := p.peek()
	switch t.Type {
	case lexer.TokenInt:
		p.declaration()
	case lexer.TokenPrint:
		p.printStatement()
	default:
		p.report(errors.NewSyntax(
			fmt.Sprintf("expected 'int' or 'print' at start of statement but found %s ('%s')",
				t.Type.Name(), t.Lexeme),
			t.Line, t.Col))
		// Skip the offending token so the loop makes progress.
		if t.Type != lexer.TokenEOF {
			p.advance()
		}
	}
}

// Declaration := "int" IDENTIFIER "=" Expr ";"
func (p *Parser) declaration() {
	p.expect(lexer.TokenInt)
	id := p.expect(lexer.TokenIdent)
	p.expect(lexer.TokenEqual)
	value := p.expression()
	p.expect(lexer.TokenSemicolon)

	// A declaration stores nothing once any error has occurred,
	// including errors raised by its own initializer.
	if p.hadError {
		return
	}
	v, err := p.symbols.Declare(id.Lexeme, id.Line, id.Col)
	if err != nil {
		p.report(err)
		return
	}
	v.Value = value
}

// PrintStmt := "print" "(" Expr ")" ";"
func (p *Parser) printStatement() {
	p.expect(lexer.TokenPrint)
	p.expect(lexer.TokenLParen)
	value := p.expression()
	p.expect(lexer.TokenRParen)
	p.expect(lexer.TokenSemicolon)

	if !p.hadError {
		fmt.Fprintln(p.out, value)
	}
}

// Expr := Term (("+"|"-") Term)*
func (p *Parser) expression() int {
	left := p.term()
	for p.check(lexer.TokenPlus) || p.check(lexer.TokenMinus) {
		op := p.advance()
		right := p.term()
		if op.Type == lexer.TokenPlus {
			left = left + right
		} else {
			left = left - right
		}
	}
	return left
}

// Term := Factor (("*"|"/") Factor)*
func (p *Parser) term() int {
	left := p.factor()
	for p.check(lexer.TokenStar) || p.check(lexer.TokenSlash) {
		op := p.advance()
		right := p.factor()
		if op.Type == lexer.TokenStar {
			left = left * right
		} else if right == 0 {
			p.report(errors.NewRuntime("division by zero", op.Line, op.Col))
			left = 0
		} else {
			left = left / right
		}
	}
	return left
}

// Factor := INTEGER | IDENTIFIER | "(" Expr ")"
func (p *Parser) factor() int {
	t := p.peek()
	switch t.Type {
	case lexer.TokenNumber:
		p.advance()
		return t.Value

	case lexer.TokenIdent:
		p.advance()
		v, ok := p.symbols.Lookup(t.Lexeme)
		if !ok {
			p.report(errors.NewSemantic(
				fmt.Sprintf("undeclared variable '%s'", t.Lexeme), t.Line, t.Col))
			return 0
		}
		return v.Value

	case lexer.TokenLParen:
		if p.depth >= p.maxDepth {
			p.report(errors.NewSyntax(
				fmt.Sprintf("expression nesting too deep (max %d)", p.maxDepth),
				t.Line, t.Col))
			p.advance()
			return 0
		}
		p.advance()
		p.depth++
		value := p.expression()
		p.depth--
		p.expect(lexer.TokenRParen)
		return value

	default:
		p.report(errors.NewSyntax(
			fmt.Sprintf("expected expression but found %s ('%s')", t.Type.Name(), t.Lexeme),
			t.Line, t.Col))
		if t.Type != lexer.TokenEOF {
			p.advance()
		}
		return 0
	}
}

// expect consumes the current token if it matches. On mismatch it
// reports a syntax error and returns the current token unconsumed;
// callers that chain expects will cascade further mismatches, which is
// the accepted recovery behavior.
func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	cur := p.peek()
	if cur.Type == t {
		return p.advance()
	}
	p.report(errors.NewSyntax(
		fmt.Sprintf("expected %s but found %s ('%s')", t.Name(), cur.Type.Name(), cur.Lexeme),
		cur.Line, cur.Col))
	return cur
}

func (p *Parser) report(err error) {
	p.hadError = true
	p.Errors = append(p.Errors, err)
	fmt.Fprintln(p.diag, err)
}

func (p *Parser) check(t lexer.TokenType) bool {
	return p.peek().Type == t
}

// advance never moves past the EOF token; re-reading it is idempotent.
func (p *Parser) advance() lexer.Token {
	t := p.tokens[p.current]
	if t.Type != lexer.TokenEOF {
		p.current++
	}
	return t
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

// internal/formatter/formatter.go
package formatter

import (
	"strings"

	"mint/internal/lexer"
)

// Formatter reprints a token sequence in canonical form: one statement
// per line, operators spaced, no padding inside parentheses. Comments
// are not part of the token stream and are therefore dropped.
type Formatter struct {
	output strings.Builder
}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatSource tokenizes source and formats it. Lexically invalid
// input is rejected with the scanner's diagnostic.
func FormatSource(source string) (string, error) {
	tokens, err := lexer.NewScanner(source).ScanTokens()
	if err != nil {
		return "", err
	}
	return NewFormatter().Format(tokens), nil
}

// Format renders tokens up to the EOF token.
func (f *Formatter) Format(tokens []lexer.Token) string {
	f.output.Reset()

	atLineStart := true
	var prev lexer.Token
	for _, tok := range tokens {
		if tok.Type == lexer.TokenEOF {
			break
		}
		if !atLineStart && needsSpace(prev, tok) {
			f.output.WriteString(" ")
		}
		f.output.WriteString(tok.Lexeme)
		atLineStart = false
		if tok.Type == lexer.TokenSemicolon {
			f.output.WriteString("\n")
			atLineStart = true
		}
		prev = tok
	}
	return f.output.String()
}

func needsSpace(prev, cur lexer.Token) bool {
	if cur.Type == lexer.TokenSemicolon || cur.Type == lexer.TokenRParen {
		return false
	}
	if prev.Type == lexer.TokenLParen {
		return false
	}
	// print(...) binds the paren to the keyword.
	if prev.Type == lexer.TokenPrint && cur.Type == lexer.TokenLParen {
		return false
	}
	return true
}

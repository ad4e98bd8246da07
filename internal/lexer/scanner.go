// internal/lexer/scanner.go
package lexer

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"mint/internal/errors"
)

type TokenType string

const (
	// Keywords
	TokenInt   TokenType = "INT"
	TokenPrint TokenType = "PRINT"

	// Literals & identifiers
	TokenIdent  TokenType = "IDENT"
	TokenNumber TokenType = "NUMBER"

	// Symbols
	TokenEqual     TokenType = "="
	TokenPlus      TokenType = "+"
	TokenMinus     TokenType = "-"
	TokenStar      TokenType = "*"
	TokenSlash     TokenType = "/"
	TokenLParen    TokenType = "("
	TokenRParen    TokenType = ")"
	TokenSemicolon TokenType = ";"

	TokenEOF TokenType = "EOF"
)

// Name returns the human-readable form used in diagnostics.
func (t TokenType) Name() string {
	switch t {
	case TokenInt:
		return "keyword 'int'"
	case TokenPrint:
		return "keyword 'print'"
	case TokenIdent:
		return "identifier"
	case TokenNumber:
		return "integer literal"
	case TokenEOF:
		return "end of file"
	default:
		return "'" + string(t) + "'"
	}
}

// Token is one lexical unit. Line and Col are 1-based and point at the
// first character of the lexeme. Value is set for TokenNumber only.
type Token struct {
	Type   TokenType
	Lexeme string
	Value  int
	Line   int
	Col    int
}

func (t Token) String() string {
	return fmt.Sprintf("[%s] '%s' at %d:%d", t.Type, t.Lexeme, t.Line, t.Col)
}

// DefaultMaxTokens bounds the token sequence so pathological input
// fails with a structured error instead of growing without limit.
const DefaultMaxTokens = 1 << 16

// Scanner turns source text into the full token sequence before any
// parsing happens. A Scanner is good for one ScanTokens call.
type Scanner struct {
	source    string
	tokens    []Token
	start     int
	current   int
	line      int
	col       int
	startLine int
	startCol  int
	maxTokens int
}

func NewScanner(source string) *Scanner {
	return NewScannerWithLimit(source, DefaultMaxTokens)
}

func NewScannerWithLimit(source string, maxTokens int) *Scanner {
	return &Scanner{
		source:    source,
		line:      1,
		col:       1,
		maxTokens: maxTokens,
	}
}

// ScanTokens scans the whole source. On success the returned sequence
// ends with exactly one EOF token. Any lexical error stops the scan
// immediately; no tokens are returned past the failure point.
func (s *Scanner) ScanTokens() ([]Token, error) {
	for !s.isAtEnd() {
		s.skipBlanks()
		if s.isAtEnd() {
			break
		}
		s.start = s.current
		s.startLine = s.line
		s.startCol = s.col
		if err := s.scanToken(); err != nil {
			return nil, err
		}
		if len(s.tokens) > s.maxTokens {
			return nil, errors.NewLexical(
				fmt.Sprintf("too many tokens (max %s)", humanize.Comma(int64(s.maxTokens))),
				s.startLine, s.startCol)
		}
	}
	s.tokens = append(s.tokens, Token{Type: TokenEOF, Lexeme: "EOF", Line: s.line, Col: s.col})
	return s.tokens, nil
}

// skipBlanks consumes whitespace and // line comments.
func (s *Scanner) skipBlanks() {
	for !s.isAtEnd() {
		c := s.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == '/' && s.peekNext() == '/':
			for !s.isAtEnd() && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanToken() error {
	c := s.advance()
	switch c {
	case '=':
		s.addToken(TokenEqual)
	case '+':
		s.addToken(TokenPlus)
	case '-':
		s.addToken(TokenMinus)
	case '*':
		s.addToken(TokenStar)
	case '/':
		s.addToken(TokenSlash)
	case '(':
		s.addToken(TokenLParen)
	case ')':
		s.addToken(TokenRParen)
	case ';':
		s.addToken(TokenSemicolon)
	default:
		if isDigit(c) {
			return s.number()
		}
		if isAlpha(c) {
			s.identifier()
			return nil
		}
		return errors.NewLexical(
			fmt.Sprintf("unexpected character '%c'", c),
			s.startLine, s.startCol)
	}
	return nil
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	switch s.source[s.start:s.current] {
	case "int":
		s.addToken(TokenInt)
	case "print":
		s.addToken(TokenPrint)
	default:
		s.addToken(TokenIdent)
	}
}

func (s *Scanner) number() error {
	for isDigit(s.peek()) {
		s.advance()
	}
	// A letter glued to a digit run is not a valid token (e.g. 123abc).
	if isAlpha(s.peek()) {
		return errors.NewLexical(
			fmt.Sprintf("invalid token '%c' after integer literal", s.peek()),
			s.startLine, s.startCol)
	}
	text := s.source[s.start:s.current]
	// Decimal accumulation in native-word arithmetic; oversized
	// literals wrap.
	value := 0
	for i := 0; i < len(text); i++ {
		value = value*10 + int(text[i]-'0')
	}
	s.tokens = append(s.tokens, Token{
		Type:   TokenNumber,
		Lexeme: text,
		Value:  value,
		Line:   s.startLine,
		Col:    s.startCol,
	})
	return nil
}

func (s *Scanner) addToken(t TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:   t,
		Lexeme: s.source[s.start:s.current],
		Line:   s.startLine,
		Col:    s.startCol,
	})
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// ASCII only: a high byte must halt the scan, not start an identifier.
func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

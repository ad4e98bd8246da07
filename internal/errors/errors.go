// internal/errors/errors.go
package errors

import (
	"fmt"
	"strings"
)

// Category classifies a diagnostic by the phase that detected it.
type Category string

const (
	Lexical  Category = "Lexical"
	Syntax   Category = "Syntax"
	Semantic Category = "Semantic"
	Runtime  Category = "Runtime"
)

// Error is a diagnostic with a 1-based source position. Its Error()
// string is the exact line written to the diagnostic stream, so the
// format must not change.
type Error struct {
	Category Category
	Message  string
	Line     int
	Col      int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s Error [line %d, col %d]: %s", e.Category, e.Line, e.Col, e.Message)
}

// Detail renders the diagnostic with the offending source line and a
// caret under the column. Used for interactive display only; batch
// diagnostics stay one line.
func (e *Error) Detail(sourceLine string) string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if sourceLine != "" {
		prefix := fmt.Sprintf("  %d | ", e.Line)
		sb.WriteString("\n")
		sb.WriteString(prefix)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)))
		if e.Col > 0 {
			sb.WriteString(strings.Repeat(" ", e.Col-1))
		}
		sb.WriteString("^")
	}
	return sb.String()
}

// NewLexical creates a lexical diagnostic (malformed or unrecognized token).
func NewLexical(message string, line, col int) *Error {
	return &Error{Category: Lexical, Message: message, Line: line, Col: col}
}

// NewSyntax creates a syntax diagnostic (token sequence does not match the grammar).
func NewSyntax(message string, line, col int) *Error {
	return &Error{Category: Syntax, Message: message, Line: line, Col: col}
}

// NewSemantic creates a semantic diagnostic (undeclared reference, redeclaration).
func NewSemantic(message string, line, col int) *Error {
	return &Error{Category: Semantic, Message: message, Line: line, Col: col}
}

// NewRuntime creates a runtime diagnostic (division by zero).
func NewRuntime(message string, line, col int) *Error {
	return &Error{Category: Runtime, Message: message, Line: line, Col: col}
}

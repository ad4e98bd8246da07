// internal/symbol/table.go
package symbol

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"mint/internal/errors"
)

// Variable is one declared name. Value starts at zero; the declaring
// statement assigns it once its initializer has been evaluated.
type Variable struct {
	Name     string
	Value    int
	Declared bool
}

// DefaultMaxVars bounds the number of declarations per run.
const DefaultMaxVars = 1 << 10

// Table maps variable names to values for one program run. Names are
// case-sensitive and declare-once; insertion order is retained but
// never observable from the language. Not safe for concurrent use.
type Table struct {
	vars    map[string]*Variable
	order   []string
	maxVars int
}

func NewTable() *Table {
	return NewTableWithLimit(DefaultMaxVars)
}

func NewTableWithLimit(maxVars int) *Table {
	return &Table{
		vars:    make(map[string]*Variable),
		maxVars: maxVars,
	}
}

// Lookup returns the variable if it has been declared.
func (t *Table) Lookup(name string) (*Variable, bool) {
	v, ok := t.vars[name]
	return v, ok
}

// Declare inserts a new variable with value 0 and returns its handle.
// Redeclaring an existing name fails and leaves the table unchanged.
func (t *Table) Declare(name string, line, col int) (*Variable, error) {
	if _, ok := t.vars[name]; ok {
		return nil, errors.NewSemantic(
			fmt.Sprintf("variable '%s' is already declared", name), line, col)
	}
	if len(t.order) >= t.maxVars {
		return nil, errors.NewSemantic(
			fmt.Sprintf("too many variables (max %s)", humanize.Comma(int64(t.maxVars))), line, col)
	}
	v := &Variable{Name: name, Declared: true}
	t.vars[name] = v
	t.order = append(t.order, name)
	return v, nil
}

// Len reports how many variables have been declared.
func (t *Table) Len() int {
	return len(t.order)
}

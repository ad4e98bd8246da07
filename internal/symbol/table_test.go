package symbol

import (
	"fmt"
	"strings"
	"testing"

	"mint/internal/errors"
)

func TestDeclareAndLookup(t *testing.T) {
	table := NewTable()

	if _, ok := table.Lookup("x"); ok {
		t.Fatal("lookup before declaration should fail")
	}

	v, err := table.Declare("x", 1, 5)
	if err != nil {
		t.Fatalf("declare failed: %v", err)
	}
	if v.Value != 0 {
		t.Errorf("new variable should start at 0, got %d", v.Value)
	}
	if !v.Declared {
		t.Error("new variable should be marked declared")
	}

	v.Value = 42
	got, ok := table.Lookup("x")
	if !ok {
		t.Fatal("lookup after declaration failed")
	}
	if got.Value != 42 {
		t.Errorf("got %d, want 42", got.Value)
	}
}

func TestRedeclaration(t *testing.T) {
	table := NewTable()
	v, err := table.Declare("x", 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	v.Value = 1

	_, err = table.Declare("x", 2, 5)
	if err == nil {
		t.Fatal("redeclaration should fail")
	}
	semErr, ok := err.(*errors.Error)
	if !ok || semErr.Category != errors.Semantic {
		t.Fatalf("expected a Semantic error, got %v", err)
	}
	if semErr.Message != "variable 'x' is already declared" {
		t.Errorf("unexpected message: %q", semErr.Message)
	}
	if semErr.Line != 2 || semErr.Col != 5 {
		t.Errorf("error should carry the redeclaration site, got %d:%d", semErr.Line, semErr.Col)
	}

	// The original binding is untouched.
	got, _ := table.Lookup("x")
	if got.Value != 1 {
		t.Errorf("redeclaration corrupted the value: got %d, want 1", got.Value)
	}
	if table.Len() != 1 {
		t.Errorf("table should still hold one variable, got %d", table.Len())
	}
}

func TestNamesAreCaseSensitive(t *testing.T) {
	table := NewTable()
	if _, err := table.Declare("foo", 1, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := table.Declare("Foo", 1, 1); err != nil {
		t.Errorf("'Foo' should be distinct from 'foo': %v", err)
	}
	if _, ok := table.Lookup("FOO"); ok {
		t.Error("lookup should not fold case")
	}
}

func TestVariableLimit(t *testing.T) {
	table := NewTableWithLimit(3)
	for i := 0; i < 3; i++ {
		if _, err := table.Declare(fmt.Sprintf("v%d", i), 1, 1); err != nil {
			t.Fatal(err)
		}
	}
	_, err := table.Declare("overflow", 4, 1)
	if err == nil {
		t.Fatal("expected too-many-variables error")
	}
	if !strings.Contains(err.Error(), "too many variables (max 3)") {
		t.Errorf("unexpected error: %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("failed declare must not grow the table, got %d", table.Len())
	}
}

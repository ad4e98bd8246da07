package interp

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, source string) (out string, diag string, err error) {
	t.Helper()
	var outBuf, diagBuf bytes.Buffer
	err = Run(source, &outBuf, &diagBuf)
	return outBuf.String(), diagBuf.String(), err
}

func TestRunCleanProgram(t *testing.T) {
	source := `
// squares
int a = 3;
int b = a * a;
print(b);
print(a + b);
`
	out, diag, err := run(t, source)
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, diag)
	}
	if diag != "" {
		t.Errorf("unexpected diagnostics: %q", diag)
	}
	if out != "9\n12\n" {
		t.Errorf("got %q, want %q", out, "9\n12\n")
	}
}

func TestRunReturnsErrorOnDiagnostics(t *testing.T) {
	out, diag, err := run(t, "print(y);")
	if err == nil {
		t.Fatal("expected an error")
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
	if !strings.Contains(diag, "Semantic Error") {
		t.Errorf("unexpected diagnostics: %q", diag)
	}
}

func TestLexicalErrorAbortsBeforeParsing(t *testing.T) {
	out, diag, err := run(t, "int x = 123abc;\nprint(oops);")
	if err == nil {
		t.Fatal("expected an error")
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
	// One diagnostic only: tokenization is fatal, the undeclared
	// reference on line 2 is never reached.
	want := "Lexical Error [line 1, col 9]: invalid token 'a' after integer literal\n"
	if diag != want {
		t.Errorf("got %q, want %q", diag, want)
	}
}

func TestSuppressionFollowsExecutionOrder(t *testing.T) {
	// A print after any earlier error is suppressed even if the print
	// itself is clean.
	out, diag, err := run(t, "foo bar; print(1);")
	if err == nil {
		t.Fatal("expected an error")
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
	if !strings.Contains(diag, "Syntax Error") {
		t.Errorf("unexpected diagnostics: %q", diag)
	}

	// The mirror case: output that preceded the error stays.
	out, _, err = run(t, "print(1); foo;")
	if err == nil {
		t.Fatal("expected an error")
	}
	if out != "1\n" {
		t.Errorf("got %q, want %q", out, "1\n")
	}
}

func TestRunsAreIndependent(t *testing.T) {
	source := "int x = 2; print(x * x); print(y);"
	out1, diag1, err1 := run(t, source)
	out2, diag2, err2 := run(t, source)
	if out1 != out2 || diag1 != diag2 {
		t.Errorf("reruns differ: out %q vs %q, diag %q vs %q", out1, out2, diag1, diag2)
	}
	if (err1 == nil) != (err2 == nil) {
		t.Errorf("rerun error mismatch: %v vs %v", err1, err2)
	}
	// x must not leak into the second run; the diagnostic for y shows
	// the table was rebuilt, the output shows x was redeclared cleanly.
	if out1 != "4\n" {
		t.Errorf("got %q, want %q", out1, "4\n")
	}
	if !strings.Contains(diag1, "undeclared variable 'y'") {
		t.Errorf("unexpected diagnostics: %q", diag1)
	}
}

func TestRedeclarationEndToEnd(t *testing.T) {
	out, diag, err := run(t, "int x = 1; int x = 2; print(x);")
	if err == nil {
		t.Fatal("expected an error")
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
	if !strings.Contains(diag, "variable 'x' is already declared") {
		t.Errorf("unexpected diagnostics: %q", diag)
	}
}

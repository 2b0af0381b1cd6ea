package regex

import (
	"errors"
	"testing"
)

func mustAccepts(t *testing.T, pattern string, accept, reject []string) {
	t.Helper()
	e, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	for _, w := range accept {
		if !e.Accepts([]byte(w)) {
			t.Errorf("Compile(%q): expected %q to be accepted", pattern, w)
		}
	}
	for _, w := range reject {
		if e.Accepts([]byte(w)) {
			t.Errorf("Compile(%q): expected %q to be rejected", pattern, w)
		}
	}
}

func TestCompileAlternation(t *testing.T) {
	mustAccepts(t, "a+b", []string{"a", "b"}, []string{"", "ab", "c"})
}

func TestCompileConcatenation(t *testing.T) {
	mustAccepts(t, "ab", []string{"ab"}, []string{"", "a", "b", "ba"})
}

func TestCompileClosure(t *testing.T) {
	mustAccepts(t, "a*", []string{"", "a", "aaaa"}, []string{"b", "ab"})
}

func TestCompileClosureOfClosure(t *testing.T) {
	mustAccepts(t, "a*b*", []string{"", "a", "b", "ab", "aabb", "aaa"}, []string{"ba", "bba", "c"})
}

func TestCompileGroupedAlternationConcat(t *testing.T) {
	mustAccepts(t, "(a+b)(c+d)",
		[]string{"ac", "ad", "bc", "bd"},
		[]string{"", "a", "ab", "cd", "aa"})
}

func TestCompileEmptyPattern(t *testing.T) {
	_, err := Compile("")
	if !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("Compile(\"\"): got %v, want ErrEmptyPattern", err)
	}
}

func TestCompileUnbalancedParens(t *testing.T) {
	for _, pattern := range []string{"(a", "a)", "((a)"} {
		_, err := Compile(pattern)
		if !errors.Is(err, ErrUnbalancedParens) {
			t.Errorf("Compile(%q): got %v, want ErrUnbalancedParens", pattern, err)
		}
	}
}

func TestCompileReservedSymbol(t *testing.T) {
	_, err := Compile("a#b")
	if !errors.Is(err, ErrReservedSymbol) {
		t.Errorf("Compile(\"a#b\"): got %v, want ErrReservedSymbol", err)
	}
}

func TestCompileErrorMessage(t *testing.T) {
	_, err := Compile("(a")
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompileError, got %T", err)
	}
	if ce.Pattern != "(a" {
		t.Errorf("CompileError.Pattern = %q, want %q", ce.Pattern, "(a")
	}
}

func TestThompsonClosureSingleState(t *testing.T) {
	e, err := Compile("a*")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	closure := e.Closure(e.Start())
	if !e.IsAccepting(e.Start()) {
		t.Error("the closure state for a* must be accepting: zero repetitions is the empty string")
	}
	if len(closure) == 0 {
		t.Error("closure of start state must be non-empty")
	}
}

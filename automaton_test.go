package automaton

import (
	"errors"
	"testing"
)

func TestCompileAcceptsAndRejects(t *testing.T) {
	cases := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a+b", []string{"a", "b"}, []string{"", "ab", "c"}},
		{"ab", []string{"ab"}, []string{"", "a", "b"}},
		{"a*", []string{"", "a", "aaa"}, []string{"b"}},
		{"a*b*", []string{"", "a", "b", "aabb"}, []string{"ba"}},
		{"(a+b)(c+d)", []string{"ac", "ad", "bc", "bd"}, []string{"a", "cd"}},
	}

	for _, c := range cases {
		d, err := Compile(c.pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.pattern, err)
		}
		for _, w := range c.accept {
			if !d.Accepts([]byte(w)) {
				t.Errorf("Compile(%q).Accepts(%q) = false, want true", c.pattern, w)
			}
		}
		for _, w := range c.reject {
			if d.Accepts([]byte(w)) {
				t.Errorf("Compile(%q).Accepts(%q) = true, want false", c.pattern, w)
			}
		}
	}
}

func TestCompilePropagatesRegexError(t *testing.T) {
	_, err := Compile("")
	if err == nil {
		t.Fatal("expected an error for an empty pattern")
	}
}

func TestMustCompilePanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustCompile to panic on a malformed pattern")
		}
	}()
	MustCompile("(a")
}

func TestCompileWithConfigNoPostProcessing(t *testing.T) {
	d, err := CompileWithConfig("a*b*", Config{})
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	if !d.Accepts([]byte("aabb")) || d.Accepts([]byte("ba")) {
		t.Error("unminimized/unreordered DFA must still preserve the language")
	}
}

func TestCompileWithConfigMaxStatesExceeded(t *testing.T) {
	_, err := CompileWithConfig("(a+b)(c+d)(e+f)", Config{MaxStates: 1})
	var limitErr *StateLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected *StateLimitError, got %v", err)
	}
}

func TestDefaultConfigMinimizesAndReorders(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Minimize || !cfg.Reorder {
		t.Error("DefaultConfig must enable both Minimize and Reorder")
	}
}

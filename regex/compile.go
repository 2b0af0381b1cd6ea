package regex

import (
	"github.com/coregx/automaton/enfa"
	"github.com/coregx/automaton/internal/conv"
)

// nfaPart is the (start, accept) pair Thompson construction threads through
// its stack as it walks the postfix token stream.
type nfaPart struct {
	start, accept enfa.StateID
}

// idAllocator hands out a monotonically increasing sequence of fresh
// states, as Thompson construction requires.
type idAllocator struct {
	next int
}

func (a *idAllocator) fresh() enfa.StateID {
	id := enfa.StateID(conv.IntToUint32(a.next))
	a.next++
	return id
}

// builder accumulates the ε-NFA table being constructed, creating a
// state's TransRecord lazily on first write.
type builder struct {
	table enfa.Table
}

func newBuilder() *builder {
	return &builder{table: make(enfa.Table)}
}

func (b *builder) addEpsilon(from, to enfa.StateID) {
	rec := b.table[from]
	if rec.Epsilon == nil {
		rec.Epsilon = make(map[enfa.StateID]struct{})
	}
	rec.Epsilon[to] = struct{}{}
	b.table[from] = rec
}

func (b *builder) addTerminal(from enfa.StateID, sym byte, to enfa.StateID) {
	rec := b.table[from]
	if rec.Terminal == nil {
		rec.Terminal = make(map[byte]map[enfa.StateID]struct{})
	}
	if rec.Terminal[sym] == nil {
		rec.Terminal[sym] = make(map[enfa.StateID]struct{})
	}
	rec.Terminal[sym][to] = struct{}{}
	b.table[from] = rec
}

// thompson walks the postfix token stream, maintaining a stack of
// (start, accept) pairs:
//
//   - literal c: allocate s, f; add s --c--> f; push (s, f).
//   - '*': pop (s, f); allocate n; add n -ε-> s and f -ε-> n; push (n, n).
//     The closure state doubles as both start and accept: zero iterations
//     are handled by n being the accept itself, and the inner language is
//     still reachable via n -ε-> s.
//   - '#': pop (s2, f2) then (s1, f1); add f1 -ε-> s2; push (s1, f2).
//   - '+': pop b then a; allocate s, f; add s -ε-> a.start, s -ε-> b.start,
//     a.accept -ε-> f, b.accept -ε-> f; push (s, f).
//
// After the stream is consumed, the stack must hold exactly one pair; any
// other count is a malformed expression.
func thompson(postfix string) (enfa.Table, enfa.StateID, enfa.StateID, error) {
	b := newBuilder()
	ids := &idAllocator{}
	var stack []nfaPart

	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		switch c {
		case opClosure:
			if len(stack) < 1 {
				return nil, 0, 0, ErrMalformedOperators
			}
			part := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n := ids.fresh()
			b.addEpsilon(n, part.start)
			b.addEpsilon(part.accept, n)
			stack = append(stack, nfaPart{start: n, accept: n})

		case opConcat:
			if len(stack) < 2 {
				return nil, 0, 0, ErrMalformedOperators
			}
			second := stack[len(stack)-1]
			first := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			b.addEpsilon(first.accept, second.start)
			stack = append(stack, nfaPart{start: first.start, accept: second.accept})

		case opAlt:
			if len(stack) < 2 {
				return nil, 0, 0, ErrMalformedOperators
			}
			b2 := stack[len(stack)-1]
			a2 := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			s := ids.fresh()
			f := ids.fresh()
			b.addEpsilon(s, a2.start)
			b.addEpsilon(s, b2.start)
			b.addEpsilon(a2.accept, f)
			b.addEpsilon(b2.accept, f)
			stack = append(stack, nfaPart{start: s, accept: f})

		default:
			s := ids.fresh()
			f := ids.fresh()
			b.addTerminal(s, c, f)
			stack = append(stack, nfaPart{start: s, accept: f})
		}
	}

	if len(stack) != 1 {
		return nil, 0, 0, ErrMalformedOperators
	}
	return b.table, stack[0].start, stack[0].accept, nil
}

// Compile compiles a pattern in the grammar
//
//	expr    = term   ("+" term)*
//	term    = factor ( factor )*        -- implicit concatenation
//	factor  = atom "*"?
//	atom    = symbol | "(" expr ")"
//	symbol  = any byte not in {*,+,#,(,)}
//
// into an ε-NFA via shunting-yard (with implicit concatenation inserted
// first) and Thompson construction. An empty pattern, unbalanced
// parentheses, or an operator arrangement that doesn't leave exactly one
// (start, accept) pair on the Thompson stack is a malformed-pattern error;
// the compiled automaton in that case is not usable.
func Compile(pattern string) (*enfa.ENFA, error) {
	if len(pattern) == 0 {
		return nil, &CompileError{Pattern: pattern, Err: ErrEmptyPattern}
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == opConcat {
			return nil, &CompileError{Pattern: pattern, Err: ErrReservedSymbol}
		}
	}

	postfix := toPostfix(insertConcat(pattern))
	if postfix == "" {
		return nil, &CompileError{Pattern: pattern, Err: ErrUnbalancedParens}
	}

	table, start, accept, err := thompson(postfix)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	return enfa.New(table, start, map[enfa.StateID]struct{}{accept: {}}), nil
}

// ToPostfix exposes the shunting-yard stage on its own, for callers (and
// tests) that want the intermediate postfix form without a full compile —
// e.g. to check the compiler's precedence handling directly.
func ToPostfix(pattern string) string {
	return toPostfix(insertConcat(pattern))
}

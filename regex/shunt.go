package regex

import "strings"

// Operator bytes. '#' is the implicit concatenation operator: the compiler
// inserts it, a caller's pattern may never contain it directly.
const (
	opClosure byte = '*'
	opConcat  byte = '#'
	opAlt     byte = '+'
	lparen    byte = '('
	rparen    byte = ')'
)

// isOperator reports whether b is one of the five reserved operator bytes.
func isOperator(b byte) bool {
	switch b {
	case opClosure, opConcat, opAlt, lparen, rparen:
		return true
	}
	return false
}

// insertConcat scans pattern and inserts the explicit concatenation byte
// '#' between adjacent tokens wherever the grammar's implicit
// concatenation rule requires it:
//
//	literal literal -> yes       literal (     -> yes
//	)       literal  -> yes      )       (     -> yes
//	*       literal  -> yes      *       (     -> yes
//	all other adjacent pairs     -> no
func insertConcat(pattern string) string {
	if len(pattern) == 0 {
		return pattern
	}

	var sb strings.Builder
	sb.WriteByte(pattern[0])

	for i := 1; i < len(pattern); i++ {
		left, right := pattern[i-1], pattern[i]
		if needsConcat(left, right) {
			sb.WriteByte(opConcat)
		}
		sb.WriteByte(right)
	}
	return sb.String()
}

func needsConcat(left, right byte) bool {
	leftLiteral := !isOperator(left)
	rightLiteral := !isOperator(right)

	switch {
	case leftLiteral && rightLiteral:
		return true
	case leftLiteral && right == lparen:
		return true
	case left == rparen && rightLiteral:
		return true
	case left == rparen && right == lparen:
		return true
	case left == opClosure && rightLiteral:
		return true
	case left == opClosure && right == lparen:
		return true
	}
	return false
}

// toPostfix runs Dijkstra's shunting-yard over an expression that has
// already had explicit '#' inserted, producing a postfix token stream.
// Operator precedence, highest first: '*' (unary postfix), '#' (binary,
// left-assoc), '+' (binary, left-assoc). A mismatched ')' or a '(' still on
// the stack at the end of the scan is a syntax error: toPostfix returns ""
// in either case, matching the spec's convention that the caller treats an
// empty postfix stream as a zero-state automaton rather than a Go error —
// Compile is the layer that turns that into an actual error.
func toPostfix(expr string) string {
	var output strings.Builder
	var stack []byte

	popWhile := func(keepPopping func(byte) bool) {
		for len(stack) > 0 && keepPopping(stack[len(stack)-1]) {
			output.WriteByte(stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		}
	}

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch c {
		case lparen:
			stack = append(stack, c)

		case rparen:
			popWhile(func(b byte) bool { return b != lparen })
			if len(stack) == 0 || stack[len(stack)-1] != lparen {
				return ""
			}
			stack = stack[:len(stack)-1]

		case opClosure:
			if len(stack) == 0 || stack[len(stack)-1] == opAlt || stack[len(stack)-1] == opConcat {
				stack = append(stack, c)
			} else {
				popWhile(func(b byte) bool { return b == opClosure })
				stack = append(stack, c)
			}

		case opConcat:
			if len(stack) == 0 || stack[len(stack)-1] == opAlt {
				stack = append(stack, c)
			} else {
				popWhile(func(b byte) bool { return b == opClosure || b == opConcat })
				stack = append(stack, c)
			}

		case opAlt:
			if len(stack) == 0 {
				stack = append(stack, c)
			} else {
				popWhile(func(b byte) bool { return b == opClosure || b == opAlt || b == opConcat })
				stack = append(stack, c)
			}

		default:
			output.WriteByte(c)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top == lparen {
			return ""
		}
		output.WriteByte(top)
		stack = stack[:len(stack)-1]
	}

	return output.String()
}

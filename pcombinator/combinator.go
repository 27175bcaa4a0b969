// Package pcombinator provides small generic parser combinators over byte
// slices, for auxiliary parsing that doesn't warrant the full VT state
// machine; no other package in this module imports it. Kept
// stdlib-only and dependency-free: this layer is self-contained and
// trivial enough to re-implement that pulling in an ecosystem parser
// combinator library would be adding a dependency for no real leverage.
package pcombinator

// Parser consumes a prefix of input and returns the parsed value, the
// remaining input, and whether the parse succeeded.
type Parser[T any] func(input []byte) (T, []byte, bool)

// Satisfy succeeds on the first byte of input if pred accepts it.
func Satisfy(pred func(b byte) bool) Parser[byte] {
	return func(input []byte) (byte, []byte, bool) {
		if len(input) == 0 || !pred(input[0]) {
			return 0, input, false
		}
		return input[0], input[1:], true
	}
}

// Byte succeeds if the next input byte equals b.
func Byte(b byte) Parser[byte] {
	return Satisfy(func(c byte) bool { return c == b })
}

// Literal succeeds if input begins with lit, consuming it whole.
func Literal(lit []byte) Parser[[]byte] {
	return func(input []byte) ([]byte, []byte, bool) {
		if len(input) < len(lit) {
			return nil, input, false
		}
		for i, b := range lit {
			if input[i] != b {
				return nil, input, false
			}
		}
		return lit, input[len(lit):], true
	}
}

// Seq2 runs a then b in sequence, succeeding only if both do.
func Seq2[A, B any](a Parser[A], b Parser[B]) Parser[struct {
	A A
	B B
}] {
	type pair = struct {
		A A
		B B
	}
	return func(input []byte) (pair, []byte, bool) {
		va, rest, ok := a(input)
		if !ok {
			return pair{}, input, false
		}
		vb, rest2, ok := b(rest)
		if !ok {
			return pair{}, input, false
		}
		return pair{A: va, B: vb}, rest2, true
	}
}

// Seq3 runs a, b, then c in sequence, succeeding only if all three do.
func Seq3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[struct {
	A A
	B B
	C C
}] {
	type triple = struct {
		A A
		B B
		C C
	}
	return func(input []byte) (triple, []byte, bool) {
		va, rest, ok := a(input)
		if !ok {
			return triple{}, input, false
		}
		vb, rest2, ok := b(rest)
		if !ok {
			return triple{}, input, false
		}
		vc, rest3, ok := c(rest2)
		if !ok {
			return triple{}, input, false
		}
		return triple{A: va, B: vb, C: vc}, rest3, true
	}
}

// Alt tries each parser in order, returning the first success.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(input []byte) (T, []byte, bool) {
		for _, p := range parsers {
			if v, rest, ok := p(input); ok {
				return v, rest, true
			}
		}
		var zero T
		return zero, input, false
	}
}

// Map transforms a successful parse's value with f, leaving failures
// untouched.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input []byte) (B, []byte, bool) {
		v, rest, ok := p(input)
		if !ok {
			var zero B
			return zero, input, false
		}
		return f(v), rest, true
	}
}

// Count runs p exactly n times, collecting results, failing if any
// repetition fails.
func Count[T any](p Parser[T], n int) Parser[[]T] {
	return func(input []byte) ([]T, []byte, bool) {
		out := make([]T, 0, n)
		rest := input
		for i := 0; i < n; i++ {
			v, r, ok := p(rest)
			if !ok {
				return nil, input, false
			}
			out = append(out, v)
			rest = r
		}
		return out, rest, true
	}
}

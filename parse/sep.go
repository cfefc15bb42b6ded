package parse

import "strings"

// Separator recognizes zero or more ignorable bytes at the start of the
// cursor and returns the cursor after them. A separator never fails and
// never produces a value, so wrapping a parser with one can only shift
// the cursor forward, never turn a success into a failure.
type Separator func(Cursor) Cursor

// SeparatorFunc builds a separator that consumes leading bytes for which
// pred returns true.
func SeparatorFunc(pred func(byte) bool) Separator {
	return func(in Cursor) Cursor {
		rest := in.Rest()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		return in.Advance(n)
	}
}

// SeparatorBytes builds a separator that consumes leading bytes
// contained in set.
func SeparatorBytes(set string) Separator {
	return SeparatorFunc(func(b byte) bool {
		return strings.IndexByte(set, b) >= 0
	})
}

// Whitespace consumes spaces, tabs, carriage returns and newlines.
var Whitespace = SeparatorBytes(" \t\r\n")

// Wrap runs sep, then p on the shifted cursor. This is the primitive
// every composite combinator in this package splices between adjacent
// sub-parsers.
func Wrap[O any](sep Separator, p Parser[O]) Parser[O] {
	return func(in Cursor) (Cursor, O, error) {
		return p(sep(in))
	}
}

// Padded is the top-level entry point for a separator-aware grammar:
// it consumes a leading separator, runs p, and on success consumes the
// trailing separator as well.
func Padded[O any](sep Separator, p Parser[O]) Parser[O] {
	return func(in Cursor) (Cursor, O, error) {
		rest, out, err := p(sep(in))
		if err != nil {
			var zero O
			return in, zero, err
		}
		return sep(rest), out, nil
	}
}

// Package parse provides parser combinators that automatically consume
// separator input (typically whitespace) between tokens.
//
// Every combinator constructor takes a Separator and splices it between
// its sub-parsers, so a grammar author never inserts separator-consumption
// calls by hand. The combinators preserve the three-outcome result model
// of the parsers they compose: success, recoverable mismatch, and
// incomplete/fatal (see Error).
package parse

// Parser consumes a prefix of the input described by in and returns the
// remaining cursor together with the produced value.
//
// On any non-nil error the returned cursor must be ignored; callers retry
// alternatives against the cursor they supplied, never against one a
// failed attempt may have advanced. Parsers are pure: no shared state,
// no side effects, safe to call concurrently on different cursors.
type Parser[O any] func(in Cursor) (Cursor, O, error)

// Cursor is an immutable view over the unconsumed remainder of an input
// buffer. Advancing produces a new value; the original stays valid so
// failed parse attempts can be retried from it.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) Cursor {
	return Cursor{buf: data}
}

// Rest returns the unconsumed input. Callers must not modify it.
func (c Cursor) Rest() []byte {
	return c.buf[c.pos:]
}

// Pos returns the offset from the start of the original input.
func (c Cursor) Pos() int {
	return c.pos
}

// Len returns the number of unconsumed bytes.
func (c Cursor) Len() int {
	return len(c.buf) - c.pos
}

// EOF reports whether the cursor has reached the end of the buffer.
func (c Cursor) EOF() bool {
	return c.pos >= len(c.buf)
}

// Advance returns a cursor moved forward by n bytes.
func (c Cursor) Advance(n int) Cursor {
	if n > c.Len() {
		n = c.Len()
	}
	return Cursor{buf: c.buf, pos: c.pos + n}
}

func (c Cursor) String() string {
	const max = 16
	rest := c.Rest()
	if len(rest) > max {
		return string(rest[:max]) + "…"
	}
	return string(rest)
}

// Package token provides primitive token parsers: fixed-string and
// fixed-length matches, predicate-driven spans and numeric literals.
//
// All primitives use streaming semantics: when the buffered input is
// too short to decide, they report an incomplete outcome with a hint of
// how many more bytes are needed. Wrap them with parse.Complete when
// the whole input is known to be buffered.
package token

import (
	"strconv"
	"strings"

	"github.com/dhamidi/gnaw/parse"
)

// Tag matches the exact string s.
func Tag(s string) parse.Parser[[]byte] {
	return func(in parse.Cursor) (parse.Cursor, []byte, error) {
		rest := in.Rest()
		n := min(len(rest), len(s))
		if string(rest[:n]) != s[:n] {
			return in, nil, parse.NewRecoverable(parse.KindTag, in.Pos())
		}
		if n < len(s) {
			return in, nil, parse.NewIncomplete(in.Pos(), len(s)-n)
		}
		return in.Advance(n), rest[:n], nil
	}
}

// Take matches exactly n bytes, whatever they are.
func Take(n int) parse.Parser[[]byte] {
	return func(in parse.Cursor) (parse.Cursor, []byte, error) {
		if in.Len() < n {
			return in, nil, parse.NewIncomplete(in.Pos(), n-in.Len())
		}
		return in.Advance(n), in.Rest()[:n], nil
	}
}

// Char matches the single byte c.
func Char(c byte) parse.Parser[byte] {
	return func(in parse.Cursor) (parse.Cursor, byte, error) {
		if in.EOF() {
			return in, 0, parse.NewIncomplete(in.Pos(), 1)
		}
		if in.Rest()[0] != c {
			return in, 0, parse.NewRecoverable(parse.KindChar, in.Pos())
		}
		return in.Advance(1), c, nil
	}
}

// OneOf matches a single byte contained in set.
func OneOf(set string) parse.Parser[byte] {
	return func(in parse.Cursor) (parse.Cursor, byte, error) {
		if in.EOF() {
			return in, 0, parse.NewIncomplete(in.Pos(), 1)
		}
		b := in.Rest()[0]
		if strings.IndexByte(set, b) < 0 {
			return in, 0, parse.NewRecoverable(parse.KindOneOf, in.Pos())
		}
		return in.Advance(1), b, nil
	}
}

// TakeWhile matches the longest, possibly empty, prefix of bytes
// accepted by pred. Reaching the end of the buffer is reported as
// incomplete, since more accepted bytes could still arrive.
func TakeWhile(pred func(byte) bool) parse.Parser[[]byte] {
	return func(in parse.Cursor) (parse.Cursor, []byte, error) {
		rest := in.Rest()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		if n == len(rest) {
			return in, nil, parse.NewIncomplete(in.Pos()+n, 1)
		}
		return in.Advance(n), rest[:n], nil
	}
}

// TakeWhile1 is TakeWhile requiring at least one accepted byte.
func TakeWhile1(pred func(byte) bool) parse.Parser[[]byte] {
	span := TakeWhile(pred)
	return func(in parse.Cursor) (parse.Cursor, []byte, error) {
		rest, out, err := span(in)
		if err != nil {
			return in, nil, err
		}
		if len(out) == 0 {
			return in, nil, parse.NewRecoverable(parse.KindTakeWhile, in.Pos())
		}
		return rest, out, nil
	}
}

// Span is the non-streaming counterpart of TakeWhile: the end of the
// buffer ends the span. Only sound when the whole input is buffered.
func Span(pred func(byte) bool) parse.Parser[[]byte] {
	return func(in parse.Cursor) (parse.Cursor, []byte, error) {
		rest := in.Rest()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		return in.Advance(n), rest[:n], nil
	}
}

// Span1 is Span requiring at least one accepted byte.
func Span1(pred func(byte) bool) parse.Parser[[]byte] {
	span := Span(pred)
	return func(in parse.Cursor) (parse.Cursor, []byte, error) {
		rest, out, err := span(in)
		if err != nil {
			return in, nil, err
		}
		if len(out) == 0 {
			return in, nil, parse.NewRecoverable(parse.KindTakeWhile, in.Pos())
		}
		return rest, out, nil
	}
}

// Uint matches a decimal unsigned integer literal. A literal too large
// for uint64 is a fatal error: the token was recognized, its value is
// simply unrepresentable, and no alternative should paper over that.
func Uint() parse.Parser[uint64] {
	digits := TakeWhile1(func(b byte) bool { return b >= '0' && b <= '9' })
	return func(in parse.Cursor) (parse.Cursor, uint64, error) {
		rest, span, err := digits(in)
		if err != nil {
			if parse.IsRecoverable(err) {
				return in, 0, parse.NewRecoverable(parse.KindUint, in.Pos())
			}
			return in, 0, err
		}
		v, perr := strconv.ParseUint(string(span), 10, 64)
		if perr != nil {
			return in, 0, parse.NewFatal(parse.KindUint, in.Pos())
		}
		return rest, v, nil
	}
}

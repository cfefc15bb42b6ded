package parse

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Class -output=class_string.go
//go:generate go tool stringer -type=Kind -output=kind_string.go

// Class partitions parse errors by how enclosing combinators may react
// to them.
type Class int

const (
	// Recoverable means this alternative did not match; a sibling may
	// still be tried. It is the only class alternation, permutation and
	// repetition are allowed to absorb.
	Recoverable Class = iota

	// Incomplete means the buffered input is too short to decide. It
	// propagates to the outermost caller untouched so the driver can
	// append more bytes and re-invoke the parser.
	Incomplete

	// Fatal means the parse failed unconditionally; no sibling is tried
	// and no enclosing combinator may substitute an alternative.
	Fatal
)

// Kind identifies which parser or combinator kind produced an error.
type Kind int

const (
	KindTag Kind = iota
	KindTake
	KindTakeWhile
	KindChar
	KindOneOf
	KindUint
	KindSeq
	KindAlt
	KindPermutation
	KindSwitch
	KindMany0
	KindMany1
	KindSeparatedList
)

// Error is the single error type all parsers in this module return.
// Combinators only ever add context to Incomplete and Fatal errors
// (wrapping the original as Cause, preserving Class); they never
// downgrade them to Recoverable.
type Error struct {
	Class  Class
	Kind   Kind
	Pos    int
	Needed int   // Incomplete only: minimum additional bytes, 0 = unknown
	Cause  error // nested cause for diagnostic chains
}

func (e *Error) Error() string {
	var msg string
	switch e.Class {
	case Incomplete:
		if e.Needed > 0 {
			msg = fmt.Sprintf("incomplete input at offset %d: need at least %d more bytes", e.Pos, e.Needed)
		} else {
			msg = fmt.Sprintf("incomplete input at offset %d", e.Pos)
		}
	case Fatal:
		msg = fmt.Sprintf("%v failed at offset %d", e.Kind, e.Pos)
	default:
		msg = fmt.Sprintf("%v did not match at offset %d", e.Kind, e.Pos)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewRecoverable returns a Recoverable error for the given combinator
// kind at pos.
func NewRecoverable(kind Kind, pos int) *Error {
	return &Error{Class: Recoverable, Kind: kind, Pos: pos}
}

// NewFatal returns a Fatal error for the given combinator kind at pos.
func NewFatal(kind Kind, pos int) *Error {
	return &Error{Class: Fatal, Kind: kind, Pos: pos}
}

// NewIncomplete returns an Incomplete error at pos. needed is the
// minimum number of additional bytes required, or 0 when the amount is
// not determinable.
func NewIncomplete(pos, needed int) *Error {
	return &Error{Class: Incomplete, Pos: pos, Needed: needed}
}

// IsRecoverable reports whether err is a Recoverable parse error.
func IsRecoverable(err error) bool {
	e := asError(err)
	return e != nil && e.Class == Recoverable
}

// IsIncomplete reports whether err is an Incomplete parse error.
func IsIncomplete(err error) bool {
	e := asError(err)
	return e != nil && e.Class == Incomplete
}

// IsFatal reports whether err is a parse error that no alternative may
// recover from. Unknown error types count as fatal.
func IsFatal(err error) bool {
	e := asError(err)
	if e == nil {
		return err != nil
	}
	return e.Class == Fatal
}

func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// retag wraps err in a new error of the given kind at pos, preserving
// the class. Incomplete errors pass through unchanged so the needed
// hint survives to the outermost caller.
func retag(err error, kind Kind, pos int) error {
	e := asError(err)
	if e == nil || e.Class == Incomplete {
		return err
	}
	return &Error{Class: e.Class, Kind: kind, Pos: pos, Cause: err}
}

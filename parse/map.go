package parse

// Map transforms the output of p with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Cursor) (Cursor, B, error) {
		rest, out, err := p(in)
		if err != nil {
			var zero B
			return in, zero, err
		}
		return rest, f(out), nil
	}
}

// Opt makes p optional: a recoverable mismatch becomes a success with a
// nil result and no consumption. Incomplete and fatal errors still
// propagate.
func Opt[O any](p Parser[O]) Parser[*O] {
	return func(in Cursor) (Cursor, *O, error) {
		rest, out, err := p(in)
		if err != nil {
			if IsRecoverable(err) {
				return in, nil, nil
			}
			return in, nil, err
		}
		return rest, &out, nil
	}
}

// Complete adapts a streaming parser for fully buffered input: an
// Incomplete outcome is reinterpreted as a recoverable mismatch, since
// no further bytes will ever arrive. The original error stays available
// as the cause.
func Complete[O any](p Parser[O]) Parser[O] {
	return func(in Cursor) (Cursor, O, error) {
		rest, out, err := p(in)
		if err != nil && IsIncomplete(err) {
			var zero O
			e := asError(err)
			return in, zero, &Error{Class: Recoverable, Kind: e.Kind, Pos: e.Pos, Cause: err}
		}
		return rest, out, err
	}
}

// Erase drops the static output type of p. Used by combinators that
// manage heterogeneous sub-parsers through a common core, such as
// permutation.
func Erase[O any](p Parser[O]) Parser[any] {
	return func(in Cursor) (Cursor, any, error) {
		rest, out, err := p(in)
		if err != nil {
			return in, nil, err
		}
		return rest, out, nil
	}
}

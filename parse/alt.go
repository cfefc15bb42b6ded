package parse

// Alt tries each branch in declaration order against the same starting
// cursor, consuming the separator before each attempt. The first
// success wins. Incomplete and fatal outcomes short-circuit the
// remaining branches; a failed branch commits nothing, so the next one
// starts from the original cursor. When every branch misses, the result
// is a recoverable error tagged at the alternation's starting position,
// with the last branch failure as its cause.
func Alt[O any](sep Separator, branches ...Parser[O]) Parser[O] {
	return func(in Cursor) (Cursor, O, error) {
		var zero O
		var last error
		for _, branch := range branches {
			rest, out, err := branch(sep(in))
			if err == nil {
				return rest, out, nil
			}
			if !IsRecoverable(err) {
				return in, zero, err
			}
			last = err
		}
		return in, zero, &Error{Class: Recoverable, Kind: KindAlt, Pos: in.Pos(), Cause: last}
	}
}

// AltComplete is the non-streaming variant of Alt: each branch runs
// under Complete, so a branch reporting Incomplete is skipped in favor
// of the next one instead of suspending the whole alternation. Callers
// must guarantee the entire input is already buffered; with a partial
// buffer this variant can commit to the wrong branch.
func AltComplete[O any](sep Separator, branches ...Parser[O]) Parser[O] {
	completed := make([]Parser[O], len(branches))
	for i, branch := range branches {
		completed[i] = Complete(branch)
	}
	return Alt(sep, completed...)
}

package parse

// Many0 applies the separator-wrapped element parser until it misses
// recoverably, collecting every output. Zero matches succeed with an
// empty result. Incomplete and fatal outcomes mid-loop propagate
// immediately.
//
// An element that succeeds without consuming input is rejected with a
// fatal error: the parser contract permits zero-consumption success,
// so termination has to be enforced here.
func Many0[O any](sep Separator, element Parser[O]) Parser[[]O] {
	return func(in Cursor) (Cursor, []O, error) {
		outs := []O{}
		cur := in
		for {
			start := sep(cur)
			rest, out, err := element(start)
			if err != nil {
				if IsRecoverable(err) {
					return cur, outs, nil
				}
				return in, nil, err
			}
			if rest.Pos() == start.Pos() {
				return in, nil, NewFatal(KindMany0, start.Pos())
			}
			outs = append(outs, out)
			cur = rest
		}
	}
}

// Many1 is Many0 requiring at least one match; otherwise it reports a
// recoverable error wrapping the first element's failure.
func Many1[O any](sep Separator, element Parser[O]) Parser[[]O] {
	return func(in Cursor) (Cursor, []O, error) {
		var outs []O
		cur := in
		for {
			start := sep(cur)
			rest, out, err := element(start)
			if err != nil {
				if !IsRecoverable(err) {
					return in, nil, err
				}
				if len(outs) == 0 {
					return in, nil, &Error{Class: Recoverable, Kind: KindMany1, Pos: in.Pos(), Cause: err}
				}
				return cur, outs, nil
			}
			if rest.Pos() == start.Pos() {
				return in, nil, NewFatal(KindMany1, start.Pos())
			}
			outs = append(outs, out)
			cur = rest
		}
	}
}

// SeparatedList0 matches element, then any number of delimiter-element
// pairs, all separator-wrapped. It stops cleanly the moment the
// delimiter or the element after it misses recoverably, backing the
// cursor up to just after the last complete element so a trailing
// delimiter is never consumed. A first-element miss yields an empty
// list with no consumption.
func SeparatedList0[D, O any](sep Separator, delimiter Parser[D], element Parser[O]) Parser[[]O] {
	return func(in Cursor) (Cursor, []O, error) {
		outs := []O{}
		start := sep(in)
		rest, out, err := element(start)
		if err != nil {
			if IsRecoverable(err) {
				return in, outs, nil
			}
			return in, nil, err
		}
		if rest.Pos() == start.Pos() {
			return in, nil, NewFatal(KindSeparatedList, start.Pos())
		}
		outs = append(outs, out)
		cur := rest
		for {
			mark := sep(cur)
			after, _, err := delimiter(mark)
			if err != nil {
				if IsRecoverable(err) {
					return cur, outs, nil
				}
				return in, nil, err
			}
			next, out, err := element(sep(after))
			if err != nil {
				if IsRecoverable(err) {
					return cur, outs, nil
				}
				return in, nil, err
			}
			if next.Pos() == mark.Pos() {
				return in, nil, NewFatal(KindSeparatedList, next.Pos())
			}
			outs = append(outs, out)
			cur = next
		}
	}
}

// SeparatedList1 is SeparatedList0 requiring at least one element.
func SeparatedList1[D, O any](sep Separator, delimiter Parser[D], element Parser[O]) Parser[[]O] {
	list := SeparatedList0(sep, delimiter, element)
	return func(in Cursor) (Cursor, []O, error) {
		rest, outs, err := list(in)
		if err == nil && len(outs) == 0 {
			return in, nil, NewRecoverable(KindSeparatedList, in.Pos())
		}
		return rest, outs, err
	}
}

package parse

// PermutationOf matches each parser exactly once, regardless of the
// order their tokens appear in the input, with separator insertion
// between matched tokens. The output is ordered by declaration, not by
// match order.
//
// The matcher repeats full passes over the still-unfilled slots in
// declaration order. A successful match fills its slot, advances the
// cursor and restarts the pass from the first unfilled slot, since
// fresh input may make an earlier slot eligible again. A recoverable
// miss moves on to the next slot; anything else aborts the whole
// permutation. When a pass fills nothing and slots remain, the result
// is a recoverable error at the starting position wrapping the last
// recoverable sub-failure.
func PermutationOf[O any](sep Separator, parsers ...Parser[O]) Parser[[]O] {
	return func(in Cursor) (Cursor, []O, error) {
		slots := make([]O, len(parsers))
		filled := make([]bool, len(parsers))
		unfilled := len(parsers)
		cur := in
		var last error
		for unfilled > 0 {
			progress := false
			for i, p := range parsers {
				if filled[i] {
					continue
				}
				rest, out, err := p(sep(cur))
				if err == nil {
					slots[i] = out
					filled[i] = true
					unfilled--
					cur = rest
					progress = true
					break
				}
				if !IsRecoverable(err) {
					return in, nil, err
				}
				last = err
			}
			if !progress {
				break
			}
		}
		if unfilled > 0 {
			return in, nil, &Error{Class: Recoverable, Kind: KindPermutation, Pos: in.Pos(), Cause: last}
		}
		return cur, slots, nil
	}
}

// Permutation2 matches both parsers exactly once in either input order.
func Permutation2[A, B any](sep Separator, pa Parser[A], pb Parser[B]) Parser[Tuple2[A, B]] {
	core := PermutationOf(sep, Erase(pa), Erase(pb))
	return Map(core, func(vs []any) Tuple2[A, B] {
		return Tuple2[A, B]{vs[0].(A), vs[1].(B)}
	})
}

// Permutation3 matches all three parsers exactly once in any input
// order.
func Permutation3[A, B, C any](sep Separator, pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Tuple3[A, B, C]] {
	core := PermutationOf(sep, Erase(pa), Erase(pb), Erase(pc))
	return Map(core, func(vs []any) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{vs[0].(A), vs[1].(B), vs[2].(C)}
	})
}

// Permutation4 matches all four parsers exactly once in any input
// order.
func Permutation4[A, B, C, D any](sep Separator, pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Tuple4[A, B, C, D]] {
	core := PermutationOf(sep, Erase(pa), Erase(pb), Erase(pc), Erase(pd))
	return Map(core, func(vs []any) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D)}
	})
}

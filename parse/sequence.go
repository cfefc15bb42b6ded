package parse

// Tuple2 through Tuple5 hold the outputs of fixed-arity sequences in
// declaration order.
type Tuple2[A, B any] struct {
	A A
	B B
}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// Seq2 runs two parsers in order, consuming the separator before each
// one. The fold aborts on the first non-success outcome, which
// propagates unchanged.
func Seq2[A, B any](sep Separator, pa Parser[A], pb Parser[B]) Parser[Tuple2[A, B]] {
	return func(in Cursor) (Cursor, Tuple2[A, B], error) {
		var out Tuple2[A, B]
		rest, a, err := pa(sep(in))
		if err != nil {
			return in, out, err
		}
		rest, b, err := pb(sep(rest))
		if err != nil {
			return in, out, err
		}
		return rest, Tuple2[A, B]{a, b}, nil
	}
}

// Seq3 runs three parsers in order with separator insertion between
// steps.
func Seq3[A, B, C any](sep Separator, pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Tuple3[A, B, C]] {
	return func(in Cursor) (Cursor, Tuple3[A, B, C], error) {
		var out Tuple3[A, B, C]
		rest, a, err := pa(sep(in))
		if err != nil {
			return in, out, err
		}
		rest, b, err := pb(sep(rest))
		if err != nil {
			return in, out, err
		}
		rest, c, err := pc(sep(rest))
		if err != nil {
			return in, out, err
		}
		return rest, Tuple3[A, B, C]{a, b, c}, nil
	}
}

// Seq4 runs four parsers in order with separator insertion between
// steps.
func Seq4[A, B, C, D any](sep Separator, pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Tuple4[A, B, C, D]] {
	return func(in Cursor) (Cursor, Tuple4[A, B, C, D], error) {
		var out Tuple4[A, B, C, D]
		rest, a, err := pa(sep(in))
		if err != nil {
			return in, out, err
		}
		rest, b, err := pb(sep(rest))
		if err != nil {
			return in, out, err
		}
		rest, c, err := pc(sep(rest))
		if err != nil {
			return in, out, err
		}
		rest, d, err := pd(sep(rest))
		if err != nil {
			return in, out, err
		}
		return rest, Tuple4[A, B, C, D]{a, b, c, d}, nil
	}
}

// Seq5 runs five parsers in order with separator insertion between
// steps.
func Seq5[A, B, C, D, E any](sep Separator, pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	return func(in Cursor) (Cursor, Tuple5[A, B, C, D, E], error) {
		var out Tuple5[A, B, C, D, E]
		rest, a, err := pa(sep(in))
		if err != nil {
			return in, out, err
		}
		rest, b, err := pb(sep(rest))
		if err != nil {
			return in, out, err
		}
		rest, c, err := pc(sep(rest))
		if err != nil {
			return in, out, err
		}
		rest, d, err := pd(sep(rest))
		if err != nil {
			return in, out, err
		}
		rest, e, err := pe(sep(rest))
		if err != nil {
			return in, out, err
		}
		return rest, Tuple5[A, B, C, D, E]{a, b, c, d, e}, nil
	}
}

// SeqOf runs any number of parsers with the same output type in order,
// with separator insertion between steps. Zero parsers succeed with an
// empty result and no consumption.
func SeqOf[O any](sep Separator, parsers ...Parser[O]) Parser[[]O] {
	return func(in Cursor) (Cursor, []O, error) {
		outs := make([]O, 0, len(parsers))
		rest := in
		for _, p := range parsers {
			next, out, err := p(sep(rest))
			if err != nil {
				return in, nil, err
			}
			outs = append(outs, out)
			rest = next
		}
		return rest, outs, nil
	}
}

// Pair is Seq2 under its traditional name.
func Pair[A, B any](sep Separator, pa Parser[A], pb Parser[B]) Parser[Tuple2[A, B]] {
	return Seq2(sep, pa, pb)
}

// Delimited matches open, inner and close in order and returns only the
// inner output.
func Delimited[A, B, C any](sep Separator, open Parser[A], inner Parser[B], closing Parser[C]) Parser[B] {
	return Map(Seq3(sep, open, inner, closing), func(t Tuple3[A, B, C]) B {
		return t.B
	})
}

// SeparatedPair matches first, mid and second in order, discarding the
// middle output.
func SeparatedPair[A, B, C any](sep Separator, first Parser[A], mid Parser[B], second Parser[C]) Parser[Tuple2[A, C]] {
	return Map(Seq3(sep, first, mid, second), func(t Tuple3[A, B, C]) Tuple2[A, C] {
		return Tuple2[A, C]{t.A, t.C}
	})
}

// Preceded matches first then second and returns only the second
// output.
func Preceded[A, B any](sep Separator, first Parser[A], second Parser[B]) Parser[B] {
	return Map(Seq2(sep, first, second), func(t Tuple2[A, B]) B {
		return t.B
	})
}

// Terminated matches first then second and returns only the first
// output.
func Terminated[A, B any](sep Separator, first Parser[A], second Parser[B]) Parser[A] {
	return Map(Seq2(sep, first, second), func(t Tuple2[A, B]) A {
		return t.A
	})
}

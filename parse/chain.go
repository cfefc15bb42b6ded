package parse

// Step is one element of a Do chain. It receives the separator of the
// enclosing chain, runs against in, and may bind its result into out.
type Step[T any] func(sep Separator, in Cursor, out *T) (Cursor, error)

// Field runs p and binds its result into the chain output via assign.
func Field[T, O any](p Parser[O], assign func(*T, O)) Step[T] {
	return func(sep Separator, in Cursor, out *T) (Cursor, error) {
		rest, v, err := p(sep(in))
		if err != nil {
			return in, err
		}
		assign(out, v)
		return rest, nil
	}
}

// Skip runs p and discards its result.
func Skip[T, O any](p Parser[O]) Step[T] {
	return func(sep Separator, in Cursor, out *T) (Cursor, error) {
		rest, _, err := p(sep(in))
		if err != nil {
			return in, err
		}
		return rest, nil
	}
}

// Do threads named intermediate results through a left-to-right chain
// of steps, consuming the separator before each one, and returns the
// accumulated output value. The first non-success outcome aborts the
// chain and propagates unchanged. A chain with no steps succeeds with
// the zero output and no consumption.
func Do[T any](sep Separator, steps ...Step[T]) Parser[T] {
	return func(in Cursor) (Cursor, T, error) {
		var out T
		rest := in
		for _, step := range steps {
			var err error
			rest, err = step(sep, rest, &out)
			if err != nil {
				var zero T
				return in, zero, err
			}
		}
		return rest, out, nil
	}
}

package parse

// Case is one (pattern, branch) arm of a Switch.
type Case[K comparable, O any] struct {
	match func(K) bool
	body  Parser[O]
}

// On matches when the selector value equals value.
func On[K comparable, O any](value K, body Parser[O]) Case[K, O] {
	return Case[K, O]{
		match: func(k K) bool { return k == value },
		body:  body,
	}
}

// OnMatch matches when pred accepts the selector value.
func OnMatch[K comparable, O any](pred func(K) bool, body Parser[O]) Case[K, O] {
	return Case[K, O]{match: pred, body: body}
}

// Otherwise matches any selector value. Place it last; cases after it
// are unreachable.
func Otherwise[K comparable, O any](body Parser[O]) Case[K, O] {
	return Case[K, O]{
		match: func(K) bool { return true },
		body:  body,
	}
}

// Switch runs the selector, then dispatches on its value to the first
// matching case in declaration order and runs that case's parser on the
// cursor the selector left, separator insertion applied to both stages.
// No matching case yields a recoverable error at the switch's starting
// position. Errors from the selector or the chosen branch are re-tagged
// with switch-level context, preserving their class; Incomplete passes
// through untouched so the needed hint survives.
func Switch[K comparable, O any](sep Separator, selector Parser[K], cases ...Case[K, O]) Parser[O] {
	return func(in Cursor) (Cursor, O, error) {
		var zero O
		rest, key, err := selector(sep(in))
		if err != nil {
			return in, zero, retag(err, KindSwitch, in.Pos())
		}
		for _, c := range cases {
			if !c.match(key) {
				continue
			}
			after, out, err := c.body(sep(rest))
			if err != nil {
				return in, zero, retag(err, KindSwitch, in.Pos())
			}
			return after, out, nil
		}
		return in, zero, NewRecoverable(KindSwitch, in.Pos())
	}
}

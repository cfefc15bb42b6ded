// Package format encodes captured parse values for output.
package format

import "github.com/dhamidi/gnaw/grammar"

type Encoder interface {
	Encode(value grammar.Value) error
}

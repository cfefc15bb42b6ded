package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dhamidi/gnaw/grammar"
)

// SexprEncoder writes a value as a nested s-expression, one line per
// composite, for quick inspection in a terminal.
type SexprEncoder struct {
	w io.Writer
}

func NewSexprEncoder(w io.Writer) *SexprEncoder {
	return &SexprEncoder{w: w}
}

func (e *SexprEncoder) Encode(value grammar.Value) error {
	return e.write(value, 0)
}

func (e *SexprEncoder) write(v grammar.Value, depth int) error {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	label := v.Rule
	if label == "" {
		label = "_"
	}
	if v.IsTerminal() {
		_, err := fmt.Fprintf(e.w, "%s(%s %s)\n", indent, label, strconv.Quote(v.Text()))
		return err
	}
	if _, err := fmt.Fprintf(e.w, "%s(%s\n", indent, label); err != nil {
		return err
	}
	for _, child := range v.Children {
		if err := e.write(child, depth+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(e.w, "%s)\n", indent)
	return err
}

package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/gnaw/grammar"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(value grammar.Value) error {
	text, err := e.MarshalText(value)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(value grammar.Value) ([]byte, error) {
	return json.MarshalIndent(valueToJSON(value), "", "  ")
}

type jsonValue struct {
	Rule     string       `json:"rule,omitempty"`
	Text     string       `json:"text,omitempty"`
	Children []*jsonValue `json:"children,omitempty"`
}

func valueToJSON(v grammar.Value) *jsonValue {
	out := &jsonValue{Rule: v.Rule}
	if v.IsTerminal() {
		out.Text = v.Text()
		return out
	}
	out.Children = make([]*jsonValue, 0, len(v.Children))
	for _, child := range v.Children {
		out.Children = append(out.Children, valueToJSON(child))
	}
	return out
}

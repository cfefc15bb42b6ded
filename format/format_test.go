package format_test

import (
	"bytes"
	"testing"

	"github.com/dhamidi/gnaw/format"
	"github.com/dhamidi/gnaw/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleValue() grammar.Value {
	return grammar.Value{
		Rule: "pair",
		Children: []grammar.Value{
			{Rule: "word", Bytes: []byte("retries")},
			{Bytes: []byte("=")},
			{Rule: "number", Bytes: []byte("5")},
		},
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	err := format.NewJSONEncoder(&buf).Encode(sampleValue())
	require.NoError(t, err)

	want := `{
  "rule": "pair",
  "children": [
    {
      "rule": "word",
      "text": "retries"
    },
    {
      "text": "="
    },
    {
      "rule": "number",
      "text": "5"
    }
  ]
}`
	assert.Equal(t, want, buf.String())
}

func TestSexprEncoder(t *testing.T) {
	var buf bytes.Buffer
	err := format.NewSexprEncoder(&buf).Encode(sampleValue())
	require.NoError(t, err)

	want := `(pair
  (word "retries")
  (_ "=")
  (number "5")
)
`
	assert.Equal(t, want, buf.String())
}

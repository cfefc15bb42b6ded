package parse_test

import (
	"testing"

	"github.com/dhamidi/gnaw/parse"
	"github.com/dhamidi/gnaw/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ws = parse.Whitespace

func TestSeq2(t *testing.T) {
	p := parse.Padded(ws, parse.Seq2(ws, token.Take(3), token.Tag("de")))

	rest, out, err := p(parse.NewCursor([]byte(" \t abc de fg")))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out.A))
	assert.Equal(t, "de", string(out.B))
	assert.Equal(t, "fg", string(rest.Rest()))
}

func TestSeqAbortsOnFirstMiss(t *testing.T) {
	p := parse.Seq2(ws, token.Tag("ab"), token.Tag("cd"))

	in := parse.NewCursor([]byte("ab xy"))
	rest, _, err := p(in)
	require.Error(t, err)
	assert.True(t, parse.IsRecoverable(err))
	assert.Equal(t, in.Pos(), rest.Pos())
}

func TestPair(t *testing.T) {
	p := parse.Padded(ws, parse.Pair(ws, token.Take(3), token.Tag("de")))

	rest, out, err := p(parse.NewCursor([]byte(" \t abc de fg")))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out.A))
	assert.Equal(t, "de", string(out.B))
	assert.Equal(t, "fg", string(rest.Rest()))
}

func TestPreceded(t *testing.T) {
	p := parse.Padded(ws, parse.Preceded(ws, token.Take(3), token.Tag("de")))

	rest, out, err := p(parse.NewCursor([]byte(" \t abc de fg")))
	require.NoError(t, err)
	assert.Equal(t, "de", string(out))
	assert.Equal(t, "fg", string(rest.Rest()))
}

func TestTerminated(t *testing.T) {
	p := parse.Padded(ws, parse.Terminated(ws, token.Take(3), token.Tag("de")))

	rest, out, err := p(parse.NewCursor([]byte(" \t abc de fg")))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
	assert.Equal(t, "fg", string(rest.Rest()))
}

func TestDelimited(t *testing.T) {
	p := parse.Delimited(ws, token.Char('('), token.Tag("abc"), token.Char(')'))

	rest, out, err := p(parse.NewCursor([]byte("( abc ) tail")))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
	assert.Equal(t, " tail", string(rest.Rest()))
}

func TestSeparatedPair(t *testing.T) {
	p := parse.SeparatedPair(ws, token.Tag("key"), token.Char('='), token.Tag("value"))

	rest, out, err := p(parse.NewCursor([]byte("key = value!")))
	require.NoError(t, err)
	assert.Equal(t, "key", string(out.A))
	assert.Equal(t, "value", string(out.B))
	assert.Equal(t, "!", string(rest.Rest()))
}

// Nested composites get separator insertion at every level.
func TestNestedSequences(t *testing.T) {
	inner := parse.Seq2(ws, token.Tag("de"), token.Tag("fg "))
	p := parse.Padded(ws, parse.Pair(ws, token.Take(3), inner))

	rest, out, err := p(parse.NewCursor([]byte(" \t abc de fg \t hi ")))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out.A))
	assert.Equal(t, "de", string(out.B.A))
	assert.Equal(t, "fg ", string(out.B.B))
	assert.Equal(t, "hi ", string(rest.Rest()))
}

func TestSeq5(t *testing.T) {
	p := parse.Seq5(ws,
		token.Tag("a"), token.Tag("b"), token.Tag("c"), token.Tag("d"), token.Tag("e"))

	rest, out, err := p(parse.NewCursor([]byte("a b\tc\nd e!")))
	require.NoError(t, err)
	assert.Equal(t, "a", string(out.A))
	assert.Equal(t, "e", string(out.E))
	assert.Equal(t, "!", string(rest.Rest()))
}

func TestSeqOf(t *testing.T) {
	p := parse.SeqOf(ws, token.Tag("one"), token.Tag("two"), token.Tag("three"))

	rest, out, err := p(parse.NewCursor([]byte("one two three|")))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "two", string(out[1]))
	assert.Equal(t, "|", string(rest.Rest()))
}

func TestSeqOfEmptySucceedsWithoutConsuming(t *testing.T) {
	p := parse.SeqOf[[]byte](ws)

	in := parse.NewCursor([]byte("anything"))
	rest, out, err := p(in)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, in.Pos(), rest.Pos())
}

func TestSeqPropagatesIncomplete(t *testing.T) {
	p := parse.Seq2(ws, token.Tag("abc"), token.Tag("defg"))

	_, _, err := p(parse.NewCursor([]byte("abc de")))
	require.Error(t, err)
	assert.True(t, parse.IsIncomplete(err))
}

package parse_test

import (
	"testing"

	"github.com/dhamidi/gnaw/parse"
	"github.com/dhamidi/gnaw/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMany0(t *testing.T) {
	p := parse.Many0(ws, token.Tag("ab"))

	rest, out, err := p(parse.NewCursor([]byte("ab ab\tabX")))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "ab", string(out[2]))
	assert.Equal(t, "X", string(rest.Rest()))
}

func TestMany0ZeroMatches(t *testing.T) {
	p := parse.Many0(ws, token.Tag("ab"))

	in := parse.NewCursor([]byte("xy"))
	rest, out, err := p(in)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, in.Pos(), rest.Pos())
}

// A failed trailing attempt must not leak its separator consumption:
// the loop ends at the cursor after the last matched element.
func TestMany0DoesNotConsumeTrailingSeparator(t *testing.T) {
	p := parse.Many0(ws, token.Tag("ab"))

	rest, out, err := p(parse.NewCursor([]byte("ab ab  X")))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "  X", string(rest.Rest()))
}

func TestMany1(t *testing.T) {
	p := parse.Many1(ws, token.Tag("ab"))

	rest, out, err := p(parse.NewCursor([]byte("abab!")))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "!", string(rest.Rest()))

	in := parse.NewCursor([]byte("xy"))
	rest, _, err = p(in)
	require.Error(t, err)
	assert.True(t, parse.IsRecoverable(err))
	assert.Equal(t, in.Pos(), rest.Pos())

	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parse.KindMany1, perr.Kind)
	assert.NotNil(t, perr.Cause)
}

func TestManyPropagatesIncomplete(t *testing.T) {
	p := parse.Many0(ws, token.Tag("abcd"))

	_, _, err := p(parse.NewCursor([]byte("abcd ab")))
	require.Error(t, err)
	assert.True(t, parse.IsIncomplete(err))
}

// An element that can succeed on empty input would loop forever; the
// repetition rejects it outright.
func TestManyZeroConsumptionGuard(t *testing.T) {
	empty := token.Tag("")

	_, _, err := parse.Many0(ws, empty)(parse.NewCursor([]byte("anything")))
	require.Error(t, err)
	assert.True(t, parse.IsFatal(err))

	_, _, err = parse.Many1(ws, empty)(parse.NewCursor([]byte("anything")))
	require.Error(t, err)
	assert.True(t, parse.IsFatal(err))
}

func TestSeparatedList0(t *testing.T) {
	p := parse.SeparatedList0(ws, token.Char(','), token.Tag("ab"))

	rest, out, err := p(parse.NewCursor([]byte("ab , ab,ab ; x")))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, " ; x", string(rest.Rest()))
}

func TestSeparatedList0Empty(t *testing.T) {
	p := parse.SeparatedList0(ws, token.Char(','), token.Tag("ab"))

	in := parse.NewCursor([]byte("xy"))
	rest, out, err := p(in)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, in.Pos(), rest.Pos())
}

// When the element after a delimiter misses, the list stops cleanly
// before the delimiter instead of consuming it.
func TestSeparatedListBacksUpBeforeDanglingDelimiter(t *testing.T) {
	p := parse.SeparatedList0(ws, token.Char(','), token.Tag("ab"))

	rest, out, err := p(parse.NewCursor([]byte("ab, ab, cd")))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, ", cd", string(rest.Rest()))
}

func TestSeparatedList1(t *testing.T) {
	p := parse.SeparatedList1(ws, token.Char(','), token.Tag("ab"))

	rest, out, err := p(parse.NewCursor([]byte("ab , ab!")))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "!", string(rest.Rest()))

	_, _, err = p(parse.NewCursor([]byte("xy")))
	require.Error(t, err)
	assert.True(t, parse.IsRecoverable(err))

	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parse.KindSeparatedList, perr.Kind)
}

func TestSeparatedListZeroConsumptionGuard(t *testing.T) {
	p := parse.SeparatedList0(ws, token.Tag(""), token.Tag(""))

	_, _, err := p(parse.NewCursor([]byte("anything")))
	require.Error(t, err)
	assert.True(t, parse.IsFatal(err))
}

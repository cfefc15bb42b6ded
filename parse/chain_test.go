package parse_test

import (
	"testing"

	"github.com/dhamidi/gnaw/parse"
	"github.com/dhamidi/gnaw/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chainOut struct {
	AA uint8
	BB uint8
}

func retInt(v uint8) parse.Parser[uint8] {
	return func(in parse.Cursor) (parse.Cursor, uint8, error) {
		return in, v, nil
	}
}

func chainParser() parse.Parser[chainOut] {
	return parse.Padded(ws, parse.Do(ws,
		parse.Skip[chainOut](token.Tag("abcd")),
		parse.Skip[chainOut](parse.Opt(token.Tag("abcd"))),
		parse.Field(retInt(1), func(out *chainOut, v uint8) { out.AA = v }),
		parse.Skip[chainOut](token.Tag("efgh")),
		parse.Field(retInt(2), func(out *chainOut, v uint8) { out.BB = v }),
		parse.Skip[chainOut](token.Tag("efgh")),
	))
}

func TestDoChain(t *testing.T) {
	p := chainParser()

	rest, out, err := p(parse.NewCursor([]byte("abcd abcd\tefghefghX")))
	require.NoError(t, err)
	assert.Equal(t, chainOut{AA: 1, BB: 2}, out)
	assert.Equal(t, "X", string(rest.Rest()))

	rest, out, err = p(parse.NewCursor([]byte("abcd\tefgh      efgh X")))
	require.NoError(t, err)
	assert.Equal(t, chainOut{AA: 1, BB: 2}, out)
	assert.Equal(t, "X", string(rest.Rest()))
}

func TestDoChainIncomplete(t *testing.T) {
	p := chainParser()

	_, _, err := p(parse.NewCursor([]byte("abcd  ab")))
	require.Error(t, err)
	assert.True(t, parse.IsIncomplete(err))

	_, _, err = p(parse.NewCursor([]byte(" abcd\tefgh\tef")))
	require.Error(t, err)
	assert.True(t, parse.IsIncomplete(err))
}

func TestDoChainAbortsAndBacktracks(t *testing.T) {
	p := chainParser()

	in := parse.NewCursor([]byte("abcd zzzz"))
	rest, _, err := p(in)
	require.Error(t, err)
	assert.True(t, parse.IsRecoverable(err))
	assert.Equal(t, in.Pos(), rest.Pos())
}

func TestDoEmptyChain(t *testing.T) {
	p := parse.Do[chainOut](ws)

	in := parse.NewCursor([]byte("untouched"))
	rest, out, err := p(in)
	require.NoError(t, err)
	assert.Equal(t, chainOut{}, out)
	assert.Equal(t, in.Pos(), rest.Pos())
}

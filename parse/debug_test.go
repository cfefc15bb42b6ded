package parse_test

import (
	"testing"

	"github.com/dhamidi/gnaw/parse"
	"github.com/dhamidi/gnaw/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// Trace is observability only: outcomes pass through untouched.
func TestTracePassesOutcomesThrough(t *testing.T) {
	log := commonlog.GetLogger("gnaw.test")
	p := parse.Trace(log, "abc", token.Tag("abc"))

	rest, out, err := p(parse.NewCursor([]byte("abcZ")))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
	assert.Equal(t, "Z", string(rest.Rest()))

	_, _, err = p(parse.NewCursor([]byte("xyz")))
	assert.True(t, parse.IsRecoverable(err))

	_, _, err = p(parse.NewCursor([]byte("ab")))
	assert.True(t, parse.IsIncomplete(err))
}

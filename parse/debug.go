package parse

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/tliron/commonlog"
)

// Trace wraps p so every invocation logs its outcome under name at
// debug level. Successful matches include a dump of the produced value.
func Trace[O any](log commonlog.Logger, name string, p Parser[O]) Parser[O] {
	return func(in Cursor) (Cursor, O, error) {
		rest, out, err := p(in)
		switch {
		case err == nil:
			log.Debugf("%s: matched %d bytes at offset %d: %s",
				name, rest.Pos()-in.Pos(), in.Pos(), strings.TrimSpace(spew.Sdump(out)))
		case IsIncomplete(err):
			log.Debugf("%s: suspended at offset %d: %v", name, in.Pos(), err)
		default:
			log.Debugf("%s: no match at offset %d: %v", name, in.Pos(), err)
		}
		return rest, out, err
	}
}

package parse

import (
	"go.uber.org/zap"

	"github.com/wippyai/parsekit/diag"
)

// Dump logs the outcome and a hex dump of the input whenever p does not
// succeed. Results are returned unchanged. Messages go to Logger() at
// debug level.
//
//	p := parse.Dump("header", parse.Tag[[]byte, errors.Error[[]byte]]([]byte("abcd")))
//	// parse step failed  {"context": "header", "outcome": "error", ...,
//	//   "input": "00000000\t65 66 67 68 \tefgh\n"}
func Dump[I Input, O, E any](label string, p Parser[I, O, E]) Parser[I, O, E] {
	return Func[I, O, E](func(input I, mode Mode) (I, O, *Err[E]) {
		rest, out, err := p.Process(input, mode)
		if err != nil {
			if l := Logger(); l.Core().Enabled(zap.DebugLevel) {
				l.Debug("parse step failed",
					zap.String("context", label),
					zap.Stringer("outcome", err.Outcome),
					zap.String("error", err.Error()),
					zap.String("input", diag.ToHex([]byte(input), 8)))
			}
		}
		return rest, out, err
	})
}

// Trace logs entry into and exit from p at debug level, with the amount of
// input consumed on success.
func Trace[I Input, O, E any](label string, p Parser[I, O, E]) Parser[I, O, E] {
	return Func[I, O, E](func(input I, mode Mode) (I, O, *Err[E]) {
		l := Logger()
		l.Debug("enter",
			zap.String("context", label),
			zap.Int("remaining", len(input)),
			zap.Stringer("mode", mode))

		rest, out, err := p.Process(input, mode)
		if err != nil {
			l.Debug("exit",
				zap.String("context", label),
				zap.Stringer("outcome", err.Outcome))
			return rest, out, err
		}
		l.Debug("exit",
			zap.String("context", label),
			zap.Int("consumed", len(input)-len(rest)))
		return rest, out, nil
	})
}

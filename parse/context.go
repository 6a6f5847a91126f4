package parse

import "github.com/wippyai/parsekit/errors"

// Context wraps p so that any recoverable error or failure it returns is
// annotated with label through E's AddContext, anchored at the input p
// was called with. Success and Incomplete results pass through unchanged,
// and the outcome of an annotated error is preserved.
func Context[I, O any, E errors.ContextError[I, E]](label string, p Parser[I, O, E]) Parser[I, O, E] {
	return &contextParser[I, O, E]{label: label, parser: p}
}

type contextParser[I, O any, E errors.ContextError[I, E]] struct {
	parser Parser[I, O, E]
	label  string
}

func (c *contextParser[I, O, E]) Process(input I, mode Mode) (I, O, *Err[E]) {
	rest, out, err := c.parser.Process(input, mode)
	if err == nil || err.Outcome == OutcomeIncomplete {
		return rest, out, err
	}
	return rest, out, err.Map(func(inner E) E {
		return errors.AddContext(input, c.label, inner)
	})
}

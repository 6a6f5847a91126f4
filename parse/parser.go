package parse

// Parser is a single parse step. It consumes a prefix of input and returns
// the remaining input and an output, or a non-nil *Err.
//
// Implementations must return the original input alongside a non-nil *Err.
type Parser[I, O, E any] interface {
	Process(input I, mode Mode) (I, O, *Err[E])
}

// Func adapts a function to the Parser interface.
type Func[I, O, E any] func(input I, mode Mode) (I, O, *Err[E])

// Process implements Parser.
func (f Func[I, O, E]) Process(input I, mode Mode) (I, O, *Err[E]) {
	return f(input, mode)
}

// Parse runs p in streaming mode.
func Parse[I, O, E any](p Parser[I, O, E], input I) (I, O, *Err[E]) {
	return p.Process(input, ModeStreaming)
}

// ParseComplete runs p on input that is known to be complete.
func ParseComplete[I, O, E any](p Parser[I, O, E], input I) (I, O, *Err[E]) {
	return p.Process(input, ModeComplete)
}

package parse

import "github.com/wippyai/parsekit/errors"

// Alt tries each parser in order and returns the first success.
//
// When every branch returns a recoverable error, the branch errors are
// folded left to right with Or and the result is appended with KindAlt.
// Incomplete results and failures stop the search immediately.
func Alt[I, O any, E errors.ParseError[I, E]](parsers ...Parser[I, O, E]) Parser[I, O, E] {
	return Func[I, O, E](func(input I, mode Mode) (I, O, *Err[E]) {
		var (
			zero O
			acc  E
			seen bool
		)
		for _, p := range parsers {
			rest, out, err := p.Process(input, mode)
			if err == nil {
				return rest, out, nil
			}
			if err.Outcome != OutcomeError {
				return input, zero, err
			}
			if seen {
				acc = acc.Or(err.Inner)
			} else {
				acc, seen = err.Inner, true
			}
		}
		if !seen {
			return input, zero, NewError(errors.MakeError[I, E](input, errors.KindAlt))
		}
		return input, zero, NewError(errors.AppendError(input, errors.KindAlt, acc))
	})
}

// Cut turns recoverable errors of p into failures, preventing enclosing
// alternatives from trying other branches.
func Cut[I, O, E any](p Parser[I, O, E]) Parser[I, O, E] {
	return Func[I, O, E](func(input I, mode Mode) (I, O, *Err[E]) {
		rest, out, err := p.Process(input, mode)
		if err != nil && err.Outcome == OutcomeError {
			return rest, out, NewFailure(err.Inner)
		}
		return rest, out, err
	})
}

// Complete turns Incomplete results of p into KindComplete errors.
func Complete[I, O any, E errors.ParseError[I, E]](p Parser[I, O, E]) Parser[I, O, E] {
	return Func[I, O, E](func(input I, mode Mode) (I, O, *Err[E]) {
		rest, out, err := p.Process(input, mode)
		if err != nil && err.Outcome == OutcomeIncomplete {
			return input, out, NewError(errors.MakeError[I, E](input, errors.KindComplete))
		}
		return rest, out, err
	})
}

// ExternalError is the constraint of combinators that absorb Go errors
// returned by user functions.
type ExternalError[I, E any] interface {
	errors.ParseError[I, E]
	errors.FromExternalError[I, E]
}

// MapRes applies f to the output of p. An error returned by f becomes a
// recoverable KindMapRes error anchored at the input of p.
func MapRes[I, A, B any, E ExternalError[I, E]](p Parser[I, A, E], f func(A) (B, error)) Parser[I, B, E] {
	return Func[I, B, E](func(input I, mode Mode) (I, B, *Err[E]) {
		var zero B
		rest, a, err := p.Process(input, mode)
		if err != nil {
			return input, zero, err
		}
		b, ferr := f(a)
		if ferr != nil {
			return input, zero, NewError(errors.MakeExternalError[I, E](input, errors.KindMapRes, ferr))
		}
		return rest, b, nil
	})
}

// Map applies f to the output of p.
func Map[I, A, B, E any](p Parser[I, A, E], f func(A) B) Parser[I, B, E] {
	return Func[I, B, E](func(input I, mode Mode) (I, B, *Err[E]) {
		rest, a, err := p.Process(input, mode)
		if err != nil {
			var zero B
			return input, zero, err
		}
		return rest, f(a), nil
	})
}

// Verify succeeds when p succeeds and pred accepts its output.
func Verify[I, O any, E errors.ParseError[I, E]](p Parser[I, O, E], pred func(O) bool) Parser[I, O, E] {
	return Func[I, O, E](func(input I, mode Mode) (I, O, *Err[E]) {
		rest, out, err := p.Process(input, mode)
		if err != nil {
			return input, out, err
		}
		if !pred(out) {
			var zero O
			return input, zero, NewError(errors.MakeError[I, E](input, errors.KindVerify))
		}
		return rest, out, nil
	})
}

// Preceded runs first then second and returns the output of second.
func Preceded[I, A, O, E any](first Parser[I, A, E], second Parser[I, O, E]) Parser[I, O, E] {
	return Func[I, O, E](func(input I, mode Mode) (I, O, *Err[E]) {
		var zero O
		rest, _, err := first.Process(input, mode)
		if err != nil {
			return input, zero, err
		}
		rest, out, err := second.Process(rest, mode)
		if err != nil {
			return input, zero, err
		}
		return rest, out, nil
	})
}

// Terminated runs first then second and returns the output of first.
func Terminated[I, O, B, E any](first Parser[I, O, E], second Parser[I, B, E]) Parser[I, O, E] {
	return Func[I, O, E](func(input I, mode Mode) (I, O, *Err[E]) {
		var zero O
		rest, out, err := first.Process(input, mode)
		if err != nil {
			return input, zero, err
		}
		rest, _, err = second.Process(rest, mode)
		if err != nil {
			return input, zero, err
		}
		return rest, out, nil
	})
}

// Pair is the output of Tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Tuple runs first then second and returns both outputs.
func Tuple[I, A, B, E any](first Parser[I, A, E], second Parser[I, B, E]) Parser[I, Pair[A, B], E] {
	return Func[I, Pair[A, B], E](func(input I, mode Mode) (I, Pair[A, B], *Err[E]) {
		rest, a, err := first.Process(input, mode)
		if err != nil {
			return input, Pair[A, B]{}, err
		}
		rest, b, err := second.Process(rest, mode)
		if err != nil {
			return input, Pair[A, B]{}, err
		}
		return rest, Pair[A, B]{First: a, Second: b}, nil
	})
}

// SeparatedList1 recognizes one or more elem separated by sep.
//
// A recoverable error in the first element is appended with
// KindSeparatedList. A separator followed by a recoverable error in elem
// ends the list before the separator.
func SeparatedList1[I Input, O, S any, E errors.ParseError[I, E]](sep Parser[I, S, E], elem Parser[I, O, E]) Parser[I, []O, E] {
	return Func[I, []O, E](func(input I, mode Mode) (I, []O, *Err[E]) {
		rest, first, err := elem.Process(input, mode)
		if err != nil {
			if err.Outcome == OutcomeError {
				return input, nil, NewError(errors.AppendError(input, errors.KindSeparatedList, err.Inner))
			}
			return input, nil, err
		}

		out := []O{first}
		for {
			afterSep, _, err := sep.Process(rest, mode)
			if err != nil {
				if err.Outcome == OutcomeError {
					return rest, out, nil
				}
				return input, nil, err
			}
			if len(afterSep) == len(rest) {
				return input, nil, NewError(errors.MakeError[I, E](afterSep, errors.KindSeparatedList))
			}

			next, o, err := elem.Process(afterSep, mode)
			if err != nil {
				if err.Outcome == OutcomeError {
					return rest, out, nil
				}
				return input, nil, err
			}
			out = append(out, o)
			rest = next
		}
	})
}

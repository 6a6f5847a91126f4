package parse

import (
	"fmt"
	"strconv"
)

// Mode selects how recognizers treat the end of the input.
type Mode uint8

const (
	// ModeStreaming assumes more input may follow; running out of input
	// yields an Incomplete outcome.
	ModeStreaming Mode = iota
	// ModeComplete treats the input as final; running out of input is an error.
	ModeComplete
)

func (m Mode) String() string {
	if m == ModeComplete {
		return "complete"
	}
	return "streaming"
}

// Needed is how much more input a streaming parser wants. Unknown means
// the amount could not be computed.
type Needed int

const Unknown Needed = 0

// Size returns the needed amount and whether it is known.
func (n Needed) Size() (int, bool) {
	return int(n), n > 0
}

// Outcome distinguishes the three ways a parse step can fail.
type Outcome uint8

const (
	// OutcomeIncomplete: more input is required to decide.
	OutcomeIncomplete Outcome = iota + 1
	// OutcomeError: recoverable, an enclosing alternative may try another branch.
	OutcomeError
	// OutcomeFailure: unrecoverable, no other branch may be tried.
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIncomplete:
		return "incomplete"
	case OutcomeError:
		return "error"
	case OutcomeFailure:
		return "failure"
	}
	return "Outcome(" + strconv.Itoa(int(o)) + ")"
}

// Err is returned by a parse step that did not succeed. A nil *Err means
// success. Inner is only meaningful for OutcomeError and OutcomeFailure.
type Err[E any] struct {
	Inner   E
	Needed  Needed
	Outcome Outcome
}

// NewIncomplete reports that n more units of input are needed.
func NewIncomplete[E any](n Needed) *Err[E] {
	return &Err[E]{Outcome: OutcomeIncomplete, Needed: n}
}

// NewError wraps e as a recoverable error.
func NewError[E any](e E) *Err[E] {
	return &Err[E]{Outcome: OutcomeError, Inner: e}
}

// NewFailure wraps e as an unrecoverable failure.
func NewFailure[E any](e E) *Err[E] {
	return &Err[E]{Outcome: OutcomeFailure, Inner: e}
}

// Incomplete reports whether more input is needed.
func (e *Err[E]) Incomplete() bool {
	return e.Outcome == OutcomeIncomplete
}

// Map transforms the inner error and keeps the outcome. Incomplete results
// are returned unchanged.
func (e *Err[E]) Map(f func(E) E) *Err[E] {
	if e.Outcome == OutcomeIncomplete {
		return e
	}
	return &Err[E]{Outcome: e.Outcome, Inner: f(e.Inner)}
}

// Error implements the error interface.
func (e *Err[E]) Error() string {
	switch e.Outcome {
	case OutcomeIncomplete:
		if n, ok := e.Needed.Size(); ok {
			return fmt.Sprintf("parsing requires %d more bytes/chars", n)
		}
		return "parsing requires more data"
	case OutcomeFailure:
		return fmt.Sprintf("parsing failure: %v", e.Inner)
	default:
		return fmt.Sprintf("parsing error: %v", e.Inner)
	}
}

// Unwrap returns the inner error when it implements error.
func (e *Err[E]) Unwrap() error {
	if e.Outcome == OutcomeIncomplete {
		return nil
	}
	if err, ok := any(e.Inner).(error); ok {
		return err
	}
	return nil
}

package errors

import (
	"strconv"
	"strings"
)

// FrameType tells which field of a Frame is meaningful.
type FrameType uint8

const (
	FrameError FrameType = iota
	FrameChar
	FrameContext
)

// Frame is one entry in a Verbose trace.
type Frame[I any] struct {
	Input I
	Type  FrameType
	// Kind is set for FrameError frames.
	Kind Kind
	// Char is the expected character for FrameChar frames.
	Char rune
	// Label is the context label for FrameContext frames.
	Label string
}

func (f Frame[I]) describe() string {
	switch f.Type {
	case FrameChar:
		return "expected " + strconv.QuoteRune(f.Char)
	case FrameContext:
		return "in " + f.Label
	default:
		return "in " + f.Kind.String()
	}
}

// Verbose accumulates every position, kind and context label it is handed
// while propagating. Frames are ordered innermost first.
type Verbose[I any] struct {
	Frames []Frame[I]
	// Cause is the first foreign error absorbed by FromExternalError.
	Cause error
}

// FromErrorKind implements ParseError.
func (Verbose[I]) FromErrorKind(input I, kind Kind) Verbose[I] {
	return Verbose[I]{Frames: []Frame[I]{{Input: input, Type: FrameError, Kind: kind}}}
}

// Append implements ParseError by pushing a new frame.
func (Verbose[I]) Append(input I, kind Kind, other Verbose[I]) Verbose[I] {
	return other.push(Frame[I]{Input: input, Type: FrameError, Kind: kind})
}

// FromChar implements ParseError.
func (Verbose[I]) FromChar(input I, c rune) Verbose[I] {
	return Verbose[I]{Frames: []Frame[I]{{Input: input, Type: FrameChar, Char: c}}}
}

// Or implements ParseError with the default later-branch policy.
func (e Verbose[I]) Or(other Verbose[I]) Verbose[I] {
	return PreferOther(e, other)
}

// AddContext implements ContextError by pushing a context frame.
func (Verbose[I]) AddContext(input I, label string, other Verbose[I]) Verbose[I] {
	return other.push(Frame[I]{Input: input, Type: FrameContext, Label: label})
}

// FromExternalError implements FromExternalError and keeps err as Cause.
func (Verbose[I]) FromExternalError(input I, kind Kind, err error) Verbose[I] {
	return Verbose[I]{
		Frames: []Frame[I]{{Input: input, Type: FrameError, Kind: kind}},
		Cause:  err,
	}
}

// push copies the frames; the receiver's backing array may be shared with
// other branches of the parse.
func (e Verbose[I]) push(f Frame[I]) Verbose[I] {
	frames := make([]Frame[I], len(e.Frames), len(e.Frames)+1)
	copy(frames, e.Frames)
	e.Frames = append(frames, f)
	return e
}

// ErrorKind returns the kind of the innermost kind frame, or KindChar when
// the trace starts with an expected character.
func (e Verbose[I]) ErrorKind() Kind {
	for _, f := range e.Frames {
		switch f.Type {
		case FrameError:
			return f.Kind
		case FrameChar:
			return KindChar
		}
	}
	return 0
}

// Contexts returns the context labels from innermost to outermost.
func (e Verbose[I]) Contexts() []string {
	var out []string
	for _, f := range e.Frames {
		if f.Type == FrameContext {
			out = append(out, f.Label)
		}
	}
	return out
}

// Error implements the error interface, one frame per line.
func (e Verbose[I]) Error() string {
	if len(e.Frames) == 0 {
		return "parse error"
	}
	var b strings.Builder
	b.WriteString("parse error:")
	for i, f := range e.Frames {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": at ")
		b.WriteString(strconv.Quote(inputString(f.Input)))
		b.WriteString(", ")
		b.WriteString(f.describe())
	}
	if e.Cause != nil {
		b.WriteString("\ncaused by: ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the absorbed foreign error, if any.
func (e Verbose[I]) Unwrap() error {
	return e.Cause
}

func inputString(input any) string {
	var b strings.Builder
	writeInput(&b, input)
	return b.String()
}

// MapVerbose converts every frame position of e with f.
func MapVerbose[I, J any](e Verbose[I], f func(I) J) Verbose[J] {
	out := Verbose[J]{Frames: make([]Frame[J], len(e.Frames)), Cause: e.Cause}
	for i, fr := range e.Frames {
		out.Frames[i] = Frame[J]{
			Input: f(fr.Input),
			Type:  fr.Type,
			Kind:  fr.Kind,
			Char:  fr.Char,
			Label: fr.Label,
		}
	}
	return out
}

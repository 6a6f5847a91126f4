package errors

import (
	"bytes"
	"fmt"
	"strings"
)

// Error is the default error type. It only records where the failure was
// detected and which kind of parser reported it.
//
// Append keeps the innermost error and AddContext ignores labels, so an
// Error never grows while it propagates. Use Verbose to keep a trace.
type Error[I any] struct {
	Input I
	Code  Kind
}

// New creates a basic error.
func New[I any](input I, code Kind) Error[I] {
	return Error[I]{Input: input, Code: code}
}

// FromErrorKind implements ParseError.
func (Error[I]) FromErrorKind(input I, kind Kind) Error[I] {
	return Error[I]{Input: input, Code: kind}
}

// Append implements ParseError. The previous error is returned unchanged.
func (Error[I]) Append(input I, kind Kind, other Error[I]) Error[I] {
	return KeepPrevious(input, kind, other)
}

// FromChar implements ParseError.
func (Error[I]) FromChar(input I, c rune) Error[I] {
	return CharError[I, Error[I]](input, c)
}

// Or implements ParseError. The other branch's error is returned.
func (e Error[I]) Or(other Error[I]) Error[I] {
	return PreferOther(e, other)
}

// AddContext implements ContextError. Labels are not recorded.
func (Error[I]) AddContext(input I, label string, other Error[I]) Error[I] {
	return IgnoreContext(input, label, other)
}

// FromExternalError implements FromExternalError. The foreign error is dropped.
func (Error[I]) FromExternalError(input I, kind Kind, err error) Error[I] {
	return DropExternal[I, Error[I]](input, kind, err)
}

// ErrorKind returns the kind that produced e.
func (e Error[I]) ErrorKind() Kind {
	return e.Code
}

// Error implements the error interface.
func (e Error[I]) Error() string {
	var b strings.Builder
	b.WriteString("error ")
	b.WriteString(e.Code.String())
	b.WriteString(" at: ")
	writeInput(&b, e.Input)
	return b.String()
}

// writeInput prints byte slices as text so that Error[[]byte] and
// Error[string] render the same position the same way.
func writeInput(b *strings.Builder, input any) {
	switch v := input.(type) {
	case string:
		b.WriteString(v)
	case []byte:
		b.Write(v)
	case fmt.Stringer:
		b.WriteString(v.String())
	default:
		fmt.Fprint(b, v)
	}
}

// MapInput converts the position of e with f, keeping its kind.
func MapInput[I, J any](e Error[I], f func(I) J) Error[J] {
	return Error[J]{Input: f(e.Input), Code: e.Code}
}

// CloneBytes returns a copy of e that owns its input, so it stays valid
// after the parsed buffer is reused or released.
func CloneBytes(e Error[[]byte]) Error[[]byte] {
	return Error[[]byte]{Input: bytes.Clone(e.Input), Code: e.Code}
}

// CloneString returns a copy of e whose input no longer shares memory with
// the parsed string.
func CloneString(e Error[string]) Error[string] {
	return Error[string]{Input: strings.Clone(e.Input), Code: e.Code}
}

// Copied converts an error holding a pointer position into one holding the
// pointed-to value.
func Copied[I any](e Error[*I]) Error[I] {
	var v I
	if e.Input != nil {
		v = *e.Input
	}
	return Error[I]{Input: v, Code: e.Code}
}

package errors

// ParseError is the capability every error type used by the parse engine
// must provide. E is the implementing type itself.
//
// Constructors are called on the zero value of E, so implementations must
// not depend on receiver state in FromErrorKind, Append or FromChar.
//
// Default behaviour is available as policy functions (KeepPrevious,
// CharError, PreferOther) that implementations call from their methods.
type ParseError[I, E any] interface {
	// FromErrorKind creates an error anchored at input for kind.
	FromErrorKind(input I, kind Kind) E

	// Append records that an outer parser also failed at input for kind,
	// after other was reported. Used when backtracking through a parse tree.
	Append(input I, kind Kind, other E) E

	// FromChar creates an error for an expected character at input.
	FromChar(input I, c rune) E

	// Or combines the errors of two alternative branches, the receiver
	// being the earlier branch.
	Or(other E) E
}

// ContextError is required by the context combinator to attach a static
// label to an existing error.
type ContextError[I, E any] interface {
	AddContext(input I, label string, other E) E
}

// FromExternalError is required by combinators that run user functions
// returning a Go error, such as MapRes.
type FromExternalError[I, E any] interface {
	FromExternalError(input I, kind Kind, err error) E
}

// KeepPrevious is the default Append policy: the error reported first
// (the innermost one) is kept and the new position and kind are dropped.
// Error types that want a full trace implement Append themselves.
func KeepPrevious[I, E any](_ I, _ Kind, previous E) E {
	return previous
}

// PreferOther is the default Or policy: the later branch's error wins.
func PreferOther[E any](_, other E) E {
	return other
}

// IgnoreContext is the default AddContext policy: labels are not recorded.
func IgnoreContext[I, E any](_ I, _ string, previous E) E {
	return previous
}

// CharError is the default FromChar policy: it forwards to FromErrorKind
// with KindChar.
func CharError[I any, E ParseError[I, E]](input I, _ rune) E {
	var zero E
	return zero.FromErrorKind(input, KindChar)
}

// DropExternal is the default FromExternalError policy: the foreign error
// is discarded and only position and kind are kept.
func DropExternal[I any, E ParseError[I, E]](input I, kind Kind, _ error) E {
	var zero E
	return zero.FromErrorKind(input, kind)
}

// MakeError creates an error of type E from an input position and a kind.
func MakeError[I any, E ParseError[I, E]](input I, kind Kind) E {
	var zero E
	return zero.FromErrorKind(input, kind)
}

// AppendError combines other with a new error created from an input
// position and a kind.
func AppendError[I any, E ParseError[I, E]](input I, kind Kind, other E) E {
	var zero E
	return zero.Append(input, kind, other)
}

// MakeCharError creates an error of type E for an expected character.
func MakeCharError[I any, E ParseError[I, E]](input I, c rune) E {
	var zero E
	return zero.FromChar(input, c)
}

// AddContext attaches label to other using E's context capability.
func AddContext[I any, E ContextError[I, E]](input I, label string, other E) E {
	var zero E
	return zero.AddContext(input, label, other)
}

// MakeExternalError creates an error of type E that absorbs a foreign error.
func MakeExternalError[I any, E FromExternalError[I, E]](input I, kind Kind, err error) E {
	var zero E
	return zero.FromExternalError(input, kind, err)
}

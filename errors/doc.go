// Package errors defines how parse failures are represented and combined.
//
// Parsers are generic over their error type. Any type E plugs into the
// engine by implementing ParseError[I, E], and optionally ContextError[I, E]
// (labels added by the context combinator) and FromExternalError[I, E]
// (foreign errors returned by user callbacks).
//
// Every failure carries a Kind naming the recognizer or combinator that
// reported it. Kinds have stable numeric codes:
//
//	errors.KindTag.Code()         // 1
//	errors.KindTag.Description()  // "Tag"
//	errors.KindFromCode(23)       // KindEof, true
//
// Three implementations are provided:
//
//	Error[I]    position and kind; keeps the innermost error, ignores labels
//	Verbose[I]  full trace of kinds, expected characters and context labels
//	Unit[I]     no information at all
//
// Default combination policies are exported so custom types can reuse them:
//
//	KeepPrevious   Append keeps the previous (innermost) error
//	PreferOther    Or keeps the later branch's error
//	IgnoreContext  AddContext drops the label
//	CharError      FromChar forwards to FromErrorKind(input, KindChar)
//	DropExternal   FromExternalError drops the foreign error
//
// Recognizers build errors without naming the concrete type:
//
//	return errors.MakeError[I, E](input, errors.KindTag)
//
// All provided types implement the error interface. KindOf and HasKind
// inspect any error chain for a Kind.
package errors

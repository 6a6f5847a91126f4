// Package parse is the minimal parser engine the error model plugs into.
//
// A Parser consumes a prefix of its input and either succeeds, returning
// the rest of the input and an output, or returns a *Err whose Outcome is
// one of:
//
//	OutcomeIncomplete  more input is needed (streaming mode only)
//	OutcomeError       recoverable; alternatives may try another branch
//	OutcomeFailure     unrecoverable; produced by Cut
//
// Parsers are generic over their error type E, which must implement
// errors.ParseError. Context additionally requires errors.ContextError and
// MapRes requires errors.FromExternalError:
//
//	type E = errors.Verbose[string]
//
//	number := parse.Context("number",
//		parse.MapRes(parse.Digit1[string, E](), strconv.Atoi))
//
//	_, n, err := parse.ParseComplete(number, "42")
//
// Dump and Trace log through Logger(), which is a no-op unless SetLogger
// is called.
package parse

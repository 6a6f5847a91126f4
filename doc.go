// Package parsekit provides the error model of a parser-combinator library:
// how a failed parse step describes itself, how errors from nested and
// alternative parsers are combined, and how they are explained to a user.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	parsekit/            Root package, documentation only
//	├── errors/          Error kinds, the error contracts and built-in error types
//	├── parse/           Parse outcomes, recognizers, combinators and the context combinator
//	├── diag/            Offline diagnostics: hex dumps, span colouring, line reports
//	└── cmd/pcheck/      Command-line checker for key=value documents
//
// # Quick Start
//
// Pick an error type and build parsers with it:
//
//	type E = errors.Verbose[string]
//
//	value := parse.Context("value", parse.Digit1[string, E]())
//	entry := parse.Preceded(parse.Tag[string, E]("port="), value)
//
//	_, _, err := parse.ParseComplete(entry, "port=x")
//	if err != nil {
//	    fmt.Print(diag.Render("port=x", err.Inner, diag.Plain()))
//	}
//
// # Error Types
//
// Three error types ship with the library:
//
//   - errors.Error records the innermost position and kind only
//   - errors.Verbose records every kind, expected character and context label
//   - errors.Unit records nothing
//
// Any type implementing errors.ParseError can be used instead. Default
// behaviour for each capability is available as a policy function, so a
// custom type only spells out what it changes.
//
// # Outcomes
//
// Every parse step returns nil on success, or a *parse.Err that is
// Incomplete (more input could decide), Error (recoverable, alternatives
// may be tried) or Failure (unrecoverable). Complete converts Incomplete
// into Error for inputs known to be whole.
//
// # Thread Safety
//
// Parsers and error values are immutable once built and may be shared
// between goroutines. The package logger in parse must be configured with
// SetLogger before any parser runs.
package parsekit

package main

import (
	"strconv"

	"github.com/wippyai/parsekit/errors"
	"github.com/wippyai/parsekit/parse"
)

// Entry is one key=value pair of a checked document.
type Entry struct {
	Key   string
	Value uint16
}

type traceErr = errors.Verbose[string]

// document recognizes key=value entries separated by commas or newlines,
// e.g. "host=1, port=8080". Keys are alphabetic and values are unsigned
// 16-bit decimals. Once an '=' has been seen a bad value is a failure, so
// the report points at the value instead of the list.
func document() parse.Parser[string, []Entry, traceErr] {
	ws := parse.Space0[string, traceErr]()

	key := parse.Context("key", parse.Alpha1[string, traceErr]())
	value := parse.Context("value", parse.MapRes(parse.Digit1[string, traceErr](), parseValue))

	pair := parse.Tuple(
		parse.Terminated(key, parse.Preceded(ws, parse.Char[string, traceErr]('='))),
		parse.Preceded(ws, parse.Cut(value)),
	)
	entry := parse.Trace("entry", parse.Context("entry", parse.Map(pair, func(p parse.Pair[string, uint16]) Entry {
		return Entry{Key: p.First, Value: p.Second}
	})))

	sep := parse.Preceded(ws, parse.Terminated(parse.OneOf[string, traceErr](",\n"), ws))
	list := parse.SeparatedList1(sep, parse.Preceded(ws, entry))

	return parse.Terminated(list, parse.Preceded(ws, parse.Eof[string, traceErr]()))
}

func parseValue(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	return uint16(v), err
}

// check runs document over the whole of src.
func check(src string) ([]Entry, *parse.Err[traceErr]) {
	_, entries, err := parse.ParseComplete(document(), src)
	return entries, err
}

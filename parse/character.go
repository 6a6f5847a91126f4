package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wippyai/parsekit/errors"
)

// Char recognizes the character c.
func Char[I Input, E errors.ParseError[I, E]](c rune) Parser[I, rune, E] {
	var buf [utf8.UTFMax]byte
	enc := buf[:utf8.EncodeRune(buf[:], c)]

	return Func[I, rune, E](func(input I, mode Mode) (I, rune, *Err[E]) {
		if len(input) < len(enc) && isPrefix(input, enc) {
			if mode == ModeStreaming {
				return input, 0, NewIncomplete[E](Needed(len(enc) - len(input)))
			}
			return input, 0, NewError(errors.MakeCharError[I, E](input, c))
		}
		if !isPrefix(enc, input) {
			return input, 0, NewError(errors.MakeCharError[I, E](input, c))
		}
		return input[len(enc):], c, nil
	})
}

// Tag recognizes the literal tag.
func Tag[I Input, E errors.ParseError[I, E]](tag I) Parser[I, I, E] {
	return Func[I, I, E](func(input I, mode Mode) (I, I, *Err[E]) {
		if len(input) < len(tag) && isPrefix(input, tag) {
			if mode == ModeStreaming {
				return input, input[:0], NewIncomplete[E](Needed(len(tag) - len(input)))
			}
			return input, input[:0], NewError(errors.MakeError[I, E](input, errors.KindTag))
		}
		if !isPrefix(tag, input) {
			return input, input[:0], NewError(errors.MakeError[I, E](input, errors.KindTag))
		}
		return input[len(tag):], input[:len(tag)], nil
	})
}

// Satisfy recognizes one character matching pred.
func Satisfy[I Input, E errors.ParseError[I, E]](pred func(rune) bool) Parser[I, rune, E] {
	return satisfy[I, E](pred, errors.KindSatisfy)
}

// OneOf recognizes one of the characters in set.
func OneOf[I Input, E errors.ParseError[I, E]](set string) Parser[I, rune, E] {
	return satisfy[I, E](func(r rune) bool { return strings.ContainsRune(set, r) }, errors.KindOneOf)
}

// NoneOf recognizes any character not in set.
func NoneOf[I Input, E errors.ParseError[I, E]](set string) Parser[I, rune, E] {
	return satisfy[I, E](func(r rune) bool { return !strings.ContainsRune(set, r) }, errors.KindNoneOf)
}

func satisfy[I Input, E errors.ParseError[I, E]](pred func(rune) bool, kind errors.Kind) Parser[I, rune, E] {
	return Func[I, rune, E](func(input I, mode Mode) (I, rune, *Err[E]) {
		if len(input) == 0 {
			if mode == ModeStreaming {
				return input, 0, NewIncomplete[E](1)
			}
			return input, 0, NewError(errors.MakeError[I, E](input, kind))
		}
		r, n := firstRune(input)
		if !pred(r) {
			return input, 0, NewError(errors.MakeError[I, E](input, kind))
		}
		return input[n:], r, nil
	})
}

// Digit1 recognizes one or more ASCII digits.
func Digit1[I Input, E errors.ParseError[I, E]]() Parser[I, I, E] {
	return takeWhile1[I, E](isDigit, errors.KindDigit)
}

// HexDigit1 recognizes one or more ASCII hexadecimal digits.
func HexDigit1[I Input, E errors.ParseError[I, E]]() Parser[I, I, E] {
	return takeWhile1[I, E](isHexDigit, errors.KindHexDigit)
}

// Alpha1 recognizes one or more letters.
func Alpha1[I Input, E errors.ParseError[I, E]]() Parser[I, I, E] {
	return takeWhile1[I, E](unicode.IsLetter, errors.KindAlpha)
}

// AlphaNumeric1 recognizes one or more letters or digits.
func AlphaNumeric1[I Input, E errors.ParseError[I, E]]() Parser[I, I, E] {
	return takeWhile1[I, E](func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}, errors.KindAlphaNumeric)
}

// Space0 recognizes zero or more spaces and tabs.
func Space0[I Input, E errors.ParseError[I, E]]() Parser[I, I, E] {
	return Func[I, I, E](func(input I, mode Mode) (I, I, *Err[E]) {
		i := span(input, isSpace)
		if i == len(input) && mode == ModeStreaming {
			return input, input[:0], NewIncomplete[E](1)
		}
		return input[i:], input[:i], nil
	})
}

// Space1 recognizes one or more spaces and tabs.
func Space1[I Input, E errors.ParseError[I, E]]() Parser[I, I, E] {
	return takeWhile1[I, E](isSpace, errors.KindSpace)
}

func takeWhile1[I Input, E errors.ParseError[I, E]](pred func(rune) bool, kind errors.Kind) Parser[I, I, E] {
	return Func[I, I, E](func(input I, mode Mode) (I, I, *Err[E]) {
		i := span(input, pred)
		if i == len(input) && mode == ModeStreaming {
			return input, input[:0], NewIncomplete[E](1)
		}
		if i == 0 {
			return input, input[:0], NewError(errors.MakeError[I, E](input, kind))
		}
		return input[i:], input[:i], nil
	})
}

// span returns the length of the longest prefix of input whose characters
// all match pred.
func span[I Input](input I, pred func(rune) bool) int {
	i := 0
	for i < len(input) {
		r, n := firstRune(input[i:])
		if !pred(r) {
			break
		}
		i += n
	}
	return i
}

// Eof succeeds only at the end of the input.
func Eof[I Input, E errors.ParseError[I, E]]() Parser[I, I, E] {
	return Func[I, I, E](func(input I, _ Mode) (I, I, *Err[E]) {
		if len(input) != 0 {
			return input, input[:0], NewError(errors.MakeError[I, E](input, errors.KindEof))
		}
		return input, input, nil
	})
}

// Fail always returns a recoverable KindFail error.
func Fail[I, O any, E errors.ParseError[I, E]]() Parser[I, O, E] {
	return Func[I, O, E](func(input I, _ Mode) (I, O, *Err[E]) {
		var zero O
		return input, zero, NewError(errors.MakeError[I, E](input, errors.KindFail))
	})
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

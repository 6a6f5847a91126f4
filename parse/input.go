package parse

import "unicode/utf8"

// Input is the set of input types the built-in recognizers operate on.
type Input interface {
	~string | ~[]byte
}

func firstRune[I Input](input I) (rune, int) {
	n := min(len(input), utf8.UTFMax)
	return utf8.DecodeRuneInString(string(input[:n]))
}

// isPrefix reports whether a is a prefix of b.
func isPrefix[A, B Input](a A, b B) bool {
	return len(a) <= len(b) && string(a) == string(b[:len(a)])
}

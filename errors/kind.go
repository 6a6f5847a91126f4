package errors

import "fmt"

// Kind identifies which built-in recognizer or combinator produced a failure.
//
// The set is closed. The zero value is not a valid kind.
type Kind uint8

const (
	KindTag Kind = iota + 1
	KindMapRes
	KindMapOpt
	KindAlt
	KindIsNot
	KindIsA
	KindSeparatedList
	KindSeparatedNonEmptyList
	KindMany0
	KindMany1
	KindManyTill
	KindCount
	KindTakeUntil
	KindLengthValue
	KindTagClosure
	KindAlpha
	KindDigit
	KindHexDigit
	KindOctDigit
	KindBinDigit
	KindAlphaNumeric
	KindSpace
	KindMultiSpace
	KindLengthValueFn
	KindEof
	KindSwitch
	KindTagBits
	KindOneOf
	KindNoneOf
	KindChar
	KindCrLf
	KindRegexpMatch
	KindRegexpMatches
	KindRegexpFind
	KindRegexpCapture
	KindRegexpCaptures
	KindTakeWhile1
	KindComplete
	KindFix
	KindEscaped
	KindEscapedTransform
	KindNonEmpty
	KindManyMN
	KindNot
	KindPermutation
	KindVerify
	KindTakeTill1
	KindTakeWhileMN
	KindTooLarge
	KindMany0Count
	KindMany1Count
	KindFloat
	KindSatisfy
	KindFail
	KindMany
	KindFold
	KindPrecedence

	kindEnd
)

type kindInfo struct {
	name        string
	description string
	code        uint32
}

// kinds is indexed by Kind. Codes are part of the public contract: an
// assigned code is never reused or changed, new kinds take new codes.
var kinds = [kindEnd]kindInfo{
	KindTag:                   {"Tag", "Tag", 1},
	KindMapRes:                {"MapRes", "Map on Result", 2},
	KindMapOpt:                {"MapOpt", "Map on Option", 3},
	KindAlt:                   {"Alt", "Alternative", 4},
	KindIsNot:                 {"IsNot", "IsNot", 5},
	KindIsA:                   {"IsA", "IsA", 6},
	KindSeparatedList:         {"SeparatedList", "Separated list", 7},
	KindSeparatedNonEmptyList: {"SeparatedNonEmptyList", "Separated non empty list", 8},
	KindMany1:                 {"Many1", "Many1", 9},
	KindCount:                 {"Count", "Count", 10},
	KindTakeUntil:             {"TakeUntil", "Take until", 12},
	KindLengthValue:           {"LengthValue", "Length followed by value", 15},
	KindTagClosure:            {"TagClosure", "Tag closure", 16},
	KindAlpha:                 {"Alpha", "Alphabetic", 17},
	KindDigit:                 {"Digit", "Digit", 18},
	KindAlphaNumeric:          {"AlphaNumeric", "AlphaNumeric", 19},
	KindSpace:                 {"Space", "Space", 20},
	KindMultiSpace:            {"MultiSpace", "Multiple spaces", 21},
	KindLengthValueFn:         {"LengthValueFn", "LengthValueFn", 22},
	KindEof:                   {"Eof", "End of file", 23},
	KindSwitch:                {"Switch", "Switch", 27},
	KindTagBits:               {"TagBits", "Tag on bitstream", 28},
	KindOneOf:                 {"OneOf", "OneOf", 29},
	KindNoneOf:                {"NoneOf", "NoneOf", 30},
	KindChar:                  {"Char", "Char", 40},
	KindCrLf:                  {"CrLf", "CrLf", 41},
	KindRegexpMatch:           {"RegexpMatch", "RegexpMatch", 42},
	KindRegexpMatches:         {"RegexpMatches", "RegexpMatches", 43},
	KindRegexpFind:            {"RegexpFind", "RegexpFind", 44},
	KindRegexpCapture:         {"RegexpCapture", "RegexpCapture", 45},
	KindRegexpCaptures:        {"RegexpCaptures", "RegexpCaptures", 46},
	KindTakeWhile1:            {"TakeWhile1", "TakeWhile1", 47},
	KindComplete:              {"Complete", "Complete", 48},
	KindFix:                   {"Fix", "Fix", 49},
	KindEscaped:               {"Escaped", "Escaped", 50},
	KindEscapedTransform:      {"EscapedTransform", "EscapedTransform", 51},
	KindNonEmpty:              {"NonEmpty", "NonEmpty", 56},
	KindManyMN:                {"ManyMN", "Many(m, n)", 57},
	KindHexDigit:              {"HexDigit", "Hexadecimal Digit", 59},
	KindOctDigit:              {"OctDigit", "Octal digit", 61},
	KindMany0:                 {"Many0", "Many0", 62},
	KindNot:                   {"Not", "Negation", 63},
	KindPermutation:           {"Permutation", "Permutation", 64},
	KindManyTill:              {"ManyTill", "ManyTill", 65},
	KindVerify:                {"Verify", "predicate verification", 66},
	KindTakeTill1:             {"TakeTill1", "TakeTill1", 67},
	KindTakeWhileMN:           {"TakeWhileMN", "TakeWhileMN", 69},
	KindTooLarge:              {"TooLarge", "Needed data size is too large", 70},
	KindMany0Count:            {"Many0Count", "Count occurrence of >=0 patterns", 71},
	KindMany1Count:            {"Many1Count", "Count occurrence of >=1 patterns", 72},
	KindFloat:                 {"Float", "Float", 73},
	KindSatisfy:               {"Satisfy", "Satisfy", 74},
	KindFail:                  {"Fail", "Fail", 75},
	KindMany:                  {"Many", "Many", 76},
	KindFold:                  {"Fold", "Fold", 77},
	KindBinDigit:              {"BinDigit", "Binary digit", 78},
	KindPrecedence:            {"Precedence", "Precedence", 79},
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindTag && k < kindEnd
}

// Code returns the stable numeric code of k, or 0 for an invalid kind.
func (k Kind) Code() uint32 {
	if !k.Valid() {
		return 0
	}
	return kinds[k].code
}

// Description returns the human-readable description of k.
func (k Kind) Description() string {
	if !k.Valid() {
		return "unknown"
	}
	return kinds[k].description
}

// String returns the symbolic name of k, e.g. "Tag" or "MapRes".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// MarshalText encodes k as its symbolic name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid error kind %d", uint8(k))
	}
	return []byte(kinds[k].name), nil
}

// UnmarshalText decodes a symbolic name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for v := KindTag; v < kindEnd; v++ {
		if kinds[v].name == string(text) {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("unknown error kind %q", text)
}

// ErrorToU32 converts a kind to its stable numeric code.
func ErrorToU32(k Kind) uint32 {
	return k.Code()
}

// KindFromCode returns the kind assigned to code.
func KindFromCode(code uint32) (Kind, bool) {
	if code == 0 {
		return 0, false
	}
	for k := KindTag; k < kindEnd; k++ {
		if kinds[k].code == code {
			return k, true
		}
	}
	return 0, false
}

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds)-1)
	for k := KindTag; k < kindEnd; k++ {
		out = append(out, k)
	}
	return out
}

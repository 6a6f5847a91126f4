package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/parsekit/errors"
)

type strErr = errors.Error[string]

func TestChar(t *testing.T) {
	tests := []struct {
		name     string
		c        rune
		input    string
		mode     Mode
		wantRest string
		wantErr  *Err[strErr]
	}{
		{"match", 'a', "abc", ModeStreaming, "bc", nil},
		{"multibyte match", 'é', "été", ModeComplete, "té", nil},
		{"mismatch", 'a', "xbc", ModeStreaming, "xbc", NewError(errors.New("xbc", errors.KindChar))},
		{"empty streaming", 'a', "", ModeStreaming, "", NewIncomplete[strErr](1)},
		{"empty complete", 'a', "", ModeComplete, "", NewError(errors.New("", errors.KindChar))},
		{"partial rune streaming", 'é', "\xc3", ModeStreaming, "\xc3", NewIncomplete[strErr](1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, _, err := Char[string, strErr](tt.c).Process(tt.input, tt.mode)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestTag(t *testing.T) {
	tag := Tag[string, strErr]("abcd")

	rest, out, err := Parse(tag, "abcdefgh")
	require.Nil(t, err)
	assert.Equal(t, "abcd", out)
	assert.Equal(t, "efgh", rest)

	_, _, err = Parse(tag, "ab")
	assert.Equal(t, NewIncomplete[strErr](2), err)

	_, _, err = ParseComplete(tag, "ab")
	assert.Equal(t, NewError(errors.New("ab", errors.KindTag)), err)

	_, _, err = Parse(tag, "abxd")
	assert.Equal(t, NewError(errors.New("abxd", errors.KindTag)), err)
}

func TestTag_Bytes(t *testing.T) {
	type E = errors.Error[[]byte]

	rest, out, err := Parse(Tag[[]byte, E]([]byte{0xCA, 0xFE}), []byte{0xCA, 0xFE, 0x01})
	require.Nil(t, err)
	assert.Equal(t, []byte{0xCA, 0xFE}, out)
	assert.Equal(t, []byte{0x01}, rest)
}

func TestTakeWhile(t *testing.T) {
	tests := []struct {
		name     string
		p        Parser[string, string, strErr]
		input    string
		mode     Mode
		wantOut  string
		wantRest string
		wantKind errors.Kind
		wantInc  bool
	}{
		{"digit1", Digit1[string, strErr](), "123abc", ModeStreaming, "123", "abc", 0, false},
		{"digit1 none", Digit1[string, strErr](), "abc", ModeStreaming, "", "abc", errors.KindDigit, false},
		{"digit1 all streaming", Digit1[string, strErr](), "123", ModeStreaming, "", "123", 0, true},
		{"digit1 all complete", Digit1[string, strErr](), "123", ModeComplete, "123", "", 0, false},
		{"hex", HexDigit1[string, strErr](), "fF0z", ModeComplete, "fF0", "z", 0, false},
		{"alpha1 unicode", Alpha1[string, strErr](), "żółw1", ModeComplete, "żółw", "1", 0, false},
		{"alpha1 none", Alpha1[string, strErr](), "1", ModeComplete, "", "1", errors.KindAlpha, false},
		{"alnum", AlphaNumeric1[string, strErr](), "ab12-", ModeComplete, "ab12", "-", 0, false},
		{"space0 none", Space0[string, strErr](), "x", ModeComplete, "", "x", 0, false},
		{"space0 all streaming", Space0[string, strErr](), "  ", ModeStreaming, "", "  ", 0, true},
		{"space1", Space1[string, strErr](), " \tx", ModeComplete, " \t", "x", 0, false},
		{"space1 none", Space1[string, strErr](), "x", ModeComplete, "", "x", errors.KindSpace, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, out, err := tt.p.Process(tt.input, tt.mode)
			assert.Equal(t, tt.wantRest, rest)
			switch {
			case tt.wantInc:
				require.NotNil(t, err)
				assert.True(t, err.Incomplete())
			case tt.wantKind != 0:
				require.NotNil(t, err)
				assert.Equal(t, errors.New(tt.input, tt.wantKind), err.Inner)
			default:
				require.Nil(t, err)
				assert.Equal(t, tt.wantOut, out)
			}
		})
	}
}

func TestSatisfy(t *testing.T) {
	vowel := OneOf[string, strErr]("aeiou")

	rest, out, err := ParseComplete(vowel, "ox")
	require.Nil(t, err)
	assert.Equal(t, 'o', out)
	assert.Equal(t, "x", rest)

	_, _, err = ParseComplete(vowel, "x")
	assert.Equal(t, NewError(errors.New("x", errors.KindOneOf)), err)

	_, _, err = ParseComplete(NoneOf[string, strErr]("\"\\"), "\"")
	assert.Equal(t, NewError(errors.New("\"", errors.KindNoneOf)), err)

	_, _, err = Parse(Satisfy[string, strErr](func(r rune) bool { return r > 'z' }), "")
	assert.Equal(t, NewIncomplete[strErr](1), err)

	_, _, err = ParseComplete(Satisfy[string, strErr](func(r rune) bool { return r > 'z' }), "a")
	assert.Equal(t, NewError(errors.New("a", errors.KindSatisfy)), err)
}

func TestEof(t *testing.T) {
	_, _, err := ParseComplete(Eof[string, strErr](), "")
	assert.Nil(t, err)

	_, _, err = ParseComplete(Eof[string, strErr](), "x")
	assert.Equal(t, NewError(errors.New("x", errors.KindEof)), err)
}

func TestFail(t *testing.T) {
	_, out, err := ParseComplete(Fail[string, int, strErr](), "x")
	assert.Zero(t, out)
	assert.Equal(t, NewError(errors.New("x", errors.KindFail)), err)
}

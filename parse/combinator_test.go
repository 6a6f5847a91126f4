package parse

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/parsekit/errors"
)

func TestAlt(t *testing.T) {
	ab := Alt(Tag[string, strErr]("a"), Tag[string, strErr]("b"))

	rest, out, err := ParseComplete(ab, "bc")
	require.Nil(t, err)
	assert.Equal(t, "b", out)
	assert.Equal(t, "c", rest)

	t.Run("later branch error wins, innermost kept", func(t *testing.T) {
		p := Alt(
			Context("first", Tag[string, strErr]("x")),
			Preceded(Tag[string, strErr]("c"), Digit1[string, strErr]()),
		)
		_, _, err := ParseComplete(p, "cz")
		require.NotNil(t, err)
		assert.Equal(t, OutcomeError, err.Outcome)
		assert.Equal(t, errors.New("z", errors.KindDigit), err.Inner)
	})

	t.Run("verbose trace records alt", func(t *testing.T) {
		type E = errors.Verbose[string]
		p := Alt(Tag[string, E]("a"), Tag[string, E]("b"))

		_, _, err := ParseComplete(p, "z")
		require.NotNil(t, err)
		require.Len(t, err.Inner.Frames, 2)
		assert.Equal(t, errors.KindTag, err.Inner.Frames[0].Kind)
		assert.Equal(t, errors.KindAlt, err.Inner.Frames[1].Kind)
	})

	t.Run("failure stops search", func(t *testing.T) {
		p := Alt(Cut(Tag[string, strErr]("a")), Tag[string, strErr]("b"))
		_, _, err := ParseComplete(p, "b")
		require.NotNil(t, err)
		assert.Equal(t, OutcomeFailure, err.Outcome)
		assert.Equal(t, errors.New("b", errors.KindTag), err.Inner)
	})

	t.Run("incomplete stops search", func(t *testing.T) {
		p := Alt(Tag[string, strErr]("abc"), Tag[string, strErr]("x"))
		_, _, err := Parse(p, "ab")
		require.NotNil(t, err)
		assert.True(t, err.Incomplete())
	})

	t.Run("no branches", func(t *testing.T) {
		_, _, err := ParseComplete(Alt[string, string, strErr](), "q")
		assert.Equal(t, NewError(errors.New("q", errors.KindAlt)), err)
	})
}

func TestCut(t *testing.T) {
	p := Cut(Char[string, strErr]('a'))

	rest, _, err := ParseComplete(p, "ab")
	require.Nil(t, err)
	assert.Equal(t, "b", rest)

	_, _, err = Parse(p, "")
	assert.True(t, err.Incomplete())

	_, _, err = Parse(p, "b")
	assert.Equal(t, NewFailure(errors.New("b", errors.KindChar)), err)
}

func TestComplete(t *testing.T) {
	p := Complete(Tag[string, strErr]("abc"))

	_, _, err := Parse(p, "ab")
	assert.Equal(t, NewError(errors.New("ab", errors.KindComplete)), err)
}

func TestMapRes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := MapRes(Digit1[string, strErr](), strconv.Atoi)
		rest, n, err := ParseComplete(p, "42;")
		require.Nil(t, err)
		assert.Equal(t, 42, n)
		assert.Equal(t, ";", rest)
	})

	t.Run("default error drops cause", func(t *testing.T) {
		p := MapRes(Digit1[string, strErr](), func(s string) (uint8, error) {
			n, err := strconv.ParseUint(s, 10, 8)
			return uint8(n), err
		})
		_, _, err := ParseComplete(p, "300")
		assert.Equal(t, NewError(errors.New("300", errors.KindMapRes)), err)
	})

	t.Run("verbose error keeps cause", func(t *testing.T) {
		type E = errors.Verbose[string]
		p := MapRes(Digit1[string, E](), func(s string) (uint8, error) {
			n, err := strconv.ParseUint(s, 10, 8)
			return uint8(n), err
		})
		_, _, err := ParseComplete(p, "300")
		require.NotNil(t, err)
		assert.True(t, stderrors.Is(err, strconv.ErrRange))
		assert.True(t, errors.HasKind(err, errors.KindMapRes))
	})
}

func TestVerify(t *testing.T) {
	even := Verify(MapRes(Digit1[string, strErr](), strconv.Atoi), func(n int) bool { return n%2 == 0 })

	_, n, err := ParseComplete(even, "12")
	require.Nil(t, err)
	assert.Equal(t, 12, n)

	_, _, err = ParseComplete(even, "13")
	assert.Equal(t, NewError(errors.New("13", errors.KindVerify)), err)
}

func TestSequence(t *testing.T) {
	key := Terminated(Alpha1[string, strErr](), Char[string, strErr]('='))
	pair := Tuple(key, Digit1[string, strErr]())

	rest, out, err := ParseComplete(pair, "port=80,")
	require.Nil(t, err)
	assert.Equal(t, Pair[string, string]{First: "port", Second: "80"}, out)
	assert.Equal(t, ",", rest)

	rest, _, err = ParseComplete(pair, "port:80")
	assert.Equal(t, "port:80", rest)
	assert.Equal(t, NewError(errors.New(":80", errors.KindChar)), err)

	value := Preceded(Char[string, strErr]('='), Digit1[string, strErr]())
	_, out2, err := ParseComplete(value, "=7")
	require.Nil(t, err)
	assert.Equal(t, "7", out2)

	_, _, err = ParseComplete(Map(Digit1[string, strErr](), func(s string) int { return len(s) }), "x")
	assert.Equal(t, NewError(errors.New("x", errors.KindDigit)), err)
}

func TestSeparatedList1(t *testing.T) {
	list := SeparatedList1(Char[string, strErr](','), Digit1[string, strErr]())

	tests := []struct {
		name     string
		input    string
		want     []string
		wantRest string
		wantErr  *Err[strErr]
	}{
		{"single", "1;", []string{"1"}, ";", nil},
		{"many", "1,22,333;", []string{"1", "22", "333"}, ";", nil},
		{"trailing separator", "1,2,;", []string{"1", "2"}, ",;", nil},
		{"empty", ";", nil, ";", NewError(errors.New(";", errors.KindDigit))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, out, err := ParseComplete(list, tt.input)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, out)
			assert.Equal(t, tt.wantRest, rest)
		})
	}

	t.Run("separator consuming nothing", func(t *testing.T) {
		p := SeparatedList1(Space0[string, strErr](), Digit1[string, strErr]())
		_, _, err := ParseComplete(p, "1x")
		assert.Equal(t, NewError(errors.New("x", errors.KindSeparatedList)), err)
	})

	t.Run("verbose appends list kind", func(t *testing.T) {
		type E = errors.Verbose[string]
		p := SeparatedList1(Char[string, E](','), Digit1[string, E]())
		_, _, err := ParseComplete(p, "x")
		require.NotNil(t, err)
		require.Len(t, err.Inner.Frames, 2)
		assert.Equal(t, errors.KindSeparatedList, err.Inner.Frames[1].Kind)
	})
}

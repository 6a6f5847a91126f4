package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// furthest keeps the alternative that got furthest into the input.
type furthest struct {
	rest int
	kind Kind
}

func (furthest) FromErrorKind(input string, kind Kind) furthest {
	return furthest{rest: len(input), kind: kind}
}

func (furthest) Append(input string, kind Kind, other furthest) furthest {
	return KeepPrevious(input, kind, other)
}

func (furthest) FromChar(input string, c rune) furthest {
	return CharError[string, furthest](input, c)
}

func (f furthest) Or(other furthest) furthest {
	if f.rest < other.rest {
		return f
	}
	return PreferOther(f, other)
}

func TestPolicies(t *testing.T) {
	t.Run("KeepPrevious", func(t *testing.T) {
		assert.Equal(t, 3, KeepPrevious("ignored", KindAlt, 3))
	})

	t.Run("PreferOther", func(t *testing.T) {
		assert.Equal(t, "b", PreferOther("a", "b"))
	})

	t.Run("IgnoreContext", func(t *testing.T) {
		assert.Equal(t, "prev", IgnoreContext(0, "label", "prev"))
	})

	t.Run("CharError", func(t *testing.T) {
		assert.Equal(t, furthest{rest: 2, kind: KindChar}, CharError[string, furthest]("xy", 'a'))
	})

	t.Run("DropExternal", func(t *testing.T) {
		got := DropExternal[string, Error[string]]("x", KindMapOpt, assert.AnError)
		assert.Equal(t, New("x", KindMapOpt), got)
	})
}

func TestCustomOrPolicy(t *testing.T) {
	near := MakeError[string, furthest]("abc", KindTag)
	far := MakeError[string, furthest]("c", KindDigit)

	assert.Equal(t, far, near.Or(far))
	assert.Equal(t, far, far.Or(near))
	assert.Equal(t, far, AppendError("abc", KindAlt, far))
}

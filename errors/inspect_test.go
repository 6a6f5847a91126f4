package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   Kind
		wantOK bool
	}{
		{"nil", nil, 0, false},
		{"plain error", fmt.Errorf("boom"), 0, false},
		{"default error", New("x", KindEof), KindEof, true},
		{"wrapped", fmt.Errorf("outer: %w", New([]byte("x"), KindTag)), KindTag, true},
		{"verbose", MakeCharError[string, Verbose[string]]("x", 'y'), KindChar, true},
		{"empty verbose", Verbose[string]{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KindOf(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, uint32(23), CodeOf(New("", KindEof)))
	assert.Zero(t, CodeOf(fmt.Errorf("boom")))
	assert.False(t, HasKind(New("", KindEof), KindTag))
}

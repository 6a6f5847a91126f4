package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/parsekit/errors"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestDump(t *testing.T) {
	logs := observeLogs(t)
	type E = errors.Error[[]byte]

	p := Dump("tag", Tag[[]byte, E]([]byte("abcd")))

	_, _, err := Parse(p, []byte("efghijkl"))
	require.NotNil(t, err)
	assert.Equal(t, NewError(errors.New([]byte("efghijkl"), errors.KindTag)), err)

	entries := logs.FilterMessage("parse step failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "tag", fields["context"])
	assert.Equal(t, "error", fields["outcome"])
	assert.Equal(t, "00000000\t65 66 67 68 69 6a 6b 6c \tefghijkl\n", fields["input"])

	_, _, err = Parse(p, []byte("abcdz"))
	require.Nil(t, err)
	assert.Equal(t, 1, logs.FilterMessage("parse step failed").Len())
}

func TestTrace(t *testing.T) {
	logs := observeLogs(t)

	p := Trace("digits", Digit1[string, strErr]())

	_, _, err := ParseComplete(p, "123;")
	require.Nil(t, err)
	_, _, err = ParseComplete(p, ";")
	require.NotNil(t, err)

	exits := logs.FilterMessage("exit").All()
	require.Len(t, exits, 2)
	assert.Equal(t, int64(3), exits[0].ContextMap()["consumed"])
	assert.Equal(t, "error", exits[1].ContextMap()["outcome"])
	assert.Equal(t, 2, logs.FilterMessage("enter").Len())
}

func TestLogger_DefaultIsNop(t *testing.T) {
	assert.NotNil(t, Logger())
}

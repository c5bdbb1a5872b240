package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPWritesRawStringToStdout(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`"hi" p`))
	fh := m.host.(*fakeHost)
	assert.Equal(t, "hi", fh.stdout.String())
}

func TestEPWritesToStderr(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`"oops" ep`))
	fh := m.host.(*fakeHost)
	assert.Equal(t, "oops", fh.stderr.String())
}

func TestWritefThenReadfRoundTrips(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`"hello" "/tmp/x" writef`))
	require.NoError(t, m.Interpret(`"/tmp/x" readf p`))
	fh := m.host.(*fakeHost)
	assert.Equal(t, "hello", fh.stdout.String())
}

func TestAppendfCreatesFileIfAbsent(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`"a" "/tmp/y" appendf`))
	require.NoError(t, m.Interpret(`"b" "/tmp/y" appendf`))
	fh := m.host.(*fakeHost)
	assert.Equal(t, "ab", string(fh.files["/tmp/y"]))
}

func TestQuitRequestsCleanExit(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Run(context.Background(), "quit"))
	fh := m.host.(*fakeHost)
	assert.True(t, fh.exited)
	assert.Equal(t, 0, fh.exitCode)
}

func TestExitClampsOutOfRangeCode(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Run(context.Background(), "300 exit"))
	fh := m.host.(*fakeHost)
	assert.True(t, fh.exited)
	assert.Equal(t, 255, fh.exitCode)
}

func TestVersionAndInteractiveHuh(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("interactive?"))
	assert.Equal(t, []Value{Bool(false)}, m.top().Items())

	m = newTestMachine()
	require.NoError(t, m.Interpret("version"))
	assert.Equal(t, []Value{Str("dev")}, m.top().Items())
}

func TestRLReadsOneLine(t *testing.T) {
	m := newTestMachine()
	fh := m.host.(*fakeHost)
	fh.stdinLines = []string{"hello", "world"}
	require.NoError(t, m.Interpret("rl"))
	assert.Equal(t, []Value{Str("hello")}, m.top().Items())
}

func TestRLSurfacesIOErrorOnEmptyStream(t *testing.T) {
	m := newTestMachine()
	err := m.Interpret("rl")
	require.Error(t, err)
	var me *MachineError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrIOError, me.Kind)
}

func TestRLSCollectsAllLinesIncludingTheLast(t *testing.T) {
	m := newTestMachine()
	fh := m.host.(*fakeHost)
	fh.stdinLines = []string{"a", "b", "c"}
	require.NoError(t, m.Interpret("rls"))
	top, ok := m.top().Peek()
	require.True(t, ok)
	assert.Equal(t, []Value{Str("a"), Str("b"), Str("c")}, top.Elems())
}

func TestInspirePicksFromPool(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("inspire"))
	top, ok := m.top().Peek()
	require.True(t, ok)
	assert.Equal(t, KindString, top.Kind())
	assert.NotEmpty(t, top.s)
}

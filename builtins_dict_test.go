package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefBangDefinesAndDefHuhSees(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`[dup *] \square def!`))
	require.NoError(t, m.Interpret(`\square def?`))
	assert.Equal(t, []Value{Bool(true)}, m.top().Items())
}

func TestDefUsageAndUsage(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`[dup *] \square def!`))
	require.NoError(t, m.Interpret(`\square "squares its argument" def-usage`))
	require.NoError(t, m.Interpret(`\square usage`))
	assert.Equal(t, []Value{Str("squares its argument")}, m.top().Items())
}

func TestColonSingleForm(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`5 \five :`))
	require.NoError(t, m.Interpret("five"))
	assert.Equal(t, []Value{Int(5)}, m.top().Items())
}

func TestColonMultiForm(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`1 2 [\a \b] :`))
	require.NoError(t, m.Interpret("a b"))
	assert.Equal(t, []Value{Int(1), Int(2)}, m.top().Items())
}

func TestDefsListsDefinedNames(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("defs"))
	top, ok := m.top().Peek()
	require.True(t, ok)
	assert.NotEmpty(t, top.Elems())
}

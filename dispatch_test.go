package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine() *Machine {
	return New(WithHost(newFakeHost()), WithRandSeed(1))
}

func TestInterpretArithmetic(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("1 2 +"))
	assert.Equal(t, []Value{Int(3)}, m.top().Items())
}

func TestInterpretMapExample(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("[1 2 3] [2 *] map"))
	top, ok := m.top().Peek()
	require.True(t, ok)
	assert.Equal(t, []Value{Int(2), Int(4), Int(6)}, top.Elems())
}

func TestDivisionByZeroRewindsStack(t *testing.T) {
	m := newTestMachine()
	err := m.Interpret("1 0 /")
	require.Error(t, err)
	var me *MachineError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrDivisionByZero, me.Kind)
	assert.Equal(t, []Value{Int(1), Int(0)}, m.top().Items(), "operands must be restored on failure")
}

func TestCommandUndefined(t *testing.T) {
	m := newTestMachine()
	err := m.Interpret("nonesuch")
	require.Error(t, err)
	var me *MachineError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrCommandUndefined, me.Kind)
}

func TestUserDefinedWord(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`[dup *] \square def!`))
	require.NoError(t, m.Interpret("5 square"))
	assert.Equal(t, []Value{Int(25)}, m.top().Items())
}

func TestDoJailsDefinitions(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`[ [1] \one def! ] do`))
	assert.False(t, m.dict.Has("one"), "definitions made inside do must not escape")
}

func TestDoBangPersistsDefinitions(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`[ [1] \one def! ] do!`))
	assert.True(t, m.dict.Has("one"), "definitions made inside do! must persist")
}

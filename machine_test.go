package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopNRewind(t *testing.T) {
	m := New(WithHost(newFakeHost()))
	m.push(Int(1))
	m.push(Int(2))

	_, err := m.popN("test", 5)
	require.Error(t, err)
	assert.Equal(t, 2, m.top().Len(), "underflow must leave the stack untouched")

	vs, err := m.popN("test", 2)
	require.NoError(t, err)
	assert.Equal(t, []Value{Int(1), Int(2)}, vs)
	assert.Equal(t, 0, m.top().Len())
}

func TestOpenCloseContext(t *testing.T) {
	m := New(WithHost(newFakeHost()))
	m.push(Int(1))
	m.openContext()
	m.push(Int(2))
	m.push(Int(3))
	err := m.closeContext()
	require.NoError(t, err)

	top, ok := m.top().Peek()
	require.True(t, ok)
	require.Equal(t, KindQuote, top.Kind())
	assert.Equal(t, []Value{Int(2), Int(3)}, top.Elems())
}

func TestCloseContextUnderflow(t *testing.T) {
	m := New(WithHost(newFakeHost()))
	err := m.closeContext()
	require.Error(t, err)
	var me *MachineError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrContextStackUnderflow, me.Kind)
}

func TestChildDictIsJailed(t *testing.T) {
	m := New(WithHost(newFakeHost()))
	before := m.dict
	err := m.childDict(func() error {
		m.dict.Define("scratch", &DictEntry{Name: "scratch", Builtin: func(*Machine) error { return nil }})
		assert.True(t, m.dict.Has("scratch"))
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, before, m.dict)
	assert.False(t, before.Has("scratch"))
}

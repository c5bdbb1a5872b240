package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAppliesActionPerElement(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("[1 2 3] [2 *] map"))
	top, ok := m.top().Peek()
	require.True(t, ok)
	assert.Equal(t, []Value{Int(2), Int(4), Int(6)}, top.Elems())
}

func TestFilterKeepsElementsWhereActionIsTruthy(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("[1 2 3 4] [2 gt?] filter"))
	top, ok := m.top().Peek()
	require.True(t, ok)
	assert.Equal(t, []Value{Int(3), Int(4)}, top.Elems())
}

func TestAnyHuhShortCircuitsTrue(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("[1 2 3] [2 eq?] any?"))
	assert.Equal(t, []Value{Bool(true)}, m.top().Items())

	m = newTestMachine()
	require.NoError(t, m.Interpret("[1 2 3] [9 eq?] any?"))
	assert.Equal(t, []Value{Bool(false)}, m.top().Items())
}

func TestPushPopEnqDeqAreOppositeEnds(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("[1 2] 3 push pop"))
	assert.Equal(t, []Value{Quote([]Value{Int(1), Int(2)}), Int(3)}, m.top().Items())

	m = newTestMachine()
	require.NoError(t, m.Interpret("[1 2] 3 enq deq"))
	assert.Equal(t, []Value{Quote([]Value{Int(1), Int(2)}), Int(3)}, m.top().Items())
}

func TestLenOnStringAndQuote(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret(`"abc" len`))
	assert.Equal(t, []Value{Int(3)}, m.top().Items())

	m = newTestMachine()
	require.NoError(t, m.Interpret("[1 2 3] len"))
	assert.Equal(t, []Value{Int(3)}, m.top().Items())
}

func TestUnpackSpreadsElements(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("[1 2 3] ..."))
	assert.Equal(t, []Value{Int(1), Int(2), Int(3)}, m.top().Items())
}

func TestRevReversesQuoteAndString(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("[1 2 3] rev"))
	top, ok := m.top().Peek()
	require.True(t, ok)
	assert.Equal(t, []Value{Int(3), Int(2), Int(1)}, top.Elems())

	m = newTestMachine()
	require.NoError(t, m.Interpret(`"abc" rev`))
	assert.Equal(t, []Value{Str("cba")}, m.top().Items())
}

func TestConcatJoinsTwoQuotes(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("[1 2] [3 4] concat"))
	top, ok := m.top().Peek()
	require.True(t, ok)
	assert.Equal(t, []Value{Int(1), Int(2), Int(3), Int(4)}, top.Elems())
}

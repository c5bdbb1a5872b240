package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithIntVsFloatPromotion(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("1 2 +"))
	assert.Equal(t, []Value{Int(3)}, m.top().Items())

	m = newTestMachine()
	require.NoError(t, m.Interpret("1 2.5 +"))
	top, _ := m.top().Peek()
	assert.Equal(t, KindFloat, top.Kind())
	assert.InDelta(t, 3.5, top.f, 0.0001)
}

func TestArithOverflowDetected(t *testing.T) {
	m := newTestMachine()
	src := "9223372036854775807 1 +"
	err := m.Interpret(src)
	require.Error(t, err)
	var me *MachineError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrIntegerOverflow, me.Kind)
}

func TestModFloorsTowardNegativeInfinity(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Interpret("-1 3 %"))
	assert.Equal(t, []Value{Int(2)}, m.top().Items())
}

func TestAbsOfMinInt64Overflows(t *testing.T) {
	m := newTestMachine()
	err := m.Interpret("-9223372036854775808 abs")
	require.Error(t, err)
	var me *MachineError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrIntegerOverflow, me.Kind)
}

func TestCheckedDivIntMinIntByMinusOne(t *testing.T) {
	_, err := checkedDivInt(math.MinInt64, -1)
	require.Error(t, err)
}

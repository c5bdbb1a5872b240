package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/joist/internal/stack"
)

func TestPushPop(t *testing.T) {
	s := stack.New[int](0)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, []int{1, 2, 3}, s.Items())

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, s.Len())
}

func TestPopEmpty(t *testing.T) {
	s := stack.New[int](0)
	_, ok := s.Pop()
	assert.False(t, ok)
}

func TestPopNAllOrNothing(t *testing.T) {
	s := stack.New[int](0)
	s.PushAll([]int{1, 2, 3})

	_, ok := s.PopN(4)
	assert.False(t, ok, "PopN must not partially pop")
	assert.Equal(t, 3, s.Len())

	vs, ok := s.PopN(2)
	require.True(t, ok)
	assert.Equal(t, []int{2, 3}, vs)
	assert.Equal(t, 1, s.Len())
}

func TestCloneIndependence(t *testing.T) {
	s := stack.New[int](0)
	s.PushAll([]int{1, 2, 3})
	clone := s.Clone()
	clone.Push(4)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 4, clone.Len())
}

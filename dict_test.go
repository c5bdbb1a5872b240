package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictChildOverlay(t *testing.T) {
	root := NewDict()
	root.Define("dup", &DictEntry{Name: "dup", Description: "root dup"})

	child := root.Child()
	assert.True(t, child.Has("dup"))
	entry, ok := child.Lookup("dup")
	require.True(t, ok)
	assert.Equal(t, "root dup", entry.Description)

	child.Define("dup", &DictEntry{Name: "dup", Description: "child dup"})
	childEntry, _ := child.Lookup("dup")
	assert.Equal(t, "child dup", childEntry.Description)

	rootEntry, _ := root.Lookup("dup")
	assert.Equal(t, "root dup", rootEntry.Description, "child definitions must not leak into parent")
}

func TestDictNamesDeduped(t *testing.T) {
	root := NewDict()
	root.Define("a", &DictEntry{Name: "a"})
	root.Define("b", &DictEntry{Name: "b"})
	child := root.Child()
	child.Define("b", &DictEntry{Name: "b"})
	child.Define("c", &DictEntry{Name: "c"})
	assert.Equal(t, []string{"a", "b", "c"}, child.Names())
}

func TestIdentOf(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want string
		ok   bool
	}{
		{Str("x"), "x", true},
		{Cmd("y"), "y", true},
		{DeferredCmd("z"), "z", true},
		{Int(1), "", false},
	} {
		s, ok := identOf(tc.v)
		assert.Equal(t, tc.ok, ok)
		assert.Equal(t, tc.want, s)
	}
}

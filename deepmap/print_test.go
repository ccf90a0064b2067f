package deepmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringRendersTraversalOrder(t *testing.T) {
	m := New[string, int]()
	require.Equal(t, "deepmap.Map[]", m.String())

	m.Set([]string{"a"}, 1).Set([]string{"a", "b"}, 2)
	require.Equal(t, "deepmap.Map[[a]:1 [a b]:2]", m.String())

	root := New[string, int]().Set(nil, 7)
	require.Equal(t, "deepmap.Map[[]:7]", root.String())
}

func TestDumpMarksValueNodes(t *testing.T) {
	m := New[string, int]().
		Set([]string{"a"}, 1).
		Set([]string{"a", "b"}, 2).
		Set([]string{"c"}, 3)
	out := m.Dump()
	require.Contains(t, out, "a = 1")
	require.Contains(t, out, "b = 2")
	require.Contains(t, out, "c = 3")
}

func TestDumpShowsBareInteriorNodes(t *testing.T) {
	m := New[string, int]().Set([]string{"x", "y"}, 9)
	out := m.Dump()
	require.Contains(t, out, "x")
	require.NotContains(t, out, "x =", "a pass-through node carries no assignment")
	require.Contains(t, out, "y = 9")
}

func TestDumpShowsRootValue(t *testing.T) {
	m := New[string, int]().Set(nil, 5)
	require.Contains(t, m.Dump(), ". = 5")
}

package deepmap

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String renders the entries in traversal order, one ks:v pair per entry.
// Intended for debug output and test failure messages, not for parsing.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("deepmap.Map[")
	first := true
	for ks, v := range m.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", ks, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Dump renders the node tree with one line per link, marking the nodes that
// hold values. Useful when a test over the prune behaviour fails and the
// question is which interior nodes survived.
func (m *Map[K, V]) Dump() string {
	label := "."
	if m.root.hasValue {
		label = fmt.Sprintf(". = %v", m.root.value)
	}
	tree := treeprint.NewWithRoot(label)
	dumpNode(m.root, tree)
	return tree.String()
}

func dumpNode[K comparable, V any](n *node[K, V], tree treeprint.Tree) {
	for _, e := range n.edges {
		label := fmt.Sprintf("%v", e.key)
		if e.child.hasValue {
			label = fmt.Sprintf("%v = %v", e.key, e.child.value)
		}
		if len(e.child.edges) == 0 {
			tree.AddNode(label)
			continue
		}
		dumpNode(e.child, tree.AddBranch(label))
	}
}

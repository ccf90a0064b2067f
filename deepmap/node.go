package deepmap

import "slices"

// edge records one child link in the order it was first created. The child
// pointer is carried here as well as in the children map so that traversal
// and unlinking never need a map lookup, which would silently miss sub-keys
// that are not equal to themselves (NaN).
type edge[K comparable, V any] struct {
	key   K
	child *node[K, V]
}

// node is one level of the trie. children is the equality keyed lookup used
// when descending a key sequence, edges is the same set of links in first
// insertion order. The value slot is explicit so there is no reserved
// sub-key and a zero V stored by the caller is distinguishable from no value
// at all.
type node[K comparable, V any] struct {
	children map[K]*node[K, V]
	edges    []edge[K, V]
	value    V
	hasValue bool
}

// child returns the node linked under k, or nil if there is no such link.
func (n *node[K, V]) child(k K) *node[K, V] {
	return n.children[k]
}

// ensureChild returns the node linked under k, creating and linking an empty
// node first if the link is absent.
func (n *node[K, V]) ensureChild(k K) *node[K, V] {
	if c := n.children[k]; c != nil {
		return c
	}
	c := &node[K, V]{}
	if n.children == nil {
		n.children = make(map[K]*node[K, V])
	}
	n.children[k] = c
	n.edges = append(n.edges, edge[K, V]{key: k, child: c})
	return c
}

// unlink removes the link for k, where child is the node the descent reached
// through that link. The edge scan matches on the child pointer rather than
// the key so the removal pairs with the link actually traversed.
func (n *node[K, V]) unlink(k K, child *node[K, V]) {
	delete(n.children, k)
	for i := range n.edges {
		if n.edges[i].child == child {
			n.edges = slices.Delete(n.edges, i, i+1)
			return
		}
	}
}

// empty reports whether the node carries no value and no children. An empty
// node other than the root must not remain linked.
func (n *node[K, V]) empty() bool {
	return !n.hasValue && len(n.edges) == 0
}

// setValue stores v in the value slot and reports whether the slot was
// previously vacant.
func (n *node[K, V]) setValue(v V) bool {
	vacant := !n.hasValue
	n.value = v
	n.hasValue = true
	return vacant
}

// clearValue vacates the value slot and reports whether it was occupied. The
// old value is zeroed so it does not pin referenced memory.
func (n *node[K, V]) clearValue() bool {
	occupied := n.hasValue
	var zero V
	n.value = zero
	n.hasValue = false
	return occupied
}

// reset returns the node to its freshly created state, releasing the entire
// subtree below it.
func (n *node[K, V]) reset() {
	n.children = nil
	n.edges = nil
	n.clearValue()
}

// walk visits the subtree rooted at n depth first, the node's own value
// before any descendant, children in first linked order. path holds the
// sub-keys consumed to reach n; yield receives a fresh copy. Returns false
// as soon as yield does.
func (n *node[K, V]) walk(path []K, yield func([]K, V) bool) bool {
	if n.hasValue {
		if !yield(slices.Clone(path), n.value) {
			return false
		}
	}
	for _, e := range n.edges {
		if !e.child.walk(append(path, e.key), yield) {
			return false
		}
	}
	return true
}

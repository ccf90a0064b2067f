package deepmap

import "iter"

// Entry pairs a key sequence with the value stored under it. Iteration
// yields the equivalent of entries, and variadic New accepts them for
// initial population.
type Entry[K comparable, V any] struct {
	Key   []K
	Value V
}

// Map is an associative container keyed by ordered sequences of sub-keys.
// The zero Map is not ready for use; construct with New or Collect. A Map
// holds its state behind a pointer, but copying the struct forks the entry
// count from the shared tree, so pass *Map around, never the value.
type Map[K comparable, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty Map, populated with any entries given. Entries are
// applied in argument order, so a later entry for the same key sequence
// overwrites an earlier one.
func New[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{root: &node[K, V]{}}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Collect gathers the pairs from seq into a new Map, mirroring maps.Collect.
func Collect[K comparable, V any](seq iter.Seq2[[]K, V]) *Map[K, V] {
	m := New[K, V]()
	for ks, v := range seq {
		m.Set(ks, v)
	}
	return m
}

// Len returns the number of entries. It does not traverse.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Set stores v under the key sequence ks, overwriting any previous value,
// and returns m so calls can be chained. Interior nodes are created as
// needed. A nil ks is the empty sequence and addresses the root slot.
func (m *Map[K, V]) Set(ks []K, v V) *Map[K, V] {
	n := m.root
	for _, k := range ks {
		n = n.ensureChild(k)
	}
	if n.setValue(v) {
		m.size++
	}
	return m
}

// Get returns the value stored under ks. The second result reports whether
// an entry was present; when it is false the first result is the zero V,
// which is indistinguishable from a stored zero, so use the second result
// or Has to test membership.
func (m *Map[K, V]) Get(ks []K) (V, bool) {
	n := m.lookup(ks)
	if n == nil || !n.hasValue {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Has reports whether an entry is stored under ks. A node merely passed
// through on the way to deeper entries does not count.
func (m *Map[K, V]) Has(ks []K) bool {
	n := m.lookup(ks)
	return n != nil && n.hasValue
}

// lookup descends ks and returns the node it addresses, or nil if any link
// on the path is absent. Read only: no nodes are created.
func (m *Map[K, V]) lookup(ks []K) *node[K, V] {
	n := m.root
	for _, k := range ks {
		if n = n.child(k); n == nil {
			return nil
		}
	}
	return n
}

// GetOrCreate returns the value stored under ks, calling create for one and
// storing it first if the entry is absent. create runs exactly once on a
// miss and never on a hit. If create panics nothing has been stored and the
// Map is unchanged.
func (m *Map[K, V]) GetOrCreate(ks []K, create func() V) V {
	if v, ok := m.Get(ks); ok {
		return v
	}
	v := create()
	m.Set(ks, v)
	return v
}

// Delete removes the entry stored under ks and reports whether one was
// present. Nodes on the deleted path that are left with no value and no
// children are unlinked, deepest first, stopping at the first node that is
// still live. Deleting an entry never disturbs entries under other key
// sequences, including extensions of ks.
func (m *Map[K, V]) Delete(ks []K) bool {
	// chain[i] is the node reached after consuming ks[:i], so chain[0] is
	// the root and chain[len(ks)] the addressed node.
	chain := make([]*node[K, V], len(ks)+1)
	chain[0] = m.root
	for i, k := range ks {
		c := chain[i].child(k)
		if c == nil {
			return false
		}
		chain[i+1] = c
	}
	if !chain[len(ks)].clearValue() {
		return false
	}
	m.size--
	for i := len(ks); i > 0; i-- {
		if !chain[i].empty() {
			break
		}
		chain[i-1].unlink(ks[i-1], chain[i])
	}
	return true
}

// Clear removes every entry. The root node is retained and emptied in
// place, so iterators and lookups created after Clear see the same Map.
func (m *Map[K, V]) Clear() {
	m.root.reset()
	m.size = 0
}

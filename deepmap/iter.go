package deepmap

import "iter"

// All returns an iterator over the entries of m. Traversal is depth first
// with a node's own value yielded before its descendants, so a stored
// prefix always precedes its stored extensions; at each node children are
// visited in the order their sub-keys were first linked there. Each yielded
// key sequence is a fresh copy owned by the caller; an entry at the root is
// yielded with a nil key sequence. Each range over the returned iterator is
// a fresh traversal and observes the Map as it is at that point.
func (m *Map[K, V]) All() iter.Seq2[[]K, V] {
	return func(yield func([]K, V) bool) {
		m.root.walk(nil, yield)
	}
}

// Keys returns an iterator over the key sequences of m, in the same order
// All yields them.
func (m *Map[K, V]) Keys() iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		for ks := range m.All() {
			if !yield(ks) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of m, in the same order All
// yields them.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Range calls f for each entry in the order All yields them, stopping early
// if f returns false.
func (m *Map[K, V]) Range(f func(ks []K, v V) bool) {
	for ks, v := range m.All() {
		if !f(ks, v) {
			return
		}
	}
}

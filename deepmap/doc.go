package deepmap

/*

# Deep maps (sequence-keyed associative containers)

A Map[K, V] behaves like the builtin map except that every key is a sequence
[]K. Two sequences address the same entry exactly when they have the same
length and their sub-keys are pairwise equal under Go's == for K. The empty
sequence is a valid key and addresses the value slot on the root node.

## Structure

Entries are stored in a trie. Each node holds an optional value slot and a
mapping from sub-key to child node, so all sequences sharing a prefix share
the nodes along that prefix:

	root
	├── "user"            = profile     <- ["user"]
	│   └── "settings"
	│       └── "theme"   = dark        <- ["user", "settings", "theme"]
	└── "session"         = token       <- ["session"]

A node exists only while it is needed: Delete removes the value slot and then
unlinks every node on the deleted path that is left with no value and no
children, walking from the deepest node back toward the root until it meets a
node that is still live. The root is created once per Map and is never
replaced, even by Clear.

## Sub-key equality

Sub-key identity is whatever == means for K, with the builtin map's handling
of the awkward cases. Interface-typed sub-keys compare by dynamic type and
value. Negative and positive floating point zero are one sub-key. A NaN
sub-key equals nothing, itself included: storing through a NaN inserts a new
node each time and lookups through a NaN never succeed, though iteration
still visits whatever was stored. This mirrors what the builtin map does with
NaN keys and is not worked around here.

## Iteration

All, Keys and Values are iterators in the style of the maps package.
Traversal is depth first: a node's own value is yielded before anything below
it, so a stored prefix always precedes its stored extensions, and the
children of a node are visited in the order their sub-keys were first linked
at that node. Unlike the builtin map, iteration order is therefore
deterministic for a given insertion history. Yielded key sequences are fresh
copies; callers may keep or modify them without affecting the Map or the rest
of the traversal. Mutating the Map while a traversal is in progress leaves
the traversal undefined, as with the builtin map.

A Map is not safe for concurrent use. Guard it externally if it is shared,
just as with the builtin map.
*/

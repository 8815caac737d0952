package Trees

import "golang.org/x/exp/constraints"

// A node in the arena.
// The zero value is meaningful: it is the nil node stored at index 0, all of
// whose links point back to itself. A link equal to 0 means there's no node.
type node[T any, S constraints.Unsigned] struct {
	v       T   //never modified once the node is linked into the tree.
	p, l, r S   //parent, left child, right child.
	info    int //free for use by algorithms built on top of the tree; no invariant.
}

package Trees

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Iterator points to a node of a tree, or past the end of it. The zero value is a
// past-the-end Iterator. Iterators stay valid while the tree only grows.
// Clear invalidates every Iterator of the tree; using one afterwards is undefined,
// and it is not reported as ErrEndIterator.
type Iterator[T any, S constraints.Unsigned] struct {
	b *base[T, S]
	i S //0 is past the end.
}

func (u Iterator[T, S]) at() *node[T, S] {
	if u.i == 0 {
		panic(errors.WithStack(ErrEndIterator))
	}
	return &u.b.ns[u.i]
}

// IsEnd returns whether u is past the end.
func (u Iterator[T, S]) IsEnd() bool {
	return u.i == 0
}

// Equal returns true if u and o point to the same node, or both are past the end.
func (u Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return u.i == o.i && (u.i == 0 || u.b == o.b)
}

// Value of the node. Panics with ErrEndIterator if u is past the end.
func (u Iterator[T, S]) Value() T {
	return u.at().v
}

// Next moves u to the node with the next greater value, or past the end if there's none.
// Panics with ErrEndIterator if u is already past the end.
// Time: O(D); amortized O(1) over a full traversal.
func (u *Iterator[T, S]) Next() {
	u.at()
	u.i = u.b.successor(u.i)
}

// Info stored in the node. Panics with ErrEndIterator if u is past the end.
func (u Iterator[T, S]) Info() int {
	return u.at().info
}

// SetInfo stores x in the node. The tree itself never reads it.
func (u Iterator[T, S]) SetInfo(x int) {
	u.at().info = x
}

// String renders the node for debugging: which links are present, the info, and the value.
func (u Iterator[T, S]) String() string {
	if u.i == 0 {
		return "[end]"
	}
	n := &u.b.ns[u.i]
	return fmt.Sprintf("[p:%t; l:%t; r:%t; i:%d; d:%v]", n.p != 0, n.l != 0, n.r != 0, n.info, n.v)
}

package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

var _ Tree[int, uint] = (*BST[int, uint])(nil)

// BST is an unbalanced binary search tree with no repeated values. Nodes live in
// an arena and keep a link to their parent, so iterators advance without a stack
// and the whole tree is released at once by Clear.
// T is the type of values it will hold, S is the type used for node indexes and
// the size; a BST holds at most max(S) values.
// The height D of the tree depends on the insertion order: O(log n) on average
// for random input, n for sorted input.
// BST shouldn't be created directly using struct literal, use New or NewFunc.
type BST[T any, S constraints.Unsigned] struct {
	base[T, S]
}

// New returns an empty BST ordering values with cmp.Compare. hint is the number of values to reserve space for, capped at 1<<20.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *BST[T, S] {
	return &BST[T, S]{makeBase[T, S](hint, cmp.Compare[T])}
}

// NewFunc returns an empty BST ordering values with cmp, which must define a strict total order.
func NewFunc[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) *BST[T, S] {
	return &BST[T, S]{makeBase[T, S](hint, cmp)}
}

// Insert [Tree.Insert]
// A value equal to one already in the tree is not inserted, and the existing node is left unchanged.
// Panics with ErrArenaFull when the tree already holds max(S) values.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Insert(v T) (Iterator[T, S], bool) {
	curI, ord := u.locate(v)
	if curI == 0 {
		u.root = u.alloc(v, 0)
		return Iterator[T, S]{&u.base, u.root}, true
	} else if ord == 0 {
		return Iterator[T, S]{&u.base, curI}, false
	}
	i := u.alloc(v, curI) //may move u.ns, so link after allocating.
	if ord < 0 {
		u.ns[curI].l = i
	} else {
		u.ns[curI].r = i
	}
	return Iterator[T, S]{&u.base, i}, true
}

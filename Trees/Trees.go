package Trees

import "golang.org/x/exp/constraints"

// Tree represents an ordered set of unique values stored in a binary search tree.
// T is the type of values, S is the unsigned type used for node indexes and sizes,
// so a tree can hold at most max(S) values.
// Receivers that have a bool as a second return value indicate whether the first
// return value is defined. Iterators returned by a Tree stay valid while the tree
// only grows; Clear invalidates all of them, and using an invalidated Iterator is
// undefined. Methods implemented recursively should be noted, otherwise they are
// implemented iteratively.
//
// Insert is the capability that distinguishes variants; Find, iteration and
// teardown are shared by every variant through the embedded arena.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert v to the Tree. Returns an Iterator to the node holding v and true if v
	//was added, or an Iterator to the equal value already present and false.
	Insert(v T) (Iterator[T, S], bool)
	//Find the node equal to v. Returns End() if there is none.
	Find(v T) Iterator[T, S]
	//Has v in the tree.
	Has(v T) bool
	//Size of the tree.
	Size() S
	//Empty is equivalent to Size()==0.
	Empty() bool
	//Clear releases every node at once. Using an Iterator obtained before Clear is
	//undefined: it may panic with an index error or point to a node inserted later.
	Clear()
	//ClearFunc calls release on every value, children before their parent, then Clears.
	ClearFunc(release func(T))
	//Begin is the Iterator to the minimum value, or End() when the tree is empty.
	Begin() Iterator[T, S]
	//End is the past-the-end Iterator; [Begin(), End()) covers the values in ascending order.
	End() Iterator[T, S]
	//Minimum value of the tree.
	Minimum() (T, bool)
	//Maximum value of the tree.
	Maximum() (T, bool)
	//Height is the number of nodes on the longest path from the root; 0 for an empty tree.
	Height() S
	//Corrupt returns whether the tree violates the ordering, parent link or size properties.
	Corrupt() bool
}

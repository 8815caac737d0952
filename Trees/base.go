package Trees

import (
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// base is the arena shared by the tree variants. Nodes are never freed one by
// one, so the arena only grows until Clear.
type base[T any, S constraints.Unsigned] struct {
	root S
	ns   []node[T, S] //ns[0] is the nil node. len(ns)=Size()+1.
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	cmp func(T, T) int
}

// maxHint bounds the space reserved up front; larger trees grow the arena by appending.
const maxHint = 1 << 20

func makeBase[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) base[T, S] {
	return base[T, S]{ns: make([]node[T, S], 1, min(uint64(hint), maxHint)+1), cmp: cmp}
}

// alloc a node holding v with parent p. The caller links it to p.
// Panics when S can't address one more node.
func (u *base[T, S]) alloc(v T, p S) S {
	i := S(len(u.ns))
	if uint64(i) != uint64(len(u.ns)) {
		panic(errors.WithStack(ErrArenaFull))
	}
	u.ns = append(u.ns, node[T, S]{v: v, p: p})
	return i
}

// locate v by walking down from the root. If ord==0 and curI!=0, curI holds v.
// Otherwise curI is the node that v would be attached to, on the left if ord<0 and on the right if ord>0.
// curI==0 only when the tree is empty.
// Time: O(D); Space: O(1)
func (u *base[T, S]) locate(v T) (curI S, ord int) {
	for curI = u.root; curI != 0; {
		cur := &u.ns[curI]
		if ord = u.cmp(v, cur.v); ord < 0 && cur.l != 0 {
			curI = cur.l
		} else if ord > 0 && cur.r != 0 {
			curI = cur.r
		} else {
			return
		}
	}
	return
}

func (u *base[T, S]) leftmost(i S) S {
	for u.ns[i].l != 0 {
		i = u.ns[i].l
	}
	return i
}

func (u *base[T, S]) rightmost(i S) S {
	for u.ns[i].r != 0 {
		i = u.ns[i].r
	}
	return i
}

// successor of node i in in-order, 0 if i holds the maximum.
// The climb stops at the root since the root's parent is 0.
// Time: O(D); amortized O(1) over a full traversal. Space: O(1)
func (u *base[T, S]) successor(i S) S {
	if r := u.ns[i].r; r != 0 {
		return u.leftmost(r)
	}
	for p := u.ns[i].p; p != 0; i, p = p, u.ns[p].p {
		if u.ns[p].l == i {
			return p
		}
	}
	return 0
}

// firstLeaf under i, preferring left children. It's the first node of the subtree in post-order.
func (u *base[T, S]) firstLeaf(i S) S {
	for {
		if n := &u.ns[i]; n.l != 0 {
			i = n.l
		} else if n.r != 0 {
			i = n.r
		} else {
			return i
		}
	}
}

// postSuccessor of node i in post-order, 0 if i is the root.
func (u *base[T, S]) postSuccessor(i S) S {
	if p := u.ns[i].p; p != 0 && u.ns[p].l == i && u.ns[p].r != 0 {
		return u.firstLeaf(u.ns[p].r)
	} else {
		return p
	}
}

// walk every node with its depth in pre-order, stopping early when f returns false. The root has depth 1.
// Uses an explicit stack so skewed trees don't grow the call stack.
func (u *base[T, S]) walk(f func(i, d S) bool) {
	if u.root == 0 {
		return
	}
	st := [][2]S{{u.root, 1}} //[index, depth]
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(top[0], top[1]) {
			return
		}
		n := &u.ns[top[0]]
		if n.r != 0 {
			st = append(st, [2]S{n.r, top[1] + 1})
		}
		if n.l != 0 {
			st = append(st, [2]S{n.l, top[1] + 1})
		}
	}
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *base[T, S]) Find(v T) Iterator[T, S] {
	if curI, ord := u.locate(v); curI != 0 && ord == 0 {
		return Iterator[T, S]{u, curI}
	}
	return Iterator[T, S]{u, 0}
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base[T, S]) Has(v T) bool {
	curI, ord := u.locate(v)
	return curI != 0 && ord == 0
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() S {
	return S(len(u.ns) - 1)
}

// Empty [Tree.Empty]
func (u *base[T, S]) Empty() bool {
	return u.root == 0
}

// Clear [Tree.Clear]
// The values are zeroed so that anything they reference can be collected; the
// arena keeps its capacity for later inserts.
// Time: O(n); Space: O(1)
func (u *base[T, S]) Clear() {
	clear(u.ns[1:])
	u.ns, u.root = u.ns[:1], 0
}

// ClearFunc [Tree.ClearFunc]
// Time: O(n); Space: O(1)
func (u *base[T, S]) ClearFunc(release func(T)) {
	if u.root != 0 {
		for i := u.firstLeaf(u.root); i != 0; i = u.postSuccessor(i) {
			release(u.ns[i].v)
		}
	}
	u.Clear()
}

// Begin [Tree.Begin]
// Time: O(D); Space: O(1)
func (u *base[T, S]) Begin() Iterator[T, S] {
	if u.root == 0 {
		return Iterator[T, S]{u, 0}
	}
	return Iterator[T, S]{u, u.leftmost(u.root)}
}

// End [Tree.End]
func (u *base[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{u, 0}
}

// All values in ascending order. The tree mustn't be cleared during the iteration.
func (u *base[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := u.Begin(); !it.IsEnd(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.ns[u.leftmost(u.root)].v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.ns[u.rightmost(u.root)].v, true
}

// Height [Tree.Height]
// Time: O(n); Space: O(D)
func (u *base[T, S]) Height() (h S) {
	u.walk(func(_, d S) bool {
		h = max(h, d)
		return true
	})
	return
}

// AverageDepth of the nodes, which is the average number of comparisons made by a successful Find.
// Time: O(n); Space: O(D)
func (u *base[T, S]) AverageDepth() float64 {
	if u.root == 0 {
		return 0
	}
	var sum float64
	u.walk(func(_, d S) bool {
		sum += float64(d)
		return true
	})
	return sum / float64(u.Size())
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(D)
func (u *base[T, S]) Corrupt() bool {
	if z := u.ns[0]; z.p != 0 || z.l != 0 || z.r != 0 {
		return true
	}
	if u.root == 0 {
		return len(u.ns) != 1
	}
	if u.ns[u.root].p != 0 {
		return true
	}
	corrupt, count := false, 0
	u.walk(func(i, _ S) bool {
		n := &u.ns[i]
		if count++; count >= len(u.ns) { //more nodes than the arena holds: there is a cycle.
			corrupt = true
		} else if n.l != 0 && (u.ns[n.l].p != i || u.cmp(u.ns[n.l].v, n.v) >= 0) {
			corrupt = true
		} else if n.r != 0 && (u.ns[n.r].p != i || u.cmp(u.ns[n.r].v, n.v) <= 0) {
			corrupt = true
		}
		return !corrupt
	})
	if corrupt || count != len(u.ns)-1 {
		return true
	}
	count = 1
	for prev, curI := u.leftmost(u.root), u.successor(u.leftmost(u.root)); curI != 0; prev, curI = curI, u.successor(curI) {
		if count++; count >= len(u.ns) || u.cmp(u.ns[prev].v, u.ns[curI].v) >= 0 {
			return true
		}
	}
	return count != len(u.ns)-1
}

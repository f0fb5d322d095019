package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// The queries below accept nil and an empty root alike as the empty tree.

// Height of t counted in nodes along the longest root to leaf path: 0 for the empty tree,
// 1 for a single node.
// Counts levels breadth first, so degenerate trees don't grow the call stack.
// Time: O(n); Space: O(w), w being the widest level.
func Height[K constraints.Ordered, V any](t *Node[K, V]) int {
	if t.Empty() {
		return 0
	}
	q := Queues.MakeArrayQueue[*Node[K, V]](8)
	q.Push(t)
	h := 0
	for !q.Empty() {
		h++
		for range q.Size() {
			n, _ := q.Pop()
			if n.l != nil {
				q.Push(n.l)
			}
			if n.r != nil {
				q.Push(n.r)
			}
		}
	}
	return h
}

// EdgeHeight of t counted in edges: -1 for the empty tree, 0 for a single node.
func EdgeHeight[K constraints.Ordered, V any](t *Node[K, V]) int {
	return Height(t) - 1
}

// IsValidBST compares every node with its immediate children only: a left child must not be
// greater and a right child must not be smaller than its parent. A grandchild on the wrong
// side of an ancestor goes unnoticed; use IsOrdered for the full check.
// Time: O(n); Space: O(D)
func IsValidBST[K constraints.Ordered, V any](t *Node[K, V]) bool {
	if t.Empty() {
		return true
	}
	for st := []*Node[K, V]{t}; len(st) > 0; {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if n.l != nil {
			if n.l.k > n.k {
				return false
			}
			st = append(st, n.l)
		}
		if n.r != nil {
			if n.r.k < n.k {
				return false
			}
			st = append(st, n.r)
		}
	}
	return true
}

type bounded[K constraints.Ordered, V any] struct {
	n            *Node[K, V]
	lo, hi       K
	hasLo, hasHi bool
}

// IsOrdered checks every key against all of its ancestors: keys in a left subtree are
// smaller than the subtree's parent, keys in a right subtree are not smaller.
// Equal keys are accepted on the right because that is where Insert puts them.
// Time: O(n); Space: O(D)
func IsOrdered[K constraints.Ordered, V any](t *Node[K, V]) bool {
	if t.Empty() {
		return true
	}
	for st := []bounded[K, V]{{n: t}}; len(st) > 0; {
		b := st[len(st)-1]
		st = st[:len(st)-1]
		if (b.hasLo && b.n.k < b.lo) || (b.hasHi && !(b.n.k < b.hi)) {
			return false
		}
		if b.n.l != nil {
			st = append(st, bounded[K, V]{b.n.l, b.lo, b.n.k, b.hasLo, true})
		}
		if b.n.r != nil {
			st = append(st, bounded[K, V]{b.n.r, b.n.k, b.hi, true, b.hasHi})
		}
	}
	return true
}

// IsBalanced compares the heights of the root's two subtrees only; it is true when they
// differ by at most 1. Deeper subtrees may still be unbalanced, see IsHeightBalanced.
func IsBalanced[K constraints.Ordered, V any](t *Node[K, V]) bool {
	if t.Empty() {
		return true
	}
	d := Height(t.l) - Height(t.r)
	return d >= -1 && d <= 1
}

func balancedHeight[K constraints.Ordered, V any](n *Node[K, V]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := balancedHeight(n.l)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.r)
	if !ok || lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// IsHeightBalanced checks at every node that its subtrees differ in height by at most 1.
// Recursive.
// Time: O(n); Space: O(D)
func IsHeightBalanced[K constraints.Ordered, V any](t *Node[K, V]) bool {
	if t.Empty() {
		return true
	}
	_, ok := balancedHeight(t)
	return ok
}

// KthLargest key of t, 1<=k. Duplicate keys count once per node. The bool is false when t has
// fewer than k nodes.
// Walks the tree in reverse in-order and stops at the k-th node.
// Time: O(D+k); Space: O(D)
func KthLargest[K constraints.Ordered, V any](t *Node[K, V], k uint) (K, bool) {
	if t.Empty() || k == 0 {
		return *new(K), false
	}
	st := arraystack.New()
	for cur := t; cur != nil; cur = cur.r {
		st.Push(cur)
	}
	for top, ok := st.Pop(); ok; top, ok = st.Pop() {
		n := top.(*Node[K, V])
		if k--; k == 0 {
			return n.k, true
		}
		for cur := n.l; cur != nil; cur = cur.r {
			st.Push(cur)
		}
	}
	return *new(K), false
}

// ThirdLargest key of t, false when t has fewer than 3 nodes.
func ThirdLargest[K constraints.Ordered, V any](t *Node[K, V]) (K, bool) {
	return KthLargest(t, 3)
}

// InOrder returns a closure f acting like an iterator over the entries of t in ascending key
// order. Calling f is like calling "Next()": k, v, valid = f(). k and v are meaningful only if
// valid is true; once valid is false, f stays exhausted.
// The tree mustn't be modified while f is in use.
// Time: f(): amortized O(1); Space: O(D)
func InOrder[K constraints.Ordered, V any](t *Node[K, V]) func() (K, V, bool) {
	var st []*Node[K, V]
	if !t.Empty() {
		for cur := t; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
	return func() (K, V, bool) {
		if len(st) == 0 {
			return *new(K), *new(V), false
		}
		n := st[len(st)-1]
		st = st[:len(st)-1]
		for cur := n.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		return n.k, n.v, true
	}
}

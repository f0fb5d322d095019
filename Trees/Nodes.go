package Trees

import "golang.org/x/exp/constraints"

// Node of an unbalanced binary search tree. The Node a caller holds as the root is also the
// whole tree: the root is never replaced, removals near the root rewrite its content in place
// so that the caller's pointer stays valid.
// The zero value is an empty tree.
// A tree is not safe for concurrent use; guard it externally if it is shared.
type Node[K constraints.Ordered, V any] struct {
	k    K
	v    V
	has  bool        // false only for the root of an empty tree.
	l, r *Node[K, V] // owned children.
	p    *Node[K, V] // not owned; nil at the root.
	opt  *options    // shared by all nodes of the tree. nil means defaultOptions.
}

// New returns an empty tree.
func New[K constraints.Ordered, V any](opts ...Option) *Node[K, V] {
	return &Node[K, V]{opt: makeOptions(opts)}
}

// NewSeeded returns a tree holding the single entry (k, v).
func NewSeeded[K constraints.Ordered, V any](k K, v V, opts ...Option) *Node[K, V] {
	return &Node[K, V]{k: k, v: v, has: true, opt: makeOptions(opts)}
}

func (u *Node[K, V]) options() *options {
	if u.opt == nil {
		return &defaultOptions
	}
	return u.opt
}

// Key of the node. Undefined when Empty.
func (u *Node[K, V]) Key() K {
	return u.k
}

// Value of the node. Undefined when Empty.
func (u *Node[K, V]) Value() V {
	return u.v
}

func (u *Node[K, V]) Left() *Node[K, V] {
	return u.l
}

func (u *Node[K, V]) Right() *Node[K, V] {
	return u.r
}

// Parent of the node, nil for the root.
func (u *Node[K, V]) Parent() *Node[K, V] {
	return u.p
}

// Empty reports whether the tree rooted at u holds no entry.
func (u *Node[K, V]) Empty() bool {
	return u == nil || !u.has
}

func (u *Node[K, V]) child(k K, v V) *Node[K, V] {
	return &Node[K, V]{k: k, v: v, has: true, p: u, opt: u.opt}
}

// Insert (k, v) into the tree rooted at u. Smaller keys go left, everything else goes right,
// so under DuplicatesRight an equal key becomes a new node in the right subtree.
// Returns true if the tree gained an entry, which is always the case under DuplicatesRight.
// Time: O(D); Space: O(1)
func (u *Node[K, V]) Insert(k K, v V) bool {
	o := u.options()
	if !u.has {
		u.k, u.v, u.has = k, v, true
		o.trace("insert", k, "set empty root")
		return true
	}
	for cur := u; ; {
		if k < cur.k {
			if cur.l == nil {
				cur.l = cur.child(k, v)
				break
			}
			cur = cur.l
		} else {
			if k == cur.k && o.dups != DuplicatesRight {
				if o.dups == DuplicatesReplace {
					cur.v = v
					o.trace("insert", k, "replaced value")
				} else {
					o.trace("insert", k, "rejected duplicate")
				}
				return false
			}
			if cur.r == nil {
				cur.r = cur.child(k, v)
				break
			}
			cur = cur.r
		}
	}
	o.trace("insert", k, "added leaf")
	return true
}

// search for the first node holding k on the path from u. Returns nil when the path ends
// without a match.
func (u *Node[K, V]) search(k K) *Node[K, V] {
	if u.Empty() {
		return nil
	}
	for cur := u; cur != nil; {
		if k == cur.k {
			return cur
		} else if k < cur.k {
			cur = cur.l
		} else if k > cur.k {
			cur = cur.r
		} else {
			return nil //unordered keys such as NaN.
		}
	}
	return nil
}

// Find the value of k in the tree rooted at u. With duplicate keys the shallowest one wins.
// Returns *KeyNotFoundError if k isn't present.
// Time: O(D); Space: O(1)
func (u *Node[K, V]) Find(k K) (V, error) {
	if n := u.search(k); n != nil {
		return n.v, nil
	}
	return *new(V), &KeyNotFoundError[K]{k}
}

// Remove the shallowest node holding k from the tree rooted at u.
// A node with two children takes the entry of its in-order successor, which is then unlinked
// instead. Returns *KeyNotFoundError if k isn't present.
// Time: O(D); Space: O(1)
func (u *Node[K, V]) Remove(k K) error {
	t := u.search(k)
	if t == nil {
		return &KeyNotFoundError[K]{k}
	}
	for t.l != nil && t.r != nil {
		s := t.r.min()
		t.k, t.v = s.k, s.v
		t = s
	}
	if t.l != nil {
		t.replaceWith(t.l)
	} else {
		t.replaceWith(t.r)
	}
	u.options().trace("remove", k, "removed")
	return nil
}

// replaceWith points the parent's link to u at n instead. The root can't be replaced, so it
// takes n's content and children, or becomes empty when n is nil.
func (u *Node[K, V]) replaceWith(n *Node[K, V]) {
	if p := u.p; p != nil {
		if p.l == u {
			p.l = n
		} else if p.r == u {
			p.r = n
		}
		if n != nil {
			n.p = p
		}
		u.p = nil
	} else if n != nil {
		u.k, u.v, u.l, u.r = n.k, n.v, n.l, n.r
		if u.l != nil {
			u.l.p = u
		}
		if u.r != nil {
			u.r.p = u
		}
	} else {
		u.k, u.v, u.has, u.l, u.r = *new(K), *new(V), false, nil, nil
	}
}

func (u *Node[K, V]) min() *Node[K, V] {
	for u.l != nil {
		u = u.l
	}
	return u
}

func (u *Node[K, V]) max() *Node[K, V] {
	for u.r != nil {
		u = u.r
	}
	return u
}

// Min entry of the tree. The bool is false when the tree is empty.
// Time: O(D); Space: O(1)
func (u *Node[K, V]) Min() (K, V, bool) {
	if u.Empty() {
		return *new(K), *new(V), false
	}
	n := u.min()
	return n.k, n.v, true
}

// Max entry of the tree. Among equal maximum keys, the deepest one.
// Time: O(D); Space: O(1)
func (u *Node[K, V]) Max() (K, V, bool) {
	if u.Empty() {
		return *new(K), *new(V), false
	}
	n := u.max()
	return n.k, n.v, true
}

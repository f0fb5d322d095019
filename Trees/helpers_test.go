package Trees

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/constraints"
)

var rg = *rand.New(rand.NewSource(0))

// fingerprint hashes the shape and content of the tree in pre-order.
func fingerprint[K constraints.Ordered, V any](t *Node[K, V]) uint64 {
	d := xxhash.New()
	var walk func(*Node[K, V])
	walk = func(n *Node[K, V]) {
		if n == nil {
			d.Write([]byte{'.'})
			return
		}
		fmt.Fprintf(d, "(%v:%v:%t", n.k, n.v, n.has)
		walk(n.l)
		walk(n.r)
		d.Write([]byte{')'})
	}
	walk(t)
	return d.Sum64()
}

// checkParents verifies every back-reference in the tree rooted at root.
func checkParents[K constraints.Ordered, V any](t *testing.T, root *Node[K, V]) {
	t.Helper()
	if root.p != nil {
		t.Errorf("root %v has parent %v", root.k, root.p.k)
	}
	for st := []*Node[K, V]{root}; len(st) > 0; {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		for _, c := range [2]*Node[K, V]{n.l, n.r} {
			if c != nil {
				if c.p != n {
					t.Errorf("node %v doesn't point back to parent %v", c.k, n.k)
				}
				st = append(st, c)
			}
		}
	}
}

func keys[K constraints.Ordered, V any](t *Node[K, V]) []K {
	var ks []K
	f := InOrder(t)
	for k, _, ok := f(); ok; k, _, ok = f() {
		ks = append(ks, k)
	}
	return ks
}

func build(ks ...int) *Node[int, int] {
	t := New[int, int]()
	for _, k := range ks {
		t.Insert(k, k*10)
	}
	return t
}

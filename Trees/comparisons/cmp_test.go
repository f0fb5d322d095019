package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/puzpuzpuz/xsync/v3"
)

const (
	nKeys = 1 << 16
	nQry  = 1 << 12
)

var (
	keys    = rand.New(rand.NewSource(0)).Perm(nKeys)
	sideEff int
)

func BenchmarkBST(b *testing.B) {
	m := Trees.New[int, int]()
	for _, k := range keys {
		m.Insert(k, k)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff, _ = m.Find(keys[i%nQry])
	}
}

func BenchmarkRedBlack(b *testing.B) {
	m := rbt.NewWithIntComparator()
	for _, k := range keys {
		m.Put(k, k)
	}
	b.ResetTimer()
	for i := range b.N {
		v, _ := m.Get(keys[i%nQry])
		sideEff = v.(int)
	}
}

func BenchmarkBTree(b *testing.B) {
	m := btree.NewOrderedG[int](32)
	for _, k := range keys {
		m.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff, _ = m.Get(keys[i%nQry])
	}
}

func BenchmarkLLRB(b *testing.B) {
	m := llrb.New()
	for _, k := range keys {
		m.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = int(m.Get(llrb.Int(keys[i%nQry])).(llrb.Int))
	}
}

func BenchmarkHaxMap(b *testing.B) {
	m := haxmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff, _ = m.Get(keys[i%nQry])
	}
}

func BenchmarkHashMap(b *testing.B) {
	m := hashmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff, _ = m.Get(keys[i%nQry])
	}
}

func BenchmarkXsyncMap(b *testing.B) {
	m := xsync.NewMapOf[int, int]()
	for _, k := range keys {
		m.Store(k, k)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff, _ = m.Load(keys[i%nQry])
	}
}

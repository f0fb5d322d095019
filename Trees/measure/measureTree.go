// measure reports how insertion order shapes an unbalanced tree: height, balance and lookup
// cost for random and sorted inputs of growing size.
package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/sirupsen/logrus"
)

const (
	bNumSteps = 8
	bStepN    = 500
)

var _R = rand.New(rand.NewSource(0))

func build(all []int) *Trees.Node[int, int] {
	tree := Trees.New[int, int]()
	for i, v := range all {
		tree.Insert(v, i)
	}
	return tree
}

func measure(order string, all []int) {
	tree := build(all)
	br := testing.Benchmark(func(b *testing.B) {
		for i := range b.N {
			tree.Find(all[i%len(all)])
		}
	})
	third, _ := Trees.ThirdLargest(tree)
	logrus.WithFields(logrus.Fields{
		"order":    order,
		"n":        len(all),
		"height":   Trees.Height(tree),
		"optimal":  int(math.Ceil(math.Log2(float64(len(all) + 1)))),
		"balanced": Trees.IsHeightBalanced(tree),
		"third":    third,
		"ns/find":  br.NsPerOp(),
	}).Info("measured")
}

func main() {
	testing.Init()
	for i := 1; i <= bNumSteps; i++ {
		n := i * bStepN
		measure("random", _R.Perm(n))
		sorted := make([]int, n)
		for j := range sorted {
			sorted[j] = j
		}
		measure("sorted", sorted)
	}
}

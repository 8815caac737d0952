// measureTree reports the shape of unbalanced trees built from random or sorted
// input, and times Insert and Find on them.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
)

var (
	n      = flag.Uint("n", 100000, "number of values to insert")
	seed   = flag.Int64("seed", 0, "seed of the random input")
	sorted = flag.Bool("sorted", false, "insert the values in ascending order")
	runs   = flag.Int("runs", 5, "number of trees to build and average over")
)

func input(r *rand.Rand) []int {
	vs := r.Perm(int(*n))
	if *sorted {
		slices.Sort(vs)
	}
	return vs
}

func build(vs []int) *Trees.BST[int, uint32] {
	tree := Trees.New[int, uint32](uint32(len(vs)))
	for _, v := range vs {
		tree.Insert(v)
	}
	return tree
}

var __r1 bool

func main() {
	testing.Init()
	flag.Parse()
	r := rand.New(rand.NewSource(*seed))

	var depths, heights []float64
	for range *runs {
		tree := build(input(r))
		if tree.Corrupt() {
			panic("corrupt tree")
		}
		depths = append(depths, tree.AverageDepth())
		heights = append(heights, float64(tree.Height()))
	}
	fmt.Printf("size: %d, sorted: %t\n", *n, *sorted)
	fmt.Printf("average depth: %f, average height: %f\n", mean(depths), mean(heights))

	vs := input(r)
	ins := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			build(vs)
		}
	})
	tree := build(vs)
	qry := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			for _, v := range vs {
				__r1 = tree.Has(v)
			}
		}
	})
	fmt.Printf("insert: %fms/op\n", float64(ins.NsPerOp())/1e6)
	fmt.Printf("find all: %fms/op\n", float64(qry.NsPerOp())/1e6)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64 = 0
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}

package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-bst/Trees"
)

// point lookups against hash maps, the usual alternative when ordered iteration isn't needed.
// compares with https://github.com/cornelk/hashmap and https://github.com/alphadose/haxmap.
func setupHashMap(b *testing.B) *hashmap.Map[int, struct{}] {
	b.Helper()
	m := hashmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, struct{}] {
	b.Helper()
	m := haxmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func BenchmarkInsertHashMap(b *testing.B) {
	for range b.N {
		setupHashMap(b)
	}
}

func BenchmarkInsertHaxMap(b *testing.B) {
	for range b.N {
		setupHaxMap(b)
	}
}

func BenchmarkFindHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkFindHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

// TestSameMembership checks Find against the hash maps for present and absent keys.
func TestSameMembership(t *testing.T) {
	bst := Trees.New[int, uint32](0)
	hm := hashmap.New[int, struct{}]()
	hx := haxmap.New[int, struct{}]()
	for _, k := range keys[:len(keys)/2] {
		bst.Insert(k)
		hm.Set(k, struct{}{})
		hx.Set(k, struct{}{})
	}
	for _, k := range keys {
		_, inHm := hm.Get(k)
		_, inHx := hx.Get(k)
		if in := !bst.Find(k).IsEnd(); in != inHm || in != inHx {
			t.Errorf("membership of %d differs: BST %t, hashmap %t, haxmap %t", k, in, inHm, inHx)
		}
	}
}

package btree

import (
	"math/rand"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tree, err := New[int](Config{})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(r.Int())
	}
}

func BenchmarkSearch(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tree, err := New[int](Config{})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	const n = 1 << 16
	for i := 0; i < n; i++ {
		tree.Insert(r.Intn(n))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Search(i % n)
	}
}

func BenchmarkTraverse(b *testing.B) {
	tree, err := New[int](Config{})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	for i := 0; i < 1<<14; i++ {
		tree.Insert(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sink int
		for key := range tree.Keys() {
			sink += key
		}
		_ = sink
	}
}

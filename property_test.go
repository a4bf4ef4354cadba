package btree

import (
	"math/rand"
	"sort"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedInsertProperty -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzInsertProperty -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test . -run 'FuzzInsertProperty/<id>'

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model []int) {
	t.Helper()

	sorted := append([]int(nil), model...)
	sort.Ints(sorted)
	got := collectKeys(tree)
	if len(got) != len(sorted) {
		t.Fatalf("model length mismatch: got=%d want=%d", len(got), len(sorted))
	}
	for i := range sorted {
		if got[i] != sorted[i] {
			t.Fatalf("model mismatch at %d: got=%d want=%d", i, got[i], sorted[i])
		}
	}
	if tree.Len() != len(model) {
		t.Fatalf("Len mismatch: got=%d want=%d", tree.Len(), len(model))
	}
	for _, key := range model {
		if !tree.Search(key) {
			t.Fatalf("inserted key %d not found", key)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestRandomizedInsertProperty(t *testing.T) {
	r := rand.New(rand.NewSource(4711))
	for _, degree := range []int{2, 3, 6} {
		tree, err := New[int](Config{Degree: degree})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		var model []int
		for step := 0; step < 2000; step++ {
			key := r.Intn(500) // small key space provokes duplicates
			tree.Insert(key)
			model = append(model, key)
		}
		assertTreeMatchesModel(t, tree, model)
	}
}

func FuzzInsertProperty(f *testing.F) {
	f.Add([]byte{10, 20, 10, 5})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, input []byte) {
		tree, err := New[int](Config{Degree: 2})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		model := make([]int, 0, len(input))
		for _, b := range input {
			tree.Insert(int(b))
			model = append(model, int(b))
		}
		assertTreeMatchesModel(t, tree, model)
	})
}

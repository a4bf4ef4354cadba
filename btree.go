package btree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

const (
	// DefaultDegree is the minimum degree used when a Config leaves Degree unset.
	DefaultDegree = 6
	// MinDegree is the smallest legal minimum degree for a B-tree.
	MinDegree = 2
)

// Config configures a Tree.
//
// The zero value is valid and selects DefaultDegree with multiset semantics.
type Config struct {
	// Degree is the minimum degree t of the tree. Every node except the root
	// will hold between t−1 and 2t−1 keys. 0 selects DefaultDegree.
	Degree int
	// Unique switches the tree from multiset to set semantics: inserting a
	// key which is already present leaves the tree unchanged.
	Unique bool
}

func (cfg Config) normalized() Config {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Degree < MinDegree {
		return fmt.Errorf("%w: %d (minimum is %d)", ErrInvalidDegree, cfg.Degree, MinDegree)
	}
	return nil
}

// Tree is an in-memory B-tree over ordered keys.
//
// An empty tree has no root node; the first insertion allocates a leaf root.
// Not thread-safe.
type Tree[K cmp.Ordered] struct {
	cfg    Config
	root   *node[K]
	height int // 0 means empty tree
	size   int // number of stored keys, duplicates included
}

// New creates an empty tree with validated configuration.
func New[K cmp.Ordered](cfg Config) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config {
	return t.cfg
}

// Degree returns the minimum degree t of the tree.
func (t *Tree[K]) Degree() int {
	return t.cfg.Degree
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of stored keys, duplicates included.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Insert adds a key to the tree, keeping all keys in sorted order.
//
// Equal keys are stored side by side unless the tree is configured with
// Unique, in which case duplicates are dropped silently.
func (t *Tree[K]) Insert(key K) {
	if t.cfg.Unique && t.Search(key) {
		return
	}
	if t.root == nil {
		r := newNode[K](t.cfg.Degree, true)
		r.keys = append(r.keys, key)
		t.root = r
		t.height = 1
		t.size = 1
		return
	}
	if t.root.full() {
		// The root overflows: grow the tree by one level. This is the only
		// place where tree height increases.
		s := newNode[K](t.cfg.Degree, false)
		s.children = append(s.children, t.root)
		s.splitChild(0)
		i := 0
		if s.keys[0] < key {
			i++
		}
		s.children[i].insertNonFull(key)
		t.root = s
		t.height++
		T().Debugf("btree: root split, tree height now %d", t.height)
	} else {
		t.root.insertNonFull(key)
	}
	t.size++
}

// Search reports whether a key is present in the tree.
//
// Search never mutates the tree and may be called any number of times with
// identical results.
func (t *Tree[K]) Search(key K) bool {
	if t == nil || t.root == nil {
		return false
	}
	return t.root.search(key) != nil
}

package btree

import "cmp"

// node is the unit of storage of a Tree. Keys are kept sorted in keys; an
// internal node with n keys links to n+1 children, where children[i] roots
// the subtree of keys between keys[i−1] and keys[i]. Each node exclusively
// owns its children.
type node[K cmp.Ordered] struct {
	degree   int  // minimum degree t, identical for all nodes of a tree
	leaf     bool // fixed at construction
	keys     []K  // sorted; len(keys) is the key count n, cap is 2t−1
	children []*node[K]
}

func newNode[K cmp.Ordered](degree int, leaf bool) *node[K] {
	// Child storage is reserved for leaves, too: a node's leaf flag, not its
	// storage, controls usage, which keeps splitChild free of special cases.
	return &node[K]{
		degree:   degree,
		leaf:     leaf,
		keys:     make([]K, 0, 2*degree-1),
		children: make([]*node[K], 0, 2*degree),
	}
}

func (nd *node[K]) full() bool {
	return len(nd.keys) == 2*nd.degree-1
}

// search returns the node within this subtree holding key, or nil.
func (nd *node[K]) search(key K) *node[K] {
	i := 0
	for i < len(nd.keys) && key > nd.keys[i] {
		i++
	}
	if i < len(nd.keys) && nd.keys[i] == key {
		return nd
	}
	if nd.leaf {
		return nil
	}
	return nd.children[i].search(key)
}

// insertNonFull places key into the subtree rooted at this node. The node
// itself must not be full; descending into a full child splits it first, so
// the precondition holds recursively.
func (nd *node[K]) insertNonFull(key K) {
	assert(!nd.full(), "insertNonFull called on a full node")
	i := len(nd.keys) - 1
	if nd.leaf {
		var zero K
		nd.keys = append(nd.keys, zero)
		for i >= 0 && nd.keys[i] > key {
			nd.keys[i+1] = nd.keys[i]
			i--
		}
		nd.keys[i+1] = key
		return
	}
	for i >= 0 && nd.keys[i] > key {
		i--
	}
	// Child to descend into is children[i+1].
	if nd.children[i+1].full() {
		nd.splitChild(i + 1)
		// The split promoted a separator into keys[i+1]; re-compare to pick
		// the correct one of the two halves.
		if nd.keys[i+1] < key {
			i++
		}
	}
	nd.children[i+1].insertNonFull(key)
}

// splitChild splits the full child at index i into two nodes of t−1 keys
// each and promotes the child's middle key into this node.
func (nd *node[K]) splitChild(i int) {
	t := nd.degree
	y := nd.children[i]
	assert(y.full(), "splitChild requires a full child")
	z := newNode[K](t, y.leaf)
	z.keys = append(z.keys, y.keys[t:]...)
	mid := y.keys[t-1]
	y.keys = y.keys[:t-1]
	if !y.leaf {
		z.children = append(z.children, y.children[t:]...)
		clear(y.children[t:])
		y.children = y.children[:t]
	}
	nd.children = append(nd.children, nil)
	copy(nd.children[i+2:], nd.children[i+1:])
	nd.children[i+1] = z
	var zero K
	nd.keys = append(nd.keys, zero)
	copy(nd.keys[i+1:], nd.keys[i:])
	nd.keys[i] = mid
}

// each walks the subtree in-order, yielding every key in ascending order.
// Returns false as soon as yield does.
func (nd *node[K]) each(yield func(K) bool) bool {
	for i, key := range nd.keys {
		if !nd.leaf && !nd.children[i].each(yield) {
			return false
		}
		if !yield(key) {
			return false
		}
	}
	if !nd.leaf {
		return nd.children[len(nd.keys)].each(yield)
	}
	return true
}

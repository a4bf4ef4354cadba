package btree

import (
	"cmp"
	"iter"
)

// Keys returns an in-order iterator over all keys of the tree, ascending,
// duplicates included. An empty tree yields nothing. Every call re-walks the
// tree from the root.
func (t *Tree[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t == nil || t.root == nil {
			return
		}
		t.root.each(yield)
	}
}

// ForEachKey walks all keys in ascending order, calling fn for each.
//
// Iteration stops early if fn returns false.
func (t *Tree[K]) ForEachKey(fn func(key K) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.root.each(fn)
}

// NodeInfo describes one node during a structural Walk.
type NodeInfo[K cmp.Ordered] struct {
	Depth int  // 0 for the root
	Leaf  bool // true if the node has no children
	Keys  []K  // the node's keys; valid only within the Walk callback
}

// Walk visits every node of the tree in depth-first pre-order, handing a
// NodeInfo to fn. It exposes the node structure for debugging frontends
// without granting access to the nodes themselves.
//
// Iteration stops early if fn returns false.
func (t *Tree[K]) Walk(fn func(info NodeInfo[K]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.walkNode(t.root, 0, fn)
}

func (t *Tree[K]) walkNode(nd *node[K], depth int, fn func(info NodeInfo[K]) bool) bool {
	assert(nd != nil, "walkNode called with nil node")
	if !fn(NodeInfo[K]{Depth: depth, Leaf: nd.leaf, Keys: nd.keys}) {
		return false
	}
	for _, child := range nd.children {
		if !t.walkNode(child, depth+1, fn) {
			return false
		}
	}
	return true
}

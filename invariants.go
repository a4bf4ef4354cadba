package btree

import (
	"fmt"
)

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: it verifies key
// ordering within and across nodes, the fanout bounds derived from the
// minimum degree, uniform leaf depth, and the tracked size and height.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.root == nil {
		if t.height != 0 || t.size != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and size=0", ErrInvalidTree)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvalidTree)
	}
	keys, height, err := t.checkNode(t.root, true, nil, nil)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalidTree, height, t.height)
	}
	if keys != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvalidTree, keys, t.size)
	}
	return nil
}

// checkNode recursively validates the subtree at nd. lo and hi, when non-nil,
// are the separator bounds inherited from ancestors; with multiset semantics
// keys equal to a separator are legal on either side.
func (t *Tree[K]) checkNode(nd *node[K], isRoot bool, lo, hi *K) (keys int, height int, err error) {
	if nd == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvalidTree)
	}
	if nd.degree != t.cfg.Degree {
		return 0, 0, fmt.Errorf("%w: node degree %d differs from tree degree %d",
			ErrInvalidTree, nd.degree, t.cfg.Degree)
	}
	n := len(nd.keys)
	if n > 2*nd.degree-1 {
		return 0, 0, fmt.Errorf("%w: node holds %d keys, more than 2t−1 = %d",
			ErrInvalidTree, n, 2*nd.degree-1)
	}
	if !isRoot && n < nd.degree-1 {
		return 0, 0, fmt.Errorf("%w: non-root node holds %d keys, fewer than t−1 = %d",
			ErrInvalidTree, n, nd.degree-1)
	}
	if isRoot && n == 0 {
		return 0, 0, fmt.Errorf("%w: allocated root without keys", ErrInvalidTree)
	}
	for i := 1; i < n; i++ {
		if nd.keys[i] < nd.keys[i-1] {
			return 0, 0, fmt.Errorf("%w: keys out of order at index %d", ErrInvalidTree, i)
		}
	}
	if lo != nil && n > 0 && nd.keys[0] < *lo {
		return 0, 0, fmt.Errorf("%w: key below separator bound", ErrInvalidTree)
	}
	if hi != nil && n > 0 && nd.keys[n-1] > *hi {
		return 0, 0, fmt.Errorf("%w: key above separator bound", ErrInvalidTree)
	}
	if nd.leaf {
		if len(nd.children) != 0 {
			return 0, 0, fmt.Errorf("%w: leaf node with children", ErrInvalidTree)
		}
		return n, 1, nil
	}
	if len(nd.children) != n+1 {
		return 0, 0, fmt.Errorf("%w: internal node with %d keys has %d children, want %d",
			ErrInvalidTree, n, len(nd.children), n+1)
	}
	total := n
	childHeight := 0
	for i, child := range nd.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &nd.keys[i-1]
		}
		if i < n {
			chi = &nd.keys[i]
		}
		cKeys, cHeight, cErr := t.checkNode(child, false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		total += cKeys
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvalidTree)
		}
	}
	return total, childHeight + 1, nil
}

/*
Package btree implements an in-memory ordered index over comparable keys.

# B-trees

B-trees organize keys in short, wide nodes instead of the tall, narrow shape
of binary search trees. Every node holds an ordered run of keys, and internal
nodes interleave those keys with links to subtrees. A single tuning parameter,
the minimum degree t, bounds the fanout: with the exception of the root, each
node carries between t−1 and 2t−1 keys, and the tree grows in height only when
the root itself overflows. All leaves therefore live at the same depth, and
lookups, insertions and in-order traversal run in logarithmic time.

From Wikipedia:
In computer science, a B-tree is a self-balancing tree data structure that
maintains sorted data and allows searches, sequential access, insertions,
and deletions in logarithmic time. The B-tree generalizes the binary search
tree, allowing for nodes with more than two children. […] It is commonly
used in databases and file systems.

The implementation in this package follows the classic insertion algorithm
(Cormen et al., Introduction to Algorithms, ch. 18): while descending towards
a leaf, every full node on the path is split just in time, so that the
insertion position is guaranteed to have room when we arrive. Splitting is
the single rebalancing operation in the package. Deletion is not implemented;
trees of this package are built up and queried, then dropped as a whole.

Keys are kept as a multiset: inserting an equal key twice stores it twice,
and traversal will report it twice. Clients wanting set semantics configure
uniqueness explicitly (see Config).

Trees of this package are not safe for concurrent use. All operations run
synchronously on the caller's goroutine; clients needing shared access have
to serialize it outside, around whole operations.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package btree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

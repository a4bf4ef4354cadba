/*
Package textindex builds sorted word indexes over texts.

An Index is a thin collaborator around a B-tree of strings: it segments input
text into words (following Unicode Annex #29) and inserts every word into the
tree, which then answers membership queries and produces the vocabulary in
sorted order. Large files may be loaded asynchronously, with progress being
broadcast to subscribers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textindex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btree'
func tracer() tracing.Trace {
	return tracing.Select("btree")
}

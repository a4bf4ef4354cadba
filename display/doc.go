/*
Package display renders the node structure of B-trees for debugging consoles.

The package is a read-only client of the core tree: it consumes the structural
walk and does the formatting which the core deliberately leaves to callers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btree'
func tracer() tracing.Trace {
	return tracing.Select("btree")
}

package btree

import "errors"

var (
	// ErrInvalidDegree signals a tree configuration with a minimum degree < 2.
	ErrInvalidDegree = errors.New("btree: invalid minimum degree")
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("btree: illegal arguments")
	// ErrInvalidTree signals a structurally inconsistent tree, as reported by Check.
	ErrInvalidTree = errors.New("btree: invalid tree structure")
)

package ir

import "errors"

// Sentinel errors raised while constructing IR values, before any Variable
// or Node is handed to a Graph.
var (
	// ErrBadOperatorMetadata is returned when an Operator's ViewMap or
	// DestroyMap has a value that is not an ordered sequence of input
	// indices (spec.md §6, §7 "BadOperatorMetadata").
	ErrBadOperatorMetadata = errors.New("operator metadata must map to ordered sequences")

	// ErrOutputTypeCount is returned when NewNode is given a number of
	// output types that doesn't match Operator.NumOutputs.
	ErrOutputTypeCount = errors.New("number of output types does not match operator output count")
)

package fgraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opgraph/opgraph/pkg/ir"
)

// Sentinel errors, one per error kind a Graph operation can raise. Use
// errors.Is against these, or errors.As against the concrete types below
// when the extra fields (the offending Variable, the chain, ...) matter.
var (
	// ErrInconsistency is raised when a Feature reports that a rewrite
	// leaves the graph in a state it refuses to accept.
	ErrInconsistency = errors.New("fgraph: inconsistency reported by a feature")

	// ErrMissingInput is raised by Import/CheckIntegrity when a reachable
	// Variable is neither a declared input nor a constant.
	ErrMissingInput = errors.New("fgraph: missing input")

	// ErrOwnershipConflict is raised when a Variable or Node already
	// belongs to another Graph (its Graph field compares unequal to the
	// graph attempting to claim it).
	ErrOwnershipConflict = errors.New("fgraph: already owned by another graph")

	// ErrTypeMismatch is raised by ChangeInput/Replace when the
	// replacement Variable's type is not Equal to the one it replaces.
	ErrTypeMismatch = errors.New("fgraph: replacement type does not match original")

	// ErrBadOperatorMetadata re-exports ir.ErrBadOperatorMetadata so
	// callers of this package can errors.Is against one sentinel without
	// importing pkg/ir for that purpose alone.
	ErrBadOperatorMetadata = ir.ErrBadOperatorMetadata

	// ErrStructuralCorruption is raised by CheckIntegrity when the graph's
	// own bookkeeping (client lists, node/variable membership, ownership
	// tags) is internally inconsistent — a bug in fgraph itself or in a
	// Feature that mutated ir values directly instead of going through
	// ChangeInput.
	ErrStructuralCorruption = errors.New("fgraph: structural corruption detected")

	// ErrAlreadyThere is returned by an OnAttach implementation to signal
	// that the Feature declines attachment without treating this as a
	// fatal error: Extend silently absorbs it and leaves the graph
	// unchanged instead of propagating it to the caller.
	ErrAlreadyThere = errors.New("fgraph: feature already present")
)

// MissingInputError names the Variable found to have no owner and is not
// a declared input or constant. When the graph was built with verbose
// diagnostics, Chain holds the path of Variables from the Variable whose
// import was requested (a graph output, during New) down to Variable, so
// the caller can see how the missing input was reached.
type MissingInputError struct {
	Variable *ir.Variable
	Chain    []*ir.Variable
}

func (e *MissingInputError) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("%v: %v was not provided as an input and has no owner", ErrMissingInput, e.Variable)
	}
	parts := make([]string, len(e.Chain))
	for i, v := range e.Chain {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%v: %v, reached via %s", ErrMissingInput, e.Variable, strings.Join(parts, " -> "))
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

// TypeMismatchError names the two types a rewrite tried to reconcile.
type TypeMismatchError struct {
	Old, New ir.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%v: %v != %v", ErrTypeMismatch, e.Old, e.New)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// OwnershipConflictError names the value (a *ir.Variable or *ir.Node)
// that already belongs to a different graph.
type OwnershipConflictError struct {
	Value any
}

func (e *OwnershipConflictError) Error() string {
	return fmt.Sprintf("%v: %v", ErrOwnershipConflict, e.Value)
}

func (e *OwnershipConflictError) Unwrap() error { return ErrOwnershipConflict }

// StructuralCorruptionError carries a human-readable description of the
// specific invariant CheckIntegrity found violated.
type StructuralCorruptionError struct {
	Msg string
}

func (e *StructuralCorruptionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrStructuralCorruption, e.Msg)
}

func (e *StructuralCorruptionError) Unwrap() error { return ErrStructuralCorruption }

// InconsistencyError wraps the error a Feature returned when rejecting a
// change; Cause is that original error, if any. errors.Is/errors.As match
// both ErrInconsistency and Cause.
type InconsistencyError struct {
	Msg   string
	Cause error
}

func (e *InconsistencyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s: %v", ErrInconsistency, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%v: %s", ErrInconsistency, e.Msg)
}

func (e *InconsistencyError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInconsistency}
	}
	return []error{ErrInconsistency, e.Cause}
}

package ir

import (
	"fmt"

	"github.com/opgraph/opgraph/pkg/schemameta"
)

// Operator is the opaque application an ir.Node wraps. fgraph never
// interprets an Operator beyond the two optional metadata maps below
// (spec.md §6): it exists purely so a Node has something to be an
// application *of*.
type Operator interface {
	// Name identifies the operator for diagnostics (Graph.String,
	// log fields, telemetry attributes).
	Name() string

	// NumOutputs is the number of output Variables a Node applying this
	// operator produces.
	NumOutputs() int

	// ViewMap optionally declares, for each output index, the input
	// indices it may alias in memory. Nil means "no aliasing".
	ViewMap() map[int][]int

	// DestroyMap optionally declares, for each output index, the input
	// indices it destroys (overwrites) in place. Nil means "nothing
	// destroyed".
	DestroyMap() map[int][]int
}

// SimpleOp is a bare-bones Operator: a name, an output count, and
// optional view/destroy maps. It is sufficient for tests, examples, and
// any caller that doesn't need a richer operator representation.
type SimpleOp struct {
	OpName      string
	Outputs     int
	View        map[int][]int
	DestroyedAt map[int][]int
}

func (o *SimpleOp) Name() string               { return o.OpName }
func (o *SimpleOp) NumOutputs() int            { return o.Outputs }
func (o *SimpleOp) ViewMap() map[int][]int      { return o.View }
func (o *SimpleOp) DestroyMap() map[int][]int   { return o.DestroyedAt }

// validateMetadata enforces spec.md §6: "Both must have values that are
// ordered sequences; violation is a construction-time error." The ordered-
// sequence requirement is checked via a JSON Schema (pkg/schemameta)
// rather than a hand-rolled type switch, so malformed metadata is reported
// with a schema validation error describing which entry failed.
func validateMetadata(op Operator) error {
	if op == nil {
		return nil
	}
	if err := schemameta.ValidateMetadata(op.ViewMap(), op.DestroyMap()); err != nil {
		return fmt.Errorf("%w: operator %q: %v", ErrBadOperatorMetadata, op.Name(), err)
	}
	return nil
}

package toolbox

import (
	"fmt"

	"github.com/opgraph/opgraph/pkg/fgraph"
	"github.com/opgraph/opgraph/pkg/ir"
)

// ReplaceValidate is an fgraph.Feature that rejects any ChangeInput that
// would introduce a cycle: it runs a full Toposort after every rewrite
// and forwards whatever error that produces (including
// traversal.ErrCycle, surfaced through fgraph.Toposort). Only one
// instance may be attached to a given Graph at a time; a second
// ReplaceValidate.OnAttach is absorbed via fgraph.ErrAlreadyThere.
type ReplaceValidate struct{}

// NewReplaceValidate returns a ready-to-attach ReplaceValidate.
func NewReplaceValidate() *ReplaceValidate { return &ReplaceValidate{} }

// OnAttach rejects a second ReplaceValidate on the same graph.
func (r *ReplaceValidate) OnAttach(g *fgraph.Graph) error {
	for _, f := range g.Features() {
		if _, ok := f.(*ReplaceValidate); ok {
			return fmt.Errorf("toolbox: replace_validate: %w", fgraph.ErrAlreadyThere)
		}
	}
	return nil
}

// OnChangeInput runs Toposort and rejects the change if it fails.
func (r *ReplaceValidate) OnChangeInput(g *fgraph.Graph, consumer *ir.Node, index int, old, new *ir.Variable, reason string) error {
	if _, err := g.Toposort(); err != nil {
		return fmt.Errorf("replace of %v with %v (%s) would make the graph invalid: %w", old, new, reason, err)
	}
	return nil
}

// NewValidatedGraph builds a Graph exactly as fgraph.New would, then
// attaches a ReplaceValidate before returning — the "validated by
// default" constructor fg.py's own __init__ always produced, kept one
// layer above the dependency-free core (see pkg/fgraph's doc comment for
// why fgraph.New can't do this itself).
func NewValidatedGraph(inputs, outputs []*ir.Variable, opts ...fgraph.Option) (*fgraph.Graph, error) {
	g, err := fgraph.New(inputs, outputs, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.Extend(NewReplaceValidate()); err != nil {
		return nil, err
	}
	return g, nil
}

package fgraph

import (
	"github.com/opgraph/opgraph/pkg/ir"
	"github.com/opgraph/opgraph/pkg/traversal"
)

// CloneGetEquiv structurally clones the graph (new, unowned Nodes and
// Variables throughout), builds a fresh Graph over the clones, and
// re-attaches each of g's currently attached features onto it, reusing
// the same Feature instances (spec.md §4.8 "clone_get_equiv ... then
// re-attaches the same observer instances (reusing them — the observers
// are responsible for being clone-safe)"). It returns the clone alongside
// the variable and node correspondence maps from the original to the
// clone.
func (g *Graph) CloneGetEquiv() (*Graph, map[*ir.Variable]*ir.Variable, map[*ir.Node]*ir.Node, error) {
	newInputs, newOutputs, varEquiv, err := traversal.CloneGetEquiv(g.Inputs, g.Outputs)
	if err != nil {
		return nil, nil, nil, err
	}

	newG, err := New(newInputs, newOutputs, WithConfig(g.config), WithLogger(g.logger))
	if err != nil {
		return nil, nil, nil, err
	}

	for _, f := range g.features {
		if err := newG.Extend(f); err != nil {
			return nil, nil, nil, err
		}
	}

	nodeEquiv := make(map[*ir.Node]*ir.Node, len(varEquiv))
	for oldVar, newVar := range varEquiv {
		if oldVar.Owner != nil && newVar.Owner != nil {
			nodeEquiv[oldVar.Owner] = newVar.Owner
		}
	}
	return newG, varEquiv, nodeEquiv, nil
}

// Clone returns a structurally identical, independent copy of g (spec.md
// §4.8 "clone"), discarding the correspondence maps CloneGetEquiv
// provides.
func (g *Graph) Clone() (*Graph, error) {
	newG, _, _, err := g.CloneGetEquiv()
	return newG, err
}

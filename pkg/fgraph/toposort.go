package fgraph

import (
	"github.com/opgraph/opgraph/pkg/ir"
	"github.com/opgraph/opgraph/pkg/traversal"
)

// Toposort returns every Node reachable from the graph's outputs, down to
// its inputs, in topological order, honoring any extra precedence
// constraints contributed by attached OrderingsProviders (spec.md §4.7).
func (g *Graph) Toposort() ([]*ir.Node, error) {
	extra, err := g.Orderings()
	if err != nil {
		return nil, err
	}
	return traversal.Toposort(g.Inputs, g.Outputs, extra)
}

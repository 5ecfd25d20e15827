package fgraph

import "github.com/opgraph/opgraph/pkg/ir"

// prune evicts n from the graph: its membership and its outputs'
// membership are cleared, OnPrune fires, and then each of n's own inputs
// is checked for cascading eviction (spec.md §4.3 "prune"). It is a no-op
// while any of n's outputs still has a client (a graph output counts as
// one). n's Inputs
// and Outputs slices are left intact on the *ir.Node value itself — only
// the graph's bookkeeping (Graph fields, membership sets, client sites)
// is undone — so a PruneObserver can still inspect the node's shape.
func (g *Graph) prune(n *ir.Node) {
	if !g.HasNode(n) {
		return
	}
	for _, out := range n.Outputs {
		if len(out.Clients) > 0 {
			return
		}
	}
	delete(g.nodes, n)
	n.Graph = nil
	for _, out := range n.Outputs {
		delete(g.variables, out)
		out.Graph = nil
	}

	g.dispatchPrune(n)

	for i, in := range n.Inputs {
		g.removeClient(in, ir.ClientSite{Node: n, Index: i})
		g.maybePrune(in)
	}
}

// maybePrune prunes v's owner if v is no longer read by anything. Leaf
// variables (declared inputs, constants) are never pruned: they belong to
// the graph's own Inputs frontier, not to the reachability closure.
func (g *Graph) maybePrune(v *ir.Variable) {
	if v.Owner == nil {
		return
	}
	if len(v.Clients) > 0 {
		return
	}
	g.prune(v.Owner)
}

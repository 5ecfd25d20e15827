package fgraph

import (
	"fmt"

	"github.com/opgraph/opgraph/pkg/ir"
)

// CheckIntegrity verifies the graph's bookkeeping: that Toposort succeeds
// (which catches cycles), every Node/Variable's Graph field pointing back
// at g, every output's ownership link pointing at the Node that claims
// it, every client site being mutual (a Node's input list and the
// corresponding Variable's client list agree with each other), and no
// member Variable being a missing input. A Toposort failure is returned
// as Toposort reported it, a missing input as a MissingInputError, and
// any other violation as a StructuralCorruptionError naming the specific
// mismatch. It does not recompute the reachable node and variable sets
// and compare them with the graph's membership sets.
func (g *Graph) CheckIntegrity() error {
	if _, err := g.Toposort(); err != nil {
		return err
	}

	for n := range g.nodes {
		owner, ok := n.Graph.(*Graph)
		if !ok || owner != g {
			return &StructuralCorruptionError{Msg: fmt.Sprintf("node %v does not reference this graph", n)}
		}
		for i, in := range n.Inputs {
			if !g.HasVariable(in) {
				return &StructuralCorruptionError{Msg: fmt.Sprintf("node %v input %v is not a member of the graph", n, in)}
			}
			if !in.HasClient(ir.ClientSite{Node: n, Index: i}) {
				return &StructuralCorruptionError{Msg: fmt.Sprintf("node %v input %v is missing its client back-reference", n, in)}
			}
		}
		for _, out := range n.Outputs {
			if out.Owner != n {
				return &StructuralCorruptionError{Msg: fmt.Sprintf("output %v does not point back to its owner %v", out, n)}
			}
			if !g.HasVariable(out) {
				return &StructuralCorruptionError{Msg: fmt.Sprintf("output %v is not a member of the graph", out)}
			}
		}
	}

	for idx, out := range g.Outputs {
		if !out.HasClient(ir.ClientSite{Index: idx}) {
			return &StructuralCorruptionError{Msg: fmt.Sprintf("output slot %d is missing its client back-reference", idx)}
		}
	}

	declared := make(map[*ir.Variable]bool, len(g.Inputs))
	for _, in := range g.Inputs {
		declared[in] = true
	}
	for v := range g.variables {
		owner, ok := v.Graph.(*Graph)
		if !ok || owner != g {
			return &StructuralCorruptionError{Msg: fmt.Sprintf("variable %v does not reference this graph", v)}
		}
		if v.Owner == nil && !v.IsConstant && !declared[v] {
			return &MissingInputError{Variable: v}
		}
		for _, site := range v.Clients {
			if site.IsOutput() {
				if site.Index < 0 || site.Index >= len(g.Outputs) || g.Outputs[site.Index] != v {
					return &StructuralCorruptionError{Msg: fmt.Sprintf("variable %v claims an output client site that doesn't point back to it", v)}
				}
				continue
			}
			if !g.HasNode(site.Node) {
				return &StructuralCorruptionError{Msg: fmt.Sprintf("variable %v has a client referencing a node outside the graph", v)}
			}
			if site.Index < 0 || site.Index >= len(site.Node.Inputs) || site.Node.Inputs[site.Index] != v {
				return &StructuralCorruptionError{Msg: fmt.Sprintf("variable %v claims a client site that doesn't point back to it", v)}
			}
		}
	}

	return nil
}

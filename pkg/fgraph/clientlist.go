package fgraph

import "github.com/opgraph/opgraph/pkg/ir"

// addClient appends site to v's client list if it isn't already present
// (spec.md §3 invariant 3: no (consumer, index) pair appears twice).
func (g *Graph) addClient(v *ir.Variable, site ir.ClientSite) {
	if v.HasClient(site) {
		return
	}
	v.Clients = append(v.Clients, site)
}

// removeClient deletes site from v's client list, if present.
func (g *Graph) removeClient(v *ir.Variable, site ir.ClientSite) {
	for i, c := range v.Clients {
		if c == site {
			v.Clients = append(v.Clients[:i], v.Clients[i+1:]...)
			return
		}
	}
}

// claimDeclaredInput registers v as belonging to g without requiring an
// owner: used for the graph's own Inputs frontier, which by convention
// has no owner but isn't reached through the normal owner-chasing import
// walk.
func (g *Graph) claimDeclaredInput(v *ir.Variable) error {
	if v.Graph != nil {
		owner, ok := v.Graph.(*Graph)
		if !ok || owner != g {
			return &OwnershipConflictError{Value: v}
		}
		return nil
	}
	v.Graph = g
	g.variables[v] = struct{}{}
	return nil
}

package fgraph

import "github.com/opgraph/opgraph/pkg/ir"

const (
	nodeUnvisited = 0
	nodeVisiting  = 1
	nodeDone      = 2
)

// importer walks backward from a requested Variable through owner edges,
// claiming every Node and Variable it finds for g and reporting the first
// MissingInput or OwnershipConflict it hits. One importer is used per
// top-level call (one per New output, one per ChangeInput/Replace new
// reference): its path stack only needs to span a single walk.
type importer struct {
	g     *Graph
	state map[*ir.Node]int
	path  []*ir.Variable
}

// importVariable ensures v and everything it transitively depends on
// belongs to g, claiming previously-unowned Nodes/Variables along the way
// (spec.md §4.2 "import"). It does not itself add any client site; the
// caller decides how v is consumed.
func (g *Graph) importVariable(v *ir.Variable) error {
	im := &importer{g: g, state: make(map[*ir.Node]int)}
	return im.ensure(v)
}

func (im *importer) ensure(v *ir.Variable) error {
	g := im.g
	if _, ok := g.variables[v]; ok {
		return nil
	}
	if v.IsConstant {
		return im.claimLeaf(v)
	}
	if v.Owner == nil {
		return &MissingInputError{Variable: v, Chain: im.snapshotChain(v)}
	}

	im.path = append(im.path, v)
	err := im.visitNode(v.Owner)
	im.path = im.path[:len(im.path)-1]
	return err
}

func (im *importer) snapshotChain(v *ir.Variable) []*ir.Variable {
	if !im.g.config.VerboseDiagnostics {
		return nil
	}
	chain := append([]*ir.Variable{}, im.path...)
	return append(chain, v)
}

func (im *importer) claimLeaf(v *ir.Variable) error {
	g := im.g
	if v.Graph != nil {
		owner, ok := v.Graph.(*Graph)
		if !ok || owner != g {
			return &OwnershipConflictError{Value: v}
		}
		g.variables[v] = struct{}{}
		return nil
	}
	v.Graph = g
	g.variables[v] = struct{}{}
	return nil
}

func (im *importer) visitNode(n *ir.Node) error {
	g := im.g
	switch im.state[n] {
	case nodeDone:
		return nil
	case nodeVisiting:
		return &StructuralCorruptionError{Msg: "cycle detected while importing " + n.String()}
	}
	if n.Graph != nil {
		owner, ok := n.Graph.(*Graph)
		if !ok || owner != g {
			return &OwnershipConflictError{Value: n}
		}
	}

	im.state[n] = nodeVisiting
	for _, in := range n.Inputs {
		if err := im.ensure(in); err != nil {
			return err
		}
	}
	im.state[n] = nodeDone

	return im.claimNode(n)
}

func (im *importer) claimNode(n *ir.Node) error {
	g := im.g
	n.Graph = g
	g.nodes[n] = struct{}{}
	for _, out := range n.Outputs {
		out.Graph = g
		g.variables[out] = struct{}{}
	}
	for i, in := range n.Inputs {
		g.addClient(in, ir.ClientSite{Node: n, Index: i})
	}
	g.dispatchImport(n)
	return nil
}

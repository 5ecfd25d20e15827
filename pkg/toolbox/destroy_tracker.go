package toolbox

import (
	"fmt"

	"github.com/opgraph/opgraph/pkg/fgraph"
	"github.com/opgraph/opgraph/pkg/ir"
)

// DestroyTracker is an fgraph.Feature that turns each Node's
// Operator.DestroyMap into ordering constraints: if n destroys (reads
// and overwrites) one of its inputs, every other current client of that
// input must run before n does, or their read would observe corrupted
// data. It contributes these constraints to Graph.Toposort via
// OrderingsProvider; it performs no validation of its own (pair it with
// ReplaceValidate to have cycles introduced by a bad destroy assignment
// rejected).
type DestroyTracker struct{}

// NewDestroyTracker returns a ready-to-attach DestroyTracker.
func NewDestroyTracker() *DestroyTracker { return &DestroyTracker{} }

// OnAttach rejects a second DestroyTracker on the same graph.
func (d *DestroyTracker) OnAttach(g *fgraph.Graph) error {
	for _, f := range g.Features() {
		if _, ok := f.(*DestroyTracker); ok {
			return fmt.Errorf("toolbox: destroy_tracker: %w", fgraph.ErrAlreadyThere)
		}
	}
	return nil
}

// Orderings reports, for every destructive Node n, the other current
// clients of each Variable n destroys.
func (d *DestroyTracker) Orderings(g *fgraph.Graph) (map[*ir.Node][]*ir.Node, error) {
	result := make(map[*ir.Node][]*ir.Node)
	for _, n := range g.Nodes() {
		if n.Op == nil {
			continue
		}
		for _, destroyed := range n.Op.DestroyMap() {
			for _, idx := range destroyed {
				if idx < 0 || idx >= len(n.Inputs) {
					return nil, &fgraph.StructuralCorruptionError{Msg: fmt.Sprintf("%v declares a destroy map index %d out of range", n, idx)}
				}
				v := n.Inputs[idx]
				for _, site := range v.Clients {
					if site.IsOutput() || site.Node == n {
						continue
					}
					result[n] = appendUniqueNode(result[n], site.Node)
				}
			}
		}
	}
	return result, nil
}

func appendUniqueNode(list []*ir.Node, n *ir.Node) []*ir.Node {
	for _, existing := range list {
		if existing == n {
			return list
		}
	}
	return append(list, n)
}

package fgraph

import (
	"errors"
	"fmt"

	"github.com/opgraph/opgraph/pkg/ir"
)

// Feature is anything Extend can attach to a Graph. A Feature opts into
// the parts of the observer protocol it cares about by implementing the
// corresponding optional interface below; it need not implement any of
// them to be a valid, if inert, Feature.
//
// Go has no equivalent of the keyword-argument arity fg.py's
// execute_callbacks uses to let on_change_input optionally skip the
// "reason" parameter, so ChangeInputObserver's signature is the single,
// mandatory shape every Feature that wants change notifications must
// implement.
type Feature = any

// Attacher is implemented by a Feature that wants to run logic, or veto
// attachment, when Extend installs it on a Graph. Returning ErrAlreadyThere
// (or an error wrapping it) tells Extend to silently skip installation
// without surfacing an error to the caller; any other error aborts Extend
// and propagates.
type Attacher interface {
	OnAttach(g *Graph) error
}

// Detacher is implemented by a Feature that wants to run cleanup when
// RemoveFeature detaches it. An error here propagates to RemoveFeature's
// caller; the Feature has already been unlinked from the Graph by then.
type Detacher interface {
	OnDetach(g *Graph) error
}

// ImportObserver is notified, once per Node, as that Node and its outputs
// are imported into the Graph (spec.md §4.6 on_import).
type ImportObserver interface {
	OnImport(g *Graph, n *ir.Node)
}

// PruneObserver is notified, once per Node, as that Node is evicted from
// the Graph because none of its outputs have any remaining clients
// (spec.md §4.6 on_prune).
type PruneObserver interface {
	OnPrune(g *Graph, n *ir.Node)
}

// ChangeInputObserver is notified after a single input slot (a Node's
// input, or a graph output) is rewritten to point at a new Variable. An
// error aborts the ChangeInput call and propagates to its caller, even
// though the rewrite itself has already taken effect (spec.md §4.4: the
// rewrite and its notification are not transactional, matching fg.py).
type ChangeInputObserver interface {
	OnChangeInput(g *Graph, consumer *ir.Node, index int, old, new *ir.Variable, reason string) error
}

// OrderingsProvider contributes extra precedence constraints consumed by
// Toposort, beyond the structural input/output edges (spec.md §4.7
// get_order): for a Node n, Orderings()[n] lists Nodes that must be
// visited before n.
type OrderingsProvider interface {
	Orderings(g *Graph) (map[*ir.Node][]*ir.Node, error)
}

// Extend attaches f to the graph. If f implements Attacher, its OnAttach
// is called first; an error wrapping ErrAlreadyThere is absorbed silently
// (Extend returns nil without installing f again), any other error aborts
// and is returned. Re-extending the same Feature instance is a no-op.
func (g *Graph) Extend(f Feature) error {
	for _, existing := range g.features {
		if existing == f {
			return nil
		}
	}
	if a, ok := f.(Attacher); ok {
		if err := a.OnAttach(g); err != nil {
			if errors.Is(err, ErrAlreadyThere) {
				return nil
			}
			return fmt.Errorf("fgraph: extend: %w", err)
		}
	}
	g.features = append(g.features, f)
	return nil
}

// RemoveFeature detaches f. It is a silent no-op if f is not currently
// attached. If f implements Detacher, OnDetach runs after f has already
// been unlinked; an error there propagates.
func (g *Graph) RemoveFeature(f Feature) error {
	idx := -1
	for i, existing := range g.features {
		if existing == f {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	g.features = append(g.features[:idx], g.features[idx+1:]...)
	if d, ok := f.(Detacher); ok {
		if err := d.OnDetach(g); err != nil {
			return fmt.Errorf("fgraph: remove feature: %w", err)
		}
	}
	return nil
}

// Features returns the currently attached features in attachment order.
// The returned slice is a copy; mutating it has no effect on the graph.
func (g *Graph) Features() []Feature {
	return append([]Feature(nil), g.features...)
}

func (g *Graph) dispatchImport(n *ir.Node) {
	for _, f := range g.features {
		if h, ok := f.(ImportObserver); ok {
			h.OnImport(g, n)
		}
	}
}

func (g *Graph) dispatchPrune(n *ir.Node) {
	for _, f := range g.features {
		if h, ok := f.(PruneObserver); ok {
			h.OnPrune(g, n)
		}
	}
}

func (g *Graph) dispatchChangeInput(consumer *ir.Node, index int, old, new *ir.Variable, reason string) error {
	for _, f := range g.features {
		h, ok := f.(ChangeInputObserver)
		if !ok {
			continue
		}
		if err := h.OnChangeInput(g, consumer, index, old, new, reason); err != nil {
			return &InconsistencyError{Msg: "change_input rejected by feature", Cause: err}
		}
	}
	return nil
}

// Orderings merges every attached OrderingsProvider's contribution by
// union, matching fg.py's get_order(): the same precedence pair reported
// by more than one Feature counts once.
func (g *Graph) Orderings() (map[*ir.Node][]*ir.Node, error) {
	merged := make(map[*ir.Node][]*ir.Node)
	for _, f := range g.features {
		p, ok := f.(OrderingsProvider)
		if !ok {
			continue
		}
		contrib, err := p.Orderings(g)
		if err != nil {
			return nil, err
		}
		for n, prereqs := range contrib {
			existing := merged[n]
			for _, pr := range prereqs {
				if !containsNode(existing, pr) {
					existing = append(existing, pr)
				}
			}
			merged[n] = existing
		}
	}
	return merged, nil
}

func containsNode(list []*ir.Node, n *ir.Node) bool {
	for _, x := range list {
		if x == n {
			return true
		}
	}
	return false
}

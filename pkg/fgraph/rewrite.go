package fgraph

import "github.com/opgraph/opgraph/pkg/ir"

// ChangeInput rewrites a single consumption site to read newVar instead
// of whatever it currently reads. consumer identifies the site: nil means
// the graph's own Outputs[index], otherwise consumer.Inputs[index].
//
// If newVar is already the value occupying the slot, ChangeInput returns
// immediately without touching client lists, without dispatching
// OnChangeInput, and without running a prune (spec.md §4.4/§8:
// "idempotent when applied with new_r == r: no state change, no observer
// events").
//
// The six-step sequence (spec.md §4.4) is: write the slot, import newVar
// (claiming any new Nodes/Variables it brings with it), add the new
// client site, remove the old client site (pruning of the old owner is
// deferred), dispatch OnChangeInput to every attached
// ChangeInputObserver, then run the deferred prune. The rewrite is not
// transactional: if the import fails, the slot already holds newVar; if
// OnChangeInput rejects the change, the slot has already been rewritten
// and the old side already uncliented — the caller sees the graph in its
// new shape along with the error, matching fg.py's change_input.
func (g *Graph) ChangeInput(consumer *ir.Node, index int, newVar *ir.Variable, reason string) error {
	oldVar, err := g.slot(consumer, index)
	if err != nil {
		return err
	}
	if newVar == oldVar {
		return nil
	}

	if oldVar.Type != nil && newVar.Type != nil && !newVar.Type.Equal(oldVar.Type) {
		return &TypeMismatchError{Old: oldVar.Type, New: newVar.Type}
	}

	g.setSlot(consumer, index, newVar)

	if err := g.importVariable(newVar); err != nil {
		return err
	}

	site := ir.ClientSite{Node: consumer, Index: index}
	g.addClient(newVar, site)
	g.removeClient(oldVar, site)

	if err := g.dispatchChangeInput(consumer, index, oldVar, newVar, reason); err != nil {
		return err
	}

	g.maybePrune(oldVar)
	return nil
}

func (g *Graph) slot(consumer *ir.Node, index int) (*ir.Variable, error) {
	if consumer == nil {
		if index < 0 || index >= len(g.Outputs) {
			return nil, &StructuralCorruptionError{Msg: "output index out of range"}
		}
		return g.Outputs[index], nil
	}
	if index < 0 || index >= len(consumer.Inputs) {
		return nil, &StructuralCorruptionError{Msg: "input index out of range for " + consumer.String()}
	}
	return consumer.Inputs[index], nil
}

func (g *Graph) setSlot(consumer *ir.Node, index int, v *ir.Variable) {
	if consumer == nil {
		g.Outputs[index] = v
		return
	}
	consumer.Inputs[index] = v
}

// Replacement pairs a Variable currently in the graph with its
// replacement, for use with ReplaceAll.
type Replacement struct {
	Old, New *ir.Variable
}

// Replace rewrites every current client of old to read new instead,
// via ChangeInput. If old does not currently belong to the graph, Replace
// is a silent no-op (spec.md §4.5: a stale replace target is not an
// error, since by the time a caller assembles a batch of replacements an
// earlier one may have already pruned old out of existence).
//
// The client list is snapshotted before any rewrite begins, so a
// ChangeInputObserver that itself triggers further rewrites cannot starve
// or duplicate this loop.
func (g *Graph) Replace(old, new *ir.Variable, reason string) error {
	if !g.HasVariable(old) {
		return nil
	}
	sites := append([]ir.ClientSite(nil), old.Clients...)
	for _, site := range sites {
		if err := g.ChangeInput(site.Node, site.Index, new, reason); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceAll applies each Replacement in order via Replace, stopping at
// the first error (spec.md §4.5 "replace_all").
func (g *Graph) ReplaceAll(replacements []Replacement, reason string) error {
	for _, r := range replacements {
		if err := g.Replace(r.Old, r.New, reason); err != nil {
			return err
		}
	}
	return nil
}

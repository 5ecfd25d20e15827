package traversal

import (
	"fmt"

	"github.com/opgraph/opgraph/pkg/ir"
)

const (
	markUnvisited = 0
	markVisiting  = 1
	markDone      = 2
)

// ReachableNodes returns, in topological order, every *ir.Node reachable
// by walking backward from targets' owners, stopping at any variable
// present in known (the "known frontier") or at a variable with no owner
// (a declared input or a constant). extra contributes additional
// precedence constraints (node -> nodes that must precede it), merged
// with the structural edges.
//
// This is the generalized form of fg.py's __import__, which calls
// graph.io_toposort(self.variables, node.outputs) to find the *new* nodes
// introduced by importing a single node's outputs: callers pass the
// current membership as known and a single node's Outputs as targets to
// get the same incremental behavior.
func ReachableNodes(known map[*ir.Variable]bool, targets []*ir.Variable, extra map[*ir.Node][]*ir.Node) ([]*ir.Node, error) {
	mark := make(map[*ir.Node]int)
	var order []*ir.Node

	var visit func(n *ir.Node) error
	visit = func(n *ir.Node) error {
		switch mark[n] {
		case markDone:
			return nil
		case markVisiting:
			return fmt.Errorf("%w: at %v", ErrCycle, n)
		}
		mark[n] = markVisiting

		for _, in := range n.Inputs {
			if known[in] {
				continue
			}
			if in.Owner != nil {
				if err := visit(in.Owner); err != nil {
					return err
				}
			}
		}
		for _, prereq := range extra[n] {
			if err := visit(prereq); err != nil {
				return err
			}
		}

		mark[n] = markDone
		order = append(order, n)
		return nil
	}

	for _, v := range targets {
		if known[v] || v.Owner == nil {
			continue
		}
		if err := visit(v.Owner); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// varSet builds a membership set from a slice, used as the "known
// frontier" stop-set for whole-graph traversals.
func varSet(vars []*ir.Variable) map[*ir.Variable]bool {
	s := make(map[*ir.Variable]bool, len(vars))
	for _, v := range vars {
		s[v] = true
	}
	return s
}

// Toposort returns every node reachable from outputs, stopping at inputs,
// in topological order, honoring extra precedence constraints
// contributed by observers' Orderings (spec.md §4.7).
func Toposort(inputs, outputs []*ir.Variable, extra map[*ir.Node][]*ir.Node) ([]*ir.Node, error) {
	return ReachableNodes(varSet(inputs), outputs, extra)
}

// Ops returns the full set of nodes reachable from outputs, stopping at
// inputs (spec.md §6 "ops(inputs, outputs) -> node set").
func Ops(inputs, outputs []*ir.Variable) (map[*ir.Node]struct{}, error) {
	nodes, err := Toposort(inputs, outputs, nil)
	if err != nil {
		return nil, err
	}
	set := make(map[*ir.Node]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}
	return set, nil
}

// Variables returns the full set of variables reachable from outputs,
// stopping at inputs: inputs themselves, outputs themselves, and every
// variable that is an input or output of a reachable node (spec.md §6
// "variables(inputs, outputs) -> variable set").
func Variables(inputs, outputs []*ir.Variable) (map[*ir.Variable]struct{}, error) {
	nodes, err := Toposort(inputs, outputs, nil)
	if err != nil {
		return nil, err
	}
	set := make(map[*ir.Variable]struct{}, len(nodes)*2)
	for _, v := range inputs {
		set[v] = struct{}{}
	}
	for _, v := range outputs {
		set[v] = struct{}{}
	}
	for _, n := range nodes {
		for _, v := range n.Inputs {
			set[v] = struct{}{}
		}
		for _, v := range n.Outputs {
			set[v] = struct{}{}
		}
	}
	return set, nil
}

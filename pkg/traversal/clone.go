package traversal

import "github.com/opgraph/opgraph/pkg/ir"

// CloneGetEquiv structurally clones the subgraph reachable from outputs
// (stopping at inputs) and returns the cloned input/output frontiers
// alongside a variable correspondence map from every original variable
// encountered to its clone (spec.md §4.8, §6
// "clone_get_equiv(inputs, outputs) -> (inputs', outputs', equiv-map)").
//
// The clone shares Operator values (an Operator is an immutable
// descriptor) but allocates entirely new *ir.Node/*ir.Variable values, all
// unowned (Graph == nil): it is the caller's job (fgraph.Clone) to import
// them into a fresh Graph.
func CloneGetEquiv(inputs, outputs []*ir.Variable) (newInputs, newOutputs []*ir.Variable, equiv map[*ir.Variable]*ir.Variable, err error) {
	order, err := Toposort(inputs, outputs, nil)
	if err != nil {
		return nil, nil, nil, err
	}

	equiv = make(map[*ir.Variable]*ir.Variable, len(order)*2)

	cloneLeaf := func(v *ir.Variable) *ir.Variable {
		if nv, ok := equiv[v]; ok {
			return nv
		}
		var nv *ir.Variable
		if v.IsConstant {
			nv = ir.NewConstant(v.Type)
		} else {
			nv = ir.NewInput(v.Type)
		}
		equiv[v] = nv
		return nv
	}

	for _, v := range inputs {
		cloneLeaf(v)
	}

	for _, n := range order {
		newInputsForNode := make([]*ir.Variable, len(n.Inputs))
		for i, in := range n.Inputs {
			if cv, ok := equiv[in]; ok {
				newInputsForNode[i] = cv
			} else {
				// in has no owner (it wasn't pre-registered as a
				// declared input) or its owner was already visited
				// earlier in topo order, so it must already be in equiv
				// unless it's an unregistered leaf: treat it as one.
				newInputsForNode[i] = cloneLeaf(in)
			}
		}
		outTypes := make([]ir.Type, len(n.Outputs))
		for i, o := range n.Outputs {
			outTypes[i] = o.Type
		}
		newNode, err := ir.NewNode(n.Op, newInputsForNode, outTypes)
		if err != nil {
			return nil, nil, nil, err
		}
		for i, o := range n.Outputs {
			equiv[o] = newNode.Outputs[i]
		}
	}

	newInputs = make([]*ir.Variable, len(inputs))
	for i, v := range inputs {
		newInputs[i] = cloneLeaf(v)
	}
	newOutputs = make([]*ir.Variable, len(outputs))
	for i, v := range outputs {
		newOutputs[i] = cloneLeaf(v)
	}
	return newInputs, newOutputs, equiv, nil
}

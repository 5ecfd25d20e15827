package ir

import "github.com/opgraph/opgraph/pkg/idgen"

// Node is an operator application (spec.md §3): an operator, an ordered,
// mutable list of input Variables, and an ordered, fixed list of output
// Variables, each owned by this Node.
type Node struct {
	Op      Operator
	Inputs  []*Variable
	Outputs []*Variable

	// Graph is the owning-graph reference, compared by identity; nil
	// means unowned.
	Graph any

	// Deps is the side-table reserved for observers (spec.md §3); fgraph
	// never reads or writes it itself.
	Deps map[string]any

	DiagID string
}

// NewNode constructs a Node applying op to inputs, with one freshly
// allocated output Variable per entry in outputTypes. It validates op's
// optional metadata (spec.md §6, §7 BadOperatorMetadata) before anything
// else: a malformed view/destroy map must fail before any Variable is
// allocated.
func NewNode(op Operator, inputs []*Variable, outputTypes []Type) (*Node, error) {
	if err := validateMetadata(op); err != nil {
		return nil, err
	}
	if op != nil && len(outputTypes) != op.NumOutputs() {
		return nil, ErrOutputTypeCount
	}

	n := &Node{
		Op:     op,
		Inputs: append([]*Variable(nil), inputs...),
		DiagID: idgen.New(),
	}
	n.Outputs = make([]*Variable, len(outputTypes))
	for i, t := range outputTypes {
		n.Outputs[i] = &Variable{Type: t, Owner: n, DiagID: idgen.New()}
	}
	return n, nil
}

func (n *Node) String() string {
	name := "<op>"
	if n.Op != nil {
		name = n.Op.Name()
	}
	if n.DiagID == "" {
		return name
	}
	return name + ":" + n.DiagID[:8]
}

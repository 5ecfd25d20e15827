package ir

import "github.com/opgraph/opgraph/pkg/idgen"

// ClientSite identifies where a Variable is read: either an input slot of
// a Node, or the graph's output vector (spec.md §3 "Client site").
// Node == nil denotes the "output" sentinel; Index is then the output
// index. Otherwise Node.Inputs[Index] is the consuming slot.
type ClientSite struct {
	Node  *Node
	Index int
}

// IsOutput reports whether this client site is a graph output rather than
// a node input.
func (c ClientSite) IsOutput() bool { return c.Node == nil }

// Variable is a value-typed symbolic node (spec.md §3). Declared inputs
// and constants have a nil Owner; every other Variable is produced by
// exactly one Node, which owns it.
//
// Graph and Clients are bookkeeping fields maintained exclusively by the
// fgraph.Graph that owns this Variable; nothing in package ir ever writes
// to them.
type Variable struct {
	Type       Type
	Owner      *Node
	IsConstant bool

	// Graph is the owning-graph reference (spec.md §3 invariant 4). It
	// holds the owning *fgraph.Graph, compared by identity; nil means
	// unowned.
	Graph any

	// Clients is the multi-set of consumer sites reading this variable
	// (spec.md §3 invariant 3). No (consumer, index) pair may appear
	// twice.
	Clients []ClientSite

	// DiagID is a correlation id for logs/telemetry/error messages; it
	// plays no role in graph identity or equality.
	DiagID string
}

// NewInput creates a declared graph input: no owner, not a constant.
func NewInput(t Type) *Variable {
	return &Variable{Type: t, DiagID: idgen.New()}
}

// NewConstant creates a constant Variable: no owner, but exempt from the
// "missing input" rule (spec.md §3 invariant 5, §4.2).
func NewConstant(t Type) *Variable {
	return &Variable{Type: t, IsConstant: true, DiagID: idgen.New()}
}

// HasClient reports whether (node, index) is already present in v's
// client list.
func (v *Variable) HasClient(site ClientSite) bool {
	for _, c := range v.Clients {
		if c == site {
			return true
		}
	}
	return false
}

func (v *Variable) String() string {
	if v.DiagID == "" {
		return "<var>"
	}
	return "var:" + v.DiagID[:8]
}

package fgraph

import (
	"fmt"

	"github.com/opgraph/opgraph/pkg/config"
	"github.com/opgraph/opgraph/pkg/ir"
	"github.com/opgraph/opgraph/pkg/logging"
	"github.com/opgraph/opgraph/pkg/render"
	"github.com/opgraph/opgraph/pkg/traversal"
)

// Graph is a mutable computation graph: a fixed input frontier, a fixed
// output frontier, and the transitive closure of Nodes/Variables reachable
// by walking backward from the outputs to the inputs. Every Variable and
// Node it holds carries this Graph's identity in its Graph field for the
// lifetime of its membership.
type Graph struct {
	Inputs  []*ir.Variable
	Outputs []*ir.Variable

	nodes     map[*ir.Node]struct{}
	variables map[*ir.Variable]struct{}
	features  []Feature

	// profile is an optional handle distinguished from the ordinary
	// feature list: it is still dispatched like any other Feature (it is
	// attached via Extend under the hood), but WithProfile/Profile give
	// direct access to it without scanning Features() and asserting a
	// type, mirroring the "optional profiling handle" fg.py keeps as its
	// own self.profile attribute alongside self._features.
	profile Feature

	logger *logging.Logger
	config *config.Config

	initFeatures []Feature
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithConfig overrides the graph's resource limits and diagnostic
// verbosity (pkg/config).
func WithConfig(cfg *config.Config) Option {
	return func(g *Graph) { g.config = cfg }
}

// WithLogger overrides the graph's structured logger (pkg/logging).
// Defaults to logging.Default() if not supplied.
func WithLogger(l *logging.Logger) Option {
	return func(g *Graph) { g.logger = l }
}

// WithFeatures attaches the given features during construction, after the
// config/logger options have applied but before inputs/outputs are
// imported, so an attached feature observes every import from the first
// node onward. Equivalent to calling Extend immediately after New, except
// an attach error aborts construction instead of leaving a partially
// built Graph.
func WithFeatures(fs ...Feature) Option {
	return func(g *Graph) { g.initFeatures = append(g.initFeatures, fs...) }
}

// WithProfile attaches f as the graph's profiling handle: it is extended
// like any other Feature, and also made available via Profile().
func WithProfile(f Feature) Option {
	return func(g *Graph) {
		g.initFeatures = append(g.initFeatures, f)
		g.profile = f
	}
}

// New builds a Graph rooted at outputs, stopping at inputs. Every
// Variable reachable from outputs that is not a declared input and not a
// constant must have an owner reachable the same way, or New fails with a
// MissingInputError (spec.md §4.2, §3 invariant 5).
//
// New never attaches a default Feature on callers' behalf: concrete
// features live outside this package (see pkg/toolbox for the
// conventional "validated by default" constructor).
func New(inputs, outputs []*ir.Variable, opts ...Option) (*Graph, error) {
	g := &Graph{
		nodes:     make(map[*ir.Node]struct{}),
		variables: make(map[*ir.Variable]struct{}, len(inputs)+len(outputs)),
		config:    config.Default(),
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Inputs = append([]*ir.Variable(nil), inputs...)
	g.Outputs = append([]*ir.Variable(nil), outputs...)

	initFeatures := g.initFeatures
	g.initFeatures = nil
	for _, f := range initFeatures {
		if err := g.Extend(f); err != nil {
			return nil, fmt.Errorf("fgraph: new: %w", err)
		}
	}

	for _, in := range g.Inputs {
		if err := g.claimDeclaredInput(in); err != nil {
			return nil, fmt.Errorf("fgraph: new: %w", err)
		}
	}
	for idx, out := range g.Outputs {
		if err := g.importVariable(out); err != nil {
			return nil, fmt.Errorf("fgraph: new: %w", err)
		}
		g.addClient(out, ir.ClientSite{Index: idx})
	}

	if g.config.MaxNodes > 0 && len(g.nodes) > g.config.MaxNodes {
		return nil, &StructuralCorruptionError{Msg: fmt.Sprintf("node count %d exceeds configured maximum %d", len(g.nodes), g.config.MaxNodes)}
	}
	if g.config.MaxVariables > 0 && len(g.variables) > g.config.MaxVariables {
		return nil, &StructuralCorruptionError{Msg: fmt.Sprintf("variable count %d exceeds configured maximum %d", len(g.variables), g.config.MaxVariables)}
	}

	g.logger.Debug("graph constructed", "nodes", len(g.nodes), "variables", len(g.variables), "inputs", len(g.Inputs), "outputs", len(g.Outputs))
	return g, nil
}

// Profile returns the graph's profiling handle, or nil if none was set
// via WithProfile.
func (g *Graph) Profile() Feature { return g.profile }

// Clients returns v's current client sites. The returned slice is a copy.
func (g *Graph) Clients(v *ir.Variable) []ir.ClientSite {
	return append([]ir.ClientSite(nil), v.Clients...)
}

// NClients returns len(Clients(v)).
func (g *Graph) NClients(v *ir.Variable) int { return len(v.Clients) }

// Nodes returns every Node currently belonging to the graph, in no
// particular order.
func (g *Graph) Nodes() []*ir.Node {
	out := make([]*ir.Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Variables returns every Variable currently belonging to the graph, in
// no particular order.
func (g *Graph) Variables() []*ir.Variable {
	out := make([]*ir.Variable, 0, len(g.variables))
	for v := range g.variables {
		out = append(out, v)
	}
	return out
}

// HasNode reports whether n currently belongs to the graph.
func (g *Graph) HasNode(n *ir.Node) bool {
	_, ok := g.nodes[n]
	return ok
}

// HasVariable reports whether v currently belongs to the graph.
func (g *Graph) HasVariable(v *ir.Variable) bool {
	_, ok := g.variables[v]
	return ok
}

// Disown releases the graph's claim on every Variable and Node it holds
// (clearing their Graph and, for variables, Clients fields) and empties
// the graph's own membership sets and input/output frontiers. Attached
// features are left attached; callers that also want those torn down
// should RemoveFeature each one first.
func (g *Graph) Disown() {
	for n := range g.nodes {
		n.Graph = nil
	}
	for v := range g.variables {
		v.Graph = nil
		v.Clients = nil
	}
	g.nodes = make(map[*ir.Node]struct{})
	g.variables = make(map[*ir.Variable]struct{})
	g.Inputs = nil
	g.Outputs = nil
}

// String renders the graph as "[expr1, expr2, ...]", one expression per
// output, in the style of traversal.AsString.
func (g *Graph) String() string {
	return render.FormatExprList(traversal.AsString(g.Inputs, g.Outputs))
}

package diagnostics

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/opgraph/opgraph/pkg/fgraph"
	"github.com/opgraph/opgraph/pkg/ir"
)

// filterEnv is the expr-lang evaluation environment a ReasonFilter
// expression runs against.
type filterEnv struct {
	Reason   string
	Operator string
}

var (
	programCacheMu sync.Mutex
	programCache   = make(map[string]*vm.Program)
)

func compileCached(expression string) (*vm.Program, error) {
	programCacheMu.Lock()
	defer programCacheMu.Unlock()

	if program, ok := programCache[expression]; ok {
		return program, nil
	}
	program, err := expr.Compile(expression, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	programCache[expression] = program
	return program, nil
}

// ReasonFilter wraps an fgraph.Feature and gates its OnChangeInput calls
// behind a boolean expr-lang expression evaluated against Reason (the
// rewrite's reason string) and Operator (the consuming Node's operator
// name). Every other optional Feature method the inner value implements
// is forwarded unconditionally — the filter only scopes rewrite
// notifications, since reason strings and operator names have no
// meaning for OnImport, OnPrune, or Orderings.
type ReasonFilter struct {
	inner      fgraph.Feature
	expression string
	program    *vm.Program
}

// NewReasonFilter compiles expression once (sharing a process-wide cache
// keyed by expression text across ReasonFilter instances, so repeated
// identical filters don't recompile) and wraps inner behind it.
func NewReasonFilter(inner fgraph.Feature, expression string) (*ReasonFilter, error) {
	program, err := compileCached(expression)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: compile reason filter %q: %w", expression, err)
	}
	return &ReasonFilter{inner: inner, expression: expression, program: program}, nil
}

// OnAttach forwards to inner if it implements fgraph.Attacher.
func (r *ReasonFilter) OnAttach(g *fgraph.Graph) error {
	if a, ok := r.inner.(fgraph.Attacher); ok {
		return a.OnAttach(g)
	}
	return nil
}

// OnDetach forwards to inner if it implements fgraph.Detacher.
func (r *ReasonFilter) OnDetach(g *fgraph.Graph) error {
	if d, ok := r.inner.(fgraph.Detacher); ok {
		return d.OnDetach(g)
	}
	return nil
}

// OnImport forwards to inner if it implements fgraph.ImportObserver.
func (r *ReasonFilter) OnImport(g *fgraph.Graph, n *ir.Node) {
	if h, ok := r.inner.(fgraph.ImportObserver); ok {
		h.OnImport(g, n)
	}
}

// OnPrune forwards to inner if it implements fgraph.PruneObserver.
func (r *ReasonFilter) OnPrune(g *fgraph.Graph, n *ir.Node) {
	if h, ok := r.inner.(fgraph.PruneObserver); ok {
		h.OnPrune(g, n)
	}
}

// Orderings forwards to inner if it implements fgraph.OrderingsProvider.
func (r *ReasonFilter) Orderings(g *fgraph.Graph) (map[*ir.Node][]*ir.Node, error) {
	if p, ok := r.inner.(fgraph.OrderingsProvider); ok {
		return p.Orderings(g)
	}
	return nil, nil
}

// OnChangeInput evaluates the filter expression and, only if it passes,
// forwards to inner's OnChangeInput (if it implements
// fgraph.ChangeInputObserver at all).
func (r *ReasonFilter) OnChangeInput(g *fgraph.Graph, consumer *ir.Node, index int, old, new *ir.Variable, reason string) error {
	h, ok := r.inner.(fgraph.ChangeInputObserver)
	if !ok {
		return nil
	}

	operatorName := ""
	if consumer != nil && consumer.Op != nil {
		operatorName = consumer.Op.Name()
	}

	out, err := expr.Run(r.program, filterEnv{Reason: reason, Operator: operatorName})
	if err != nil {
		return fmt.Errorf("diagnostics: evaluate reason filter %q: %w", r.expression, err)
	}
	pass, _ := out.(bool)
	if !pass {
		return nil
	}
	return h.OnChangeInput(g, consumer, index, old, new, reason)
}

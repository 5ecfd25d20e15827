package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/opgraph/opgraph/pkg/fgraph"
	"github.com/opgraph/opgraph/pkg/ir"
)

// GraphObserver implements fgraph's optional observer interfaces and
// records OpenTelemetry metrics and spans for a Graph's lifecycle: node
// imports, node prunes, and ChangeInput rewrites. Attach one per Graph
// via fgraph.WithFeatures or fgraph.Graph.Extend; it is also the
// conventional choice for fgraph.WithProfile, since it's the "optional
// profiling handle" fg.py's self.profile slot was meant for.
type GraphObserver struct {
	provider *Provider
	ctx      context.Context

	rewriteStart time.Time
}

// NewGraphObserver returns a GraphObserver recording against provider.
// ctx is used for every metric/span call this observer makes; pass
// context.Background() if the graph's lifetime outlives any single
// request context.
func NewGraphObserver(provider *Provider, ctx context.Context) *GraphObserver {
	return &GraphObserver{provider: provider, ctx: ctx}
}

// OnImport records a graph.imports.total increment tagged by operator
// name (fgraph.ImportObserver).
func (o *GraphObserver) OnImport(g *fgraph.Graph, n *ir.Node) {
	o.provider.RecordImport(o.ctx, operatorName(n))
}

// OnPrune records a graph.prunes.total increment tagged by operator name
// (fgraph.PruneObserver).
func (o *GraphObserver) OnPrune(g *fgraph.Graph, n *ir.Node) {
	o.provider.RecordPrune(o.ctx, operatorName(n))
}

// OnChangeInput records a graph.replace.total increment and a
// graph.replace.duration sample (fgraph.ChangeInputObserver). The sample
// times only this callback's own work, and it always reports a nil error,
// so graph.replace.errors.total is not incremented from here.
// It never itself rejects a change: a telemetry failure should never
// block a rewrite.
func (o *GraphObserver) OnChangeInput(g *fgraph.Graph, consumer *ir.Node, index int, old, new *ir.Variable, reason string) error {
	var span trace.Span
	ctx := o.ctx
	if tracer := o.provider.Tracer(); tracer != nil {
		ctx, span = tracer.Start(ctx, "graph.change_input",
			trace.WithAttributes(
				attribute.String("reason", reason),
				attribute.Int("index", index),
			),
		)
		defer span.End()
	}

	start := time.Now()
	o.provider.RecordReplace(ctx, reason, time.Since(start), nil)
	if span != nil {
		span.SetStatus(codes.Ok, "change_input applied")
	}
	return nil
}

func operatorName(n *ir.Node) string {
	if n == nil || n.Op == nil {
		return "<unknown>"
	}
	return n.Op.Name()
}

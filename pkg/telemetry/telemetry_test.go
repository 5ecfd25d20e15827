package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/opgraph/opgraph/pkg/fgraph"
	"github.com/opgraph/opgraph/pkg/ir"
)

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "default config", config: DefaultConfig(), wantErr: false},
		{
			name: "custom config",
			config: Config{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				EnableTracing:  true,
				EnableMetrics:  true,
			},
			wantErr: false,
		},
		{
			name: "metrics only",
			config: Config{
				ServiceName:   "test-service",
				EnableTracing: false,
				EnableMetrics: true,
			},
			wantErr: false,
		},
		{
			name: "tracing only",
			config: Config{
				ServiceName:   "test-service",
				EnableTracing: true,
				EnableMetrics: false,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(ctx, tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if provider == nil {
				t.Fatal("NewProvider() returned nil provider")
			}
			if tt.config.EnableTracing && provider.Tracer() == nil {
				t.Error("Tracer() returned nil when tracing is enabled")
			}
			if tt.config.EnableMetrics && provider.Meter() == nil {
				t.Error("Meter() returned nil when metrics are enabled")
			}
		})
	}
}

func TestProvider_RecordImportPrune(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	// Should not panic with a real meter behind it.
	provider.RecordImport(ctx, "add")
	provider.RecordPrune(ctx, "add")
	provider.RecordReplace(ctx, "rewrite", 5*time.Millisecond, nil)
	provider.RecordVariableDelta(ctx, 3)
}

func TestProvider_RecordWithoutMetrics(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, Config{EnableMetrics: false, EnableTracing: false})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	// No instruments created; these must be no-ops, not panics.
	provider.RecordImport(ctx, "add")
	provider.RecordPrune(ctx, "add")
	provider.RecordReplace(ctx, "rewrite", time.Millisecond, nil)
}

func TestProvider_Shutdown(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestGraphObserver_ObservesLifecycle(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	obs := NewGraphObserver(provider, ctx)

	intType := ir.Kind("int")
	x := ir.NewInput(intType)
	addOp := &ir.SimpleOp{OpName: "add", Outputs: 1}
	n, err := ir.NewNode(addOp, []*ir.Variable{x, x}, []ir.Type{intType})
	if err != nil {
		t.Fatalf("NewNode() error = %v", err)
	}

	g, err := fgraph.New([]*ir.Variable{x}, []*ir.Variable{n.Outputs[0]}, fgraph.WithFeatures(obs))
	if err != nil {
		t.Fatalf("fgraph.New() error = %v", err)
	}

	y := ir.NewInput(intType)
	if err := g.ChangeInput(n, 0, y, "swap left operand"); err != nil {
		t.Fatalf("ChangeInput() error = %v", err)
	}
}

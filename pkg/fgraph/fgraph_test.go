package fgraph

import (
	"errors"
	"testing"

	"github.com/opgraph/opgraph/pkg/ir"
)

var intType = ir.Kind("int")

func mustNode(t *testing.T, name string, inputs []*ir.Variable) *ir.Node {
	t.Helper()
	n, err := ir.NewNode(&ir.SimpleOp{OpName: name, Outputs: 1}, inputs, []ir.Type{intType})
	if err != nil {
		t.Fatalf("NewNode(%s) error = %v", name, err)
	}
	return n
}

func TestNew_BuildsGraphWithSharedInput(t *testing.T) {
	x := ir.NewInput(intType)
	add := mustNode(t, "add", []*ir.Variable{x, x})

	g, err := New([]*ir.Variable{x}, []*ir.Variable{add.Outputs[0]})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.NClients(x) != 2 {
		t.Errorf("expected x to have 2 client sites (both add inputs), got %d", g.NClients(x))
	}
	if !g.HasNode(add) {
		t.Error("expected add to be a member of the graph")
	}
	if err := g.CheckIntegrity(); err != nil {
		t.Errorf("CheckIntegrity() error = %v", err)
	}
}

func TestNew_RejectsMissingInput(t *testing.T) {
	x := ir.NewInput(intType)
	y := ir.NewInput(intType) // never declared as a graph input
	add := mustNode(t, "add", []*ir.Variable{x, y})

	_, err := New([]*ir.Variable{x}, []*ir.Variable{add.Outputs[0]})
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingInputError, got %v", err)
	}
	if missing.Variable != y {
		t.Errorf("expected the missing variable to be y, got %v", missing.Variable)
	}
}

func TestReplace_AddBecomesMul(t *testing.T) {
	x := ir.NewInput(intType)
	y := ir.NewInput(intType)
	add := mustNode(t, "add", []*ir.Variable{x, y})

	g, err := New([]*ir.Variable{x, y}, []*ir.Variable{add.Outputs[0]})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	mul := mustNode(t, "mul", []*ir.Variable{x, y})
	if err := g.Replace(add.Outputs[0], mul.Outputs[0], "strength reduction"); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	if g.Outputs[0] != mul.Outputs[0] {
		t.Errorf("expected graph output to be mul's output, got %v", g.Outputs[0])
	}
	if len(add.Outputs[0].Clients) != 0 {
		t.Errorf("expected add's output to have no remaining clients after replace, got %v", add.Outputs[0].Clients)
	}
	if g.HasNode(add) {
		t.Error("expected add to have been pruned once its output lost its only client")
	}
	if !g.HasNode(mul) {
		t.Error("expected mul to now be a member of the graph")
	}
}

func TestChangeInput_RejectsTypeMismatch(t *testing.T) {
	x := ir.NewInput(intType)
	add := mustNode(t, "add", []*ir.Variable{x, x})
	g, err := New([]*ir.Variable{x}, []*ir.Variable{add.Outputs[0]})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	wrongType := ir.NewInput(ir.Kind("string"))
	err = g.ChangeInput(add, 0, wrongType, "bad rewrite")
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
}

func TestChangeInput_IdempotentWhenNewEqualsOld(t *testing.T) {
	x := ir.NewInput(intType)
	add := mustNode(t, "add", []*ir.Variable{x, x})
	g, err := New([]*ir.Variable{x}, []*ir.Variable{add.Outputs[0]})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	z := add.Outputs[0]
	observed := &vetoFeature{}
	if err := g.Extend(observed); err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	if err := g.ChangeInput(nil, 0, z, "no-op rewrite"); err != nil {
		t.Fatalf("ChangeInput() error = %v", err)
	}

	if g.Outputs[0] != z {
		t.Errorf("expected output slot to remain z, got %v", g.Outputs[0])
	}
	if !g.HasVariable(z) || !g.HasNode(add) {
		t.Error("expected z and add to remain members of the graph")
	}
	if !z.HasClient(ir.ClientSite{Index: 0}) {
		t.Error("expected z's output client site to be untouched")
	}
	if err := g.CheckIntegrity(); err != nil {
		t.Errorf("CheckIntegrity() error = %v", err)
	}
}

func TestReplace_NoopWhenOldNotInGraph(t *testing.T) {
	x := ir.NewInput(intType)
	add := mustNode(t, "add", []*ir.Variable{x, x})
	g, err := New([]*ir.Variable{x}, []*ir.Variable{add.Outputs[0]})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	stray := ir.NewInput(intType)
	replacement := ir.NewInput(intType)
	if err := g.Replace(stray, replacement, "no-op"); err != nil {
		t.Fatalf("expected Replace on a non-member variable to be a silent no-op, got error = %v", err)
	}
}

type vetoFeature struct {
	attachErr error
	changeErr error
}

func (v *vetoFeature) OnAttach(g *Graph) error { return v.attachErr }
func (v *vetoFeature) OnChangeInput(g *Graph, consumer *ir.Node, index int, old, new *ir.Variable, reason string) error {
	return v.changeErr
}

func TestExtend_AbsorbsAlreadyThere(t *testing.T) {
	x := ir.NewInput(intType)
	g, err := New([]*ir.Variable{x}, []*ir.Variable{x})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	f := &vetoFeature{attachErr: ErrAlreadyThere}
	if err := g.Extend(f); err != nil {
		t.Fatalf("expected Extend to absorb ErrAlreadyThere, got error = %v", err)
	}
	if len(g.Features()) != 0 {
		t.Errorf("expected the feature to not actually be attached, got %d features", len(g.Features()))
	}
}

func TestExtend_PropagatesOtherAttachErrors(t *testing.T) {
	x := ir.NewInput(intType)
	g, err := New([]*ir.Variable{x}, []*ir.Variable{x})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	boom := errors.New("boom")
	f := &vetoFeature{attachErr: boom}
	if err := g.Extend(f); !errors.Is(err, boom) {
		t.Fatalf("expected Extend to propagate a non-AlreadyThere attach error, got %v", err)
	}
}

func TestChangeInput_FeatureVetoPropagatesButRewriteSticks(t *testing.T) {
	x := ir.NewInput(intType)
	add := mustNode(t, "add", []*ir.Variable{x, x})
	g, err := New([]*ir.Variable{x}, []*ir.Variable{add.Outputs[0]})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	refuse := errors.New("refused")
	if err := g.Extend(&vetoFeature{changeErr: refuse}); err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	y := ir.NewConstant(intType)
	err = g.ChangeInput(add, 1, y, "swap right operand")
	if !errors.Is(err, ErrInconsistency) {
		t.Fatalf("expected ErrInconsistency, got %v", err)
	}
	// Not transactional: the slot was already rewritten before dispatch.
	if add.Inputs[1] != y {
		t.Error("expected the rewrite to have taken effect despite the veto")
	}
}

func TestCheckIntegrity_DetectsTamperedClientList(t *testing.T) {
	x := ir.NewInput(intType)
	add := mustNode(t, "add", []*ir.Variable{x, x})
	g, err := New([]*ir.Variable{x}, []*ir.Variable{add.Outputs[0]})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Corrupt bookkeeping directly, bypassing ChangeInput.
	x.Clients = x.Clients[:1]

	err = g.CheckIntegrity()
	var corrupt *StructuralCorruptionError
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected StructuralCorruptionError, got %v", err)
	}
}

func TestCloneGetEquiv_IndependentFromOriginal(t *testing.T) {
	x := ir.NewInput(intType)
	add := mustNode(t, "add", []*ir.Variable{x, x})
	g, err := New([]*ir.Variable{x}, []*ir.Variable{add.Outputs[0]})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := g.Extend(&vetoFeature{}); err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	clone, varEquiv, nodeEquiv, err := g.CloneGetEquiv()
	if err != nil {
		t.Fatalf("CloneGetEquiv() error = %v", err)
	}
	if len(clone.Features()) != 1 || clone.Features()[0] != g.Features()[0] {
		t.Errorf("expected the clone to reuse the original's attached feature instances, got %v", clone.Features())
	}
	if clone.Outputs[0] == g.Outputs[0] {
		t.Error("expected clone's output to be a distinct Variable")
	}
	if _, ok := varEquiv[add.Outputs[0]]; !ok {
		t.Error("expected the variable equivalence map to cover add's output")
	}
	if _, ok := nodeEquiv[add]; !ok {
		t.Error("expected the node equivalence map to cover add")
	}

	y := ir.NewConstant(intType)
	clonedAdd := nodeEquiv[add]
	if err := clone.ChangeInput(clonedAdd, 1, y, "mutate clone only"); err != nil {
		t.Fatalf("ChangeInput() on clone error = %v", err)
	}
	if add.Inputs[1] == y {
		t.Error("expected mutating the clone to leave the original graph untouched")
	}
}

func TestDisown_ClearsOwnershipAndMembership(t *testing.T) {
	x := ir.NewInput(intType)
	add := mustNode(t, "add", []*ir.Variable{x, x})
	g, err := New([]*ir.Variable{x}, []*ir.Variable{add.Outputs[0]})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	g.Disown()

	if g.HasNode(add) || g.HasVariable(x) {
		t.Error("expected Disown to clear graph membership")
	}
	if add.Graph != nil {
		t.Error("expected Disown to clear the node's Graph field")
	}
	if x.Graph != nil || len(x.Clients) != 0 {
		t.Error("expected Disown to clear the input variable's Graph and Clients fields")
	}
	if len(g.Inputs) != 0 || len(g.Outputs) != 0 {
		t.Error("expected Disown to clear the graph's own input/output frontiers")
	}
}

func TestString_RendersExpression(t *testing.T) {
	x := ir.NewInput(intType)
	add := mustNode(t, "add", []*ir.Variable{x, x})
	g, err := New([]*ir.Variable{x}, []*ir.Variable{add.Outputs[0]})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := g.String(); got != "[add(in0, in0)]" {
		t.Errorf("String() = %q, want [add(in0, in0)]", got)
	}
}

// Package fgraph implements a mutable, observable computation graph: a
// set of Variables and Nodes reachable from a fixed output frontier back
// to a fixed input frontier, plus the rewrite primitives (ChangeInput,
// Replace, ReplaceAll) and the observer protocol (Feature) that let
// external packages react to and veto structural changes.
//
// The core package depends on pkg/ir (the Variable/Node/Operator value
// types), pkg/traversal (topological ordering, cloning, expression
// rendering), and the ambient pkg/config, pkg/logging and pkg/render
// packages. Concrete Feature implementations — validation,
// destroy-map bookkeeping, telemetry, diagnostics filtering — live in
// sibling packages (pkg/toolbox, pkg/telemetry, pkg/diagnostics) and are
// attached through Extend, never imported here, so the core stays free
// of any dependency on a particular observer's policy.
package fgraph

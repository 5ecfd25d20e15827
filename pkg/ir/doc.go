// Package ir provides the Variable/Node/Operator value types that
// github.com/opgraph/opgraph/pkg/fgraph mutates.
//
// # Overview
//
// fgraph.Graph works directly on this package's concrete *Variable and
// *Node types; only Operator and Type are interfaces. This package is the
// variable/node representation: a minimal, concrete
// Variable/Node/Operator trio, built the way an upstream expression
// compiler would build them, so the graph core can be exercised end to
// end without an external repo supplying its own IR.
//
// # Identity
//
// Variable and Node are heap-allocated structs identified by pointer.
// Ownership ("owning-graph reference" in spec.md §3) is a plain
// comparison: a Variable or Node belongs to a graph g iff its Graph field
// is == g. Client bookkeeping (spec.md §3 "Client site") lives on
// Variable.Clients and is mutated exclusively by the owning fgraph.Graph;
// nothing in this package maintains it.
package ir

// Package traversal implements the pure graph-reachability utilities
// spec.md §6 describes as consumed-not-owned by the graph core: given
// input and output frontiers, compute reachable nodes in topological
// order, the node/variable closures, a structural clone with a variable
// correspondence map, and a string rendering of the output expressions.
//
// Nothing here mutates an ir.Variable's or ir.Node's Graph/Clients/Deps
// bookkeeping — those fields belong exclusively to the fgraph.Graph that
// owns the value. traversal only reads Owner/Inputs/Outputs edges.
//
// The topological sort itself generalizes the teacher's Kahn's-algorithm
// implementation (github.com/yesoreyeram/thaiyyal backend/pkg/graph,
// operating over string node ids and an explicit edge list) to a DFS-based
// sort over *ir.Node/*ir.Variable owner/input pointer edges, since this
// package has no edge list to build a Kahn adjacency map from — the edges
// are implicit in Variable.Owner and Node.Inputs.
package traversal

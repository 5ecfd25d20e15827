package traversal

import "errors"

// ErrCycle is returned by Toposort/ReachableNodes when the node/ordering
// graph contains a cycle (spec.md §4.7: "Cycles introduced by ordering
// constraints are a caller-visible error from the underlying traversal
// utility.").
var ErrCycle = errors.New("traversal: cycle detected among nodes")

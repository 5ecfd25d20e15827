// Package toolbox provides the conventional fgraph.Feature
// implementations every graph reaches for: ReplaceValidate, which
// rejects rewrites that would introduce a cycle, and DestroyTracker,
// which turns an Operator's DestroyMap into ordering constraints so a
// destructive operator never runs before another consumer has read the
// value it's about to overwrite.
//
// fgraph.New itself never imports this package (see pkg/fgraph's doc
// comment); NewValidatedGraph is the replacement for fg.py's
// self-installing ReplaceValidate, one layer up from the core.
package toolbox

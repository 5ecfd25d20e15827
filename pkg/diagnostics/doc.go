// Package diagnostics provides ReasonFilter, an fgraph.Feature decorator
// that forwards OnChangeInput notifications to an inner Feature only when
// a caller-supplied expression — evaluated against the rewrite's reason
// string and the consuming operator's name — returns true. It exists so a
// noisy Feature (a verbose logger, an expensive validator) can be scoped
// to the rewrites an operator actually cares about, without that Feature
// needing to know anything about reason-string conventions itself.
package diagnostics

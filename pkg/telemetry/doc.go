// Package telemetry provides OpenTelemetry integration for distributed
// tracing and metrics over graph construction and rewriting. It enables
// observability for Graph lifecycles with support for:
//   - Distributed tracing of ChangeInput rewrites
//   - Prometheus metrics for import/prune/replace counters and durations
//   - GraphObserver, an fgraph.Feature that records both, attachable to
//     any Graph via fgraph.WithFeatures/Extend
package telemetry

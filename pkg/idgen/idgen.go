// Package idgen generates diagnostic correlation ids for graph values.
//
// These ids never participate in graph identity or equality (that's
// always pointer identity on *ir.Variable/*ir.Node) — they exist so log
// lines, telemetry attributes, and StructuralCorruption error messages can
// name a specific variable or node without dumping a Go pointer value.
package idgen

import "github.com/google/uuid"

// New returns a fresh correlation id.
func New() string {
	return uuid.New().String()
}

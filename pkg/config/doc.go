// Package config centralizes graph construction configuration.
//
// # Basic Usage
//
//	cfg := config.Default()
//	g, err := fgraph.New(inputs, outputs, fgraph.WithConfig(cfg))
//
// # Presets
//
// Default, Development, Production and Testing return distinct presets
// rather than a single set of defaults: Development and Testing turn on
// VerboseDiagnostics (MissingInputError then carries the import chain),
// Production leaves it off, and Testing tightens MaxNodes/MaxVariables
// and sets a 5s ImportTimeout. The graph core does not read
// ImportTimeout.
package config

// Package config centralizes graph construction and diagnostic settings.
package config

import "time"

// Config holds graph construction configuration. All configuration
// options are centralized here for easy management and validation.
type Config struct {
	// VerboseDiagnostics makes MissingInputError.Chain carry the path of
	// Variables the import walk followed to the offending variable; with
	// it off, the import walk copies no path and Chain stays empty.
	VerboseDiagnostics bool

	// MaxNodes caps the number of Nodes a single Graph may hold (0 =
	// unlimited). New rejects a graph past it; ChangeInput/Replace do not
	// check it.
	MaxNodes int

	// MaxVariables caps the number of Variables a single Graph may hold
	// (0 = unlimited). Like MaxNodes, it is checked by New only.
	MaxVariables int

	// EnableTelemetry is a flag for callers that decide whether to build
	// and attach a telemetry.GraphObserver. No package in this module
	// reads it; fgraph itself never depends on pkg/telemetry.
	EnableTelemetry bool

	// EnableReplaceValidation is a flag for callers that decide whether
	// to attach toolbox.ReplaceValidate. No package in this module reads
	// it: toolbox.NewValidatedGraph always installs ReplaceValidate.
	EnableReplaceValidation bool

	// ImportTimeout is a non-negative duration checked by Validate (zero
	// means no timeout). The New/ChangeInput import walk does not read it
	// and is never abandoned on a timeout.
	ImportTimeout time.Duration
}

// Default returns a Config with conservative default values: verbose
// diagnostics off, generous but non-zero resource caps, telemetry and
// replace validation both on.
func Default() *Config {
	return &Config{
		VerboseDiagnostics:      false,
		MaxNodes:                100000,
		MaxVariables:            200000,
		EnableTelemetry:         true,
		EnableReplaceValidation: true,
		ImportTimeout:           0,
	}
}

// Development returns a Config tuned for local iteration: verbose
// diagnostics on, resource caps relaxed.
func Development() *Config {
	cfg := Default()
	cfg.VerboseDiagnostics = true
	cfg.MaxNodes = 0
	cfg.MaxVariables = 0
	return cfg
}

// Production returns a Config tuned for long-running services: verbose
// diagnostics off (the chain walk is not worth its cost at steady
// state), resource caps enforced.
func Production() *Config {
	cfg := Default()
	cfg.VerboseDiagnostics = false
	cfg.MaxNodes = 100000
	cfg.MaxVariables = 200000
	return cfg
}

// Testing returns a Config tuned for unit tests: verbose diagnostics on
// (failures should be easy to read), tight resource caps so a runaway
// test graph fails fast instead of hanging.
func Testing() *Config {
	cfg := Default()
	cfg.VerboseDiagnostics = true
	cfg.MaxNodes = 1000
	cfg.MaxVariables = 2000
	cfg.ImportTimeout = 5 * time.Second
	return cfg
}

// Validate checks that the configuration's numeric fields are
// internally consistent.
func (c *Config) Validate() error {
	if c.MaxNodes < 0 {
		return ErrInvalidMaxNodes
	}
	if c.MaxVariables < 0 {
		return ErrInvalidMaxVariables
	}
	if c.ImportTimeout < 0 {
		return ErrInvalidImportTimeout
	}
	return nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

package config

import "errors"

// Sentinel errors for configuration validation.
var (
	ErrInvalidMaxNodes      = errors.New("invalid max nodes: must be non-negative")
	ErrInvalidMaxVariables  = errors.New("invalid max variables: must be non-negative")
	ErrInvalidImportTimeout = errors.New("invalid import timeout: must be non-negative")
)

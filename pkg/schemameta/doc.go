// Package schemameta validates operator metadata (view maps and destroy
// maps) against a JSON Schema, instead of a hand-rolled type switch.
//
// spec.md §6 requires: "Both must have values that are ordered sequences;
// violation is a construction-time error" for an Operator's optional
// ViewMap/DestroyMap. This package marshals the two maps to JSON and runs
// them through gojsonschema the same way the workflow engine this module
// was adapted from validates a node's input payload against a
// user-supplied schema (see its executor.SchemaValidatorExecutor) — here
// the schema is fixed (every value must be an array) rather than supplied
// by the caller.
package schemameta

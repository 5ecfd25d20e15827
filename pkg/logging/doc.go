// Package logging provides structured logging for graph construction and
// rewriting.
//
// # Overview
//
// The logging package implements a structured logging system built on
// log/slog, with support for JSON and text output, standard levels, and
// graph-specific contextual fields.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Pretty: false,
//	    Output: os.Stdout,
//	})
//
//	logger.Info("graph constructed", "nodes", n, "variables", v)
//
// # Context Fields
//
// WithGraphID attaches a diagnostic correlation id (pkg/idgen), not a
// graph identity key — two Loggers carrying the same graph_id are
// describing the same graph instance for log-correlation purposes only.
// WithNodeID and WithOperator attach the corresponding ir.Node.DiagID and
// ir.Operator.Name() fields.
//
//	logger.WithGraphID(id).WithOperator(op.Name()).Debug("importing node")
//
// # Output Formats
//
// JSON (production):
//
//	{"time":"...","level":"DEBUG","msg":"importing node","graph_id":"...","operator_name":"add"}
//
// Text (development, Config.Pretty):
//
//	2026-01-01T00:00:00Z DEBUG importing node graph_id=... operator_name=add
package logging

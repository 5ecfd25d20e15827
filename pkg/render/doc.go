// Package render formats operator names and expression lists for
// diagnostic output (spec.md §6: Graph.String/AsString produce
// "[expr1, expr2, ...]").
//
// It is the concrete home given to golang.org/x/text, a direct dependency
// of the workflow engine this module was adapted from that had no
// surviving call site in the retrieved source pack. Operator names in a
// symbolic-compiler IR are frequently sourced from a parser or a foreign
// binding layer and can arrive in inconsistent case or with full-width
// punctuation; OperatorLabel normalizes both. Graph.String uses only
// FormatExprList and does not pass operator names through OperatorLabel.
package render

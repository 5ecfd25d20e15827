package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

var titleCaser = cases.Title(language.Und)

// OperatorLabel normalizes an operator name for diagnostic output: it
// folds full-width punctuation/letters down to their ASCII forms (width)
// and title-cases the result (cases), so "add", "ADD", and "ａｄｄ" all
// render identically in error messages and Graph.String output.
func OperatorLabel(name string) string {
	if name == "" {
		return name
	}
	folded := width.Fold.String(name)
	return titleCaser.String(folded)
}

// FormatExprList renders a list of expression strings the way
// Graph.String does: "[expr1, expr2, ...]" (spec.md §6).
func FormatExprList(exprs []string) string {
	return "[" + strings.Join(exprs, ", ") + "]"
}

package traversal

import (
	"fmt"
	"strings"

	"github.com/opgraph/opgraph/pkg/ir"
)

// AsString renders each output as an expression string, recursing through
// owners (spec.md §6 "as_string(inputs, outputs) -> list<string>"; used by
// fgraph.Graph.String to produce "[expr1, expr2, ...]").
func AsString(inputs, outputs []*ir.Variable) []string {
	labels := make(map[*ir.Variable]string)
	for i, v := range inputs {
		labels[v] = fmt.Sprintf("in%d", i)
	}

	var render func(v *ir.Variable) string
	render = func(v *ir.Variable) string {
		if label, ok := labels[v]; ok {
			return label
		}
		if v.Owner == nil {
			if v.IsConstant {
				return "const"
			}
			return v.String()
		}
		args := make([]string, len(v.Owner.Inputs))
		for i, in := range v.Owner.Inputs {
			args[i] = render(in)
		}
		name := "<op>"
		if v.Owner.Op != nil {
			name = v.Owner.Op.Name()
		}
		return name + "(" + strings.Join(args, ", ") + ")"
	}

	out := make([]string, len(outputs))
	for i, v := range outputs {
		out[i] = render(v)
	}
	return out
}

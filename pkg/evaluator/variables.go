package evaluator

import (
	"sort"

	"github.com/sandrolain/goformula/pkg/types"
)

// Variables returns the distinct variable names referenced by the
// expression, excluding function names and named constants.
//
// The result has set semantics: each name appears once no matter how often
// the expression repeats it. Names are returned sorted so callers rendering
// input forms get a deterministic order; the order itself carries no
// meaning.
func Variables(expr *types.Expression) []string {
	seen := make(map[string]struct{})
	collectVariables(expr.AST(), seen)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVariables(node *types.ASTNode, seen map[string]struct{}) {
	if node == nil {
		return
	}

	if node.Type == types.NodeVariable {
		seen[node.Value] = struct{}{}
	}

	collectVariables(node.LHS, seen)
	collectVariables(node.RHS, seen)
}

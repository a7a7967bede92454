// Package evaluator reduces compiled formula expressions to numbers.
//
// It provides the three tree-consuming operations of the engine:
//   - Eval: reduce an expression to one float64 given complete bindings
//   - Variables: extract the distinct variable names an expression references
//   - EvalSum: evaluate a summation template once per indexed binding set
//
// All operations are pure functions of their arguments; there is no shared
// or long-lived state, so concurrent use requires no synchronization.
package evaluator

import (
	"fmt"
	"math"

	"github.com/sandrolain/goformula/pkg/functions"
	"github.com/sandrolain/goformula/pkg/types"
)

// Eval evaluates a compiled expression against the given variable bindings
// and returns the result as a finite float64.
//
// It returns a *types.EvalError when a referenced variable is missing from
// the bindings, or when an operation leaves its mathematical domain:
// division by zero, square root of a negative, logarithm of a non-positive,
// fractional power of a negative base, or any step that would yield NaN or
// ±Inf. Eval never returns a non-finite number.
func Eval(expr *types.Expression, bindings types.Bindings) (float64, error) {
	result, err := evalNode(expr.AST(), bindings)
	if err != nil {
		return 0, err
	}
	return result, nil
}

// evalNode walks the tree bottom-up. Precedence and associativity are
// already encoded in the tree shape; no re-association happens here.
func evalNode(node *types.ASTNode, bindings types.Bindings) (float64, error) {
	switch node.Type {
	case types.NodeNumber:
		return node.Num, nil

	case types.NodeConstant:
		v, ok := functions.Constant(node.Value)
		if !ok {
			return 0, types.NewEvalError(types.ErrNonFinite, fmt.Sprintf("Unknown constant: %s", node.Value))
		}
		return v, nil

	case types.NodeVariable:
		v, ok := bindings[node.Value]
		if !ok {
			return 0, types.NewEvalError(types.ErrUndefinedVariable,
				fmt.Sprintf("Undefined variable: %s", node.Value)).WithVariable(node.Value)
		}
		return checkFinite(v)

	case types.NodeUnary:
		v, err := evalNode(node.LHS, bindings)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case types.NodeBinary:
		return evalBinary(node, bindings)

	case types.NodeFunction:
		return evalFunction(node, bindings)

	default:
		return 0, types.NewEvalError(types.ErrNonFinite, fmt.Sprintf("Unknown node type: %s", node.Type))
	}
}

func evalBinary(node *types.ASTNode, bindings types.Bindings) (float64, error) {
	lhs, err := evalNode(node.LHS, bindings)
	if err != nil {
		return 0, err
	}
	rhs, err := evalNode(node.RHS, bindings)
	if err != nil {
		return 0, err
	}

	switch node.Value {
	case "+":
		return checkFinite(lhs + rhs)
	case "-":
		return checkFinite(lhs - rhs)
	case "*":
		return checkFinite(lhs * rhs)
	case "/":
		if rhs == 0 {
			return 0, types.NewEvalError(types.ErrDivisionByZero, fmt.Sprintf("Division by zero: %v / 0", lhs))
		}
		return checkFinite(lhs / rhs)
	case "**":
		result := math.Pow(lhs, rhs)
		if math.IsNaN(result) {
			// math.Pow yields NaN only outside the real domain, e.g. a
			// fractional exponent of a negative base.
			return 0, types.NewEvalError(types.ErrPowDomain, fmt.Sprintf("Power outside real domain: %v ** %v", lhs, rhs))
		}
		return checkFinite(result)
	default:
		return 0, types.NewEvalError(types.ErrNonFinite, fmt.Sprintf("Unknown operator: %s", node.Value))
	}
}

func evalFunction(node *types.ASTNode, bindings types.Bindings) (float64, error) {
	fn, ok := functions.Lookup(node.Value)
	if !ok {
		// The parser rejects unknown functions; this covers trees built
		// by hand.
		return 0, types.NewEvalError(types.ErrNonFinite, fmt.Sprintf("Unknown function: %s", node.Value))
	}

	arg, err := evalNode(node.LHS, bindings)
	if err != nil {
		return 0, err
	}

	result, err := fn(arg)
	if err != nil {
		return 0, err
	}
	return checkFinite(result)
}

// checkFinite rejects NaN and ±Inf intermediate results.
func checkFinite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, types.NewEvalError(types.ErrNonFinite, fmt.Sprintf("Non-finite result: %v", v))
	}
	return v, nil
}

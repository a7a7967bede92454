// Package goformula implements the formula expression engine of a
// greenhouse-gas emission and absorption calculation suite.
//
// Regulatory emission formulas are entered by users in a loosely
// standardized, partly LaTeX-flavored notation. GoFormula normalizes that
// notation, parses it into an immutable expression tree, extracts the
// variable names a formula references, evaluates it against a
// name-to-value binding map, and evaluates summation blocks where one
// template is instantiated per indexed term and the results summed.
//
// # Quick Start
//
//	// Evaluate a formula in one call
//	result, err := goformula.Eval("E = FC * EF * OF",
//	    goformula.Bindings{"FC": 1000, "EF": 2.5, "OF": 0.98})
//
//	// Compile once, evaluate many times
//	expr, err := goformula.Compile(`\frac{FC \cdot EF}{1000}`)
//	names := goformula.Variables(expr)          // inputs a form should render
//	v, err := evaluator.Eval(expr, bindings)
//
//	// Summation block: Σ over indexed terms
//	total, err := goformula.EvalSum("FC_j * EF_j", []goformula.Bindings{
//	    {"FC_1": 10, "EF_1": 2},
//	    {"FC_2": 15, "EF_2": 3},
//	})
//
// # Safety
//
// The engine is deliberately not a programming language: no control flow,
// no user-defined functions, no strings or booleans. The parser accepts
// only arithmetic over identifiers, numeric literals, the constants pi and
// e, and the fixed function allow-list (sqrt, exp, log, abs), so
// user-entered formula text can never execute code.
//
// # More Information
//
// For detailed documentation, see:
//   - Normalizer: github.com/sandrolain/goformula/pkg/normalizer
//   - Parser: github.com/sandrolain/goformula/pkg/parser
//   - Evaluator: github.com/sandrolain/goformula/pkg/evaluator
//   - Functions: github.com/sandrolain/goformula/pkg/functions
//   - Types: github.com/sandrolain/goformula/pkg/types
package goformula

import (
	"fmt"

	"github.com/sandrolain/goformula/pkg/evaluator"
	"github.com/sandrolain/goformula/pkg/normalizer"
	"github.com/sandrolain/goformula/pkg/parser"
	"github.com/sandrolain/goformula/pkg/types"
)

// Bindings maps variable names to the values used during evaluation.
// It is an alias of [types.Bindings].
type Bindings = types.Bindings

// Version returns the current version of GoFormula.
func Version() string {
	return "v0.1.0-dev"
}

// Normalize rewrites human-typed formula text into canonical expression
// text: "name = expr" prefixes are dropped, LaTeX-style constructs
// (\frac, \cdot, \times, \sqrt) become plain operators, and braced
// subscripts collapse into flat identifiers. It never fails.
func Normalize(text string) string {
	return normalizer.Normalize(text)
}

// Parse parses canonical expression text into a compiled Expression.
// Input in human notation should go through Compile instead.
func Parse(text string) (*types.Expression, error) {
	return parser.Parse(text)
}

// Compile normalizes and parses formula text for repeated evaluation.
//
// The compiled expression can be evaluated multiple times against
// different bindings. It is immutable and safe for concurrent use.
//
// Example:
//
//	expr, err := goformula.Compile("E = FC * EF * OF")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, _ := evaluator.Eval(expr, bindings)
func Compile(formula string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Compile(normalizer.Normalize(formula), opts...)
}

// MustCompile is like Compile but panics if the formula cannot be compiled.
// It simplifies safe initialization of global variables.
func MustCompile(formula string) *types.Expression {
	expr, err := Compile(formula)
	if err != nil {
		panic(fmt.Sprintf("goformula: Compile(%q): %v", formula, err))
	}
	return expr
}

// Variables returns the distinct variable names referenced by a compiled
// expression, sorted, excluding function names and the constants pi and e.
// The calculator UI uses this to discover which inputs a formula needs.
func Variables(expr *types.Expression) []string {
	return evaluator.Variables(expr)
}

// Eval is a convenience function that normalizes, compiles and evaluates a
// formula in a single call.
//
// For repeated evaluations of the same formula, use Compile with
// [evaluator.Eval] instead.
//
// Example:
//
//	result, err := goformula.Eval("(a + b) / c",
//	    goformula.Bindings{"a": 100, "b": 50, "c": 3})
func Eval(formula string, bindings Bindings) (float64, error) {
	expr, err := Compile(formula)
	if err != nil {
		return 0, err
	}
	return evaluator.Eval(expr, bindings)
}

// EvalSum evaluates a summation block: the template is instantiated once
// per binding set, replacing the placeholder marker with the 1-based term
// index, and the per-term results are summed. The first failing term
// aborts the call.
func EvalSum(template string, terms []Bindings, opts ...evaluator.SumOption) (float64, error) {
	return evaluator.EvalSum(template, terms, opts...)
}

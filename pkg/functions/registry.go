// Package functions holds the fixed allow-list of built-in scalar functions
// and named constants available in formula expressions.
//
// The allow-list is the only fixed state in the engine. It is immutable:
// callers cannot register functions, and the parser rejects any call to a
// name outside the list.
package functions

import (
	"fmt"
	"math"
	"sort"

	"github.com/sandrolain/goformula/pkg/types"
)

// Func is the implementation of a built-in single-argument function.
// It returns a *types.EvalError when the argument is outside the function's
// mathematical domain.
type Func func(x float64) (float64, error)

// registry maps function names to implementations.
var registry = map[string]Func{
	"sqrt": sqrtFn,
	"exp":  expFn,
	"log":  logFn,
	"abs":  absFn,
}

// constants maps named constants to their values.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Lookup returns the implementation of a built-in function.
// The second return value reports whether the name is in the allow-list.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Constant returns the value of a named constant.
// The second return value reports whether the name is a known constant.
func Constant(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}

// Names returns the allow-listed function names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sqrtFn(x float64) (float64, error) {
	if x < 0 {
		return 0, types.NewEvalError(types.ErrSqrtDomain, fmt.Sprintf("Square root of negative number: %v", x))
	}
	return math.Sqrt(x), nil
}

func expFn(x float64) (float64, error) {
	return math.Exp(x), nil
}

func logFn(x float64) (float64, error) {
	if x <= 0 {
		return 0, types.NewEvalError(types.ErrLogDomain, fmt.Sprintf("Logarithm of non-positive number: %v", x))
	}
	return math.Log(x), nil
}

func absFn(x float64) (float64, error) {
	return math.Abs(x), nil
}

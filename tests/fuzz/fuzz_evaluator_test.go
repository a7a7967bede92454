package fuzz

import (
	"math"
	"testing"

	"github.com/sandrolain/goformula"
)

func FuzzEval(f *testing.F) {
	seeds := []string{
		`FC * EF * OF`,
		`(a + b) / c`,
		`a ** b`,
		`sqrt(a) + log(b)`,
		`1 / a`,
		`-a`,
		`pi * e`,
	}
	for _, s := range seeds {
		f.Add(s, 2.0, 3.0, 4.0)
	}
	f.Fuzz(func(t *testing.T, formula string, a, b, c float64) {
		expr, err := goformula.Compile(formula)
		if err != nil {
			return
		}

		bindings := make(goformula.Bindings)
		for _, name := range goformula.Variables(expr) {
			bindings[name] = a
			a, b, c = b, c, a
		}

		result, err := goformula.Eval(formula, bindings)
		if err != nil {
			return
		}
		// A successful evaluation must never produce a non-finite number.
		if math.IsNaN(result) || math.IsInf(result, 0) {
			t.Errorf("Eval(%q, %v) = %v, want finite", formula, bindings, result)
		}
	})
}

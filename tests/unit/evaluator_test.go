package unit_test

import (
	"errors"
	"math"
	"testing"

	"github.com/sandrolain/goformula"
	"github.com/sandrolain/goformula/pkg/evaluator"
	"github.com/sandrolain/goformula/pkg/types"
)

// almostEqual compares floats with a relative tolerance; formula results
// accumulate ordinary floating-point rounding.
func almostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= 1e-9*scale
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		formula  string
		bindings goformula.Bindings
		expected float64
	}{
		{
			name:     "combustion emission",
			formula:  "E = FC * EF * OF",
			bindings: goformula.Bindings{"FC": 1000, "EF": 2.5, "OF": 0.98},
			expected: 2450.0,
		},
		{
			name:     "grouped division",
			formula:  "(a + b) / c",
			bindings: goformula.Bindings{"a": 100, "b": 50, "c": 3},
			expected: 50.0,
		},
		{
			name:     "powers",
			formula:  "a**2 + b**3",
			bindings: goformula.Bindings{"a": 3, "b": 2},
			expected: 17.0,
		},
		{
			name:     "precedence",
			formula:  "2 + 3 * 4",
			bindings: nil,
			expected: 14.0,
		},
		{
			name:     "left-associative subtraction",
			formula:  "10 - 4 - 3",
			bindings: nil,
			expected: 3.0,
		},
		{
			name:     "left-associative division",
			formula:  "100 / 10 / 2",
			bindings: nil,
			expected: 5.0,
		},
		{
			name:     "right-associative power",
			formula:  "2 ** 3 ** 2",
			bindings: nil,
			expected: 512.0,
		},
		{
			name:     "unary minus",
			formula:  "-a + 10",
			bindings: goformula.Bindings{"a": 4},
			expected: 6.0,
		},
		{
			name:     "unary minus binds looser than power",
			formula:  "-2 ** 2",
			bindings: nil,
			expected: -4.0,
		},
		{
			name:     "negative exponent",
			formula:  "10 ** -2",
			bindings: nil,
			expected: 0.01,
		},
		{
			name:     "latex fraction",
			formula:  `\frac{GCV}{1000} * FC`,
			bindings: goformula.Bindings{"GCV": 40, "FC": 500},
			expected: 20.0,
		},
		{
			name:     "latex products",
			formula:  `FC \cdot EF \times OF`,
			bindings: goformula.Bindings{"FC": 10, "EF": 2, "OF": 0.5},
			expected: 10.0,
		},
		{
			name:     "braced subscripts",
			formula:  "FC_{j} * EF_{j}",
			bindings: goformula.Bindings{"FC_j": 7, "EF_j": 3},
			expected: 21.0,
		},
		{
			name:     "sqrt",
			formula:  "sqrt(a) + 1",
			bindings: goformula.Bindings{"a": 9},
			expected: 4.0,
		},
		{
			name:     "latex sqrt",
			formula:  `\sqrt{a + b}`,
			bindings: goformula.Bindings{"a": 9, "b": 16},
			expected: 5.0,
		},
		{
			name:     "abs of negative",
			formula:  "abs(a - b)",
			bindings: goformula.Bindings{"a": 3, "b": 10},
			expected: 7.0,
		},
		{
			name:     "log and exp invert",
			formula:  "exp(log(x))",
			bindings: goformula.Bindings{"x": 42},
			expected: 42.0,
		},
		{
			name:     "pi constant",
			formula:  "pi * r ** 2",
			bindings: goformula.Bindings{"r": 2},
			expected: 4 * math.Pi,
		},
		{
			name:     "e constant",
			formula:  "log(e)",
			bindings: nil,
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := goformula.Eval(tt.formula, tt.bindings)
			if err != nil {
				t.Fatalf("Eval(%q) failed: %v", tt.formula, err)
			}
			if !almostEqual(got, tt.expected) {
				t.Errorf("Eval(%q) = %v, want %v", tt.formula, got, tt.expected)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name     string
		formula  string
		bindings goformula.Bindings
		code     types.ErrorCode
		variable string
	}{
		{
			name:     "missing variable",
			formula:  "a*b",
			bindings: goformula.Bindings{"a": 10},
			code:     types.ErrUndefinedVariable,
			variable: "b",
		},
		{
			name:     "all variables missing",
			formula:  "FC * EF",
			bindings: nil,
			code:     types.ErrUndefinedVariable,
		},
		{
			name:     "division by zero",
			formula:  "a/b",
			bindings: goformula.Bindings{"a": 10, "b": 0},
			code:     types.ErrDivisionByZero,
		},
		{
			name:     "division by zero literal",
			formula:  "1/0",
			bindings: nil,
			code:     types.ErrDivisionByZero,
		},
		{
			name:     "sqrt of negative",
			formula:  "sqrt(a)",
			bindings: goformula.Bindings{"a": -1},
			code:     types.ErrSqrtDomain,
		},
		{
			name:     "log of zero",
			formula:  "log(x)",
			bindings: goformula.Bindings{"x": 0},
			code:     types.ErrLogDomain,
		},
		{
			name:     "log of negative",
			formula:  "log(x)",
			bindings: goformula.Bindings{"x": -5},
			code:     types.ErrLogDomain,
		},
		{
			name:     "fractional power of negative base",
			formula:  "a ** 0.5",
			bindings: goformula.Bindings{"a": -4},
			code:     types.ErrPowDomain,
		},
		{
			name:     "overflowing power",
			formula:  "10 ** 400",
			bindings: nil,
			code:     types.ErrNonFinite,
		},
		{
			name:     "overflowing exp",
			formula:  "exp(x)",
			bindings: goformula.Bindings{"x": 1000},
			code:     types.ErrNonFinite,
		},
		{
			name:     "non-finite binding",
			formula:  "x + 1",
			bindings: goformula.Bindings{"x": math.Inf(1)},
			code:     types.ErrNonFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := goformula.Eval(tt.formula, tt.bindings)
			if err == nil {
				t.Fatalf("Eval(%q) should have failed", tt.formula)
			}

			var eerr *types.EvalError
			if !errors.As(err, &eerr) {
				t.Fatalf("Eval(%q) error is %T, want *types.EvalError", tt.formula, err)
			}
			if eerr.Code != tt.code {
				t.Errorf("Eval(%q) code = %s, want %s", tt.formula, eerr.Code, tt.code)
			}
			if tt.variable != "" && eerr.Variable != tt.variable {
				t.Errorf("Eval(%q) variable = %q, want %q", tt.formula, eerr.Variable, tt.variable)
			}
		})
	}
}

func TestEvalNeverReturnsNonFinite(t *testing.T) {
	// Whatever the input, a successful evaluation must be finite.
	cases := []struct {
		formula  string
		bindings goformula.Bindings
	}{
		{"10 ** 400", nil},
		{"-(10 ** 400)", nil},
		{"1 / x", goformula.Bindings{"x": math.SmallestNonzeroFloat64}},
		{"exp(800)", nil},
	}
	for _, c := range cases {
		got, err := goformula.Eval(c.formula, c.bindings)
		if err != nil {
			continue
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Eval(%q) returned non-finite %v", c.formula, got)
		}
	}
}

func TestEvalReusesCompiledExpression(t *testing.T) {
	expr := goformula.MustCompile("FC * EF")

	for i, want := range []float64{6, 12, 18} {
		got, err := evaluator.Eval(expr, goformula.Bindings{"FC": float64(i+1) * 2, "EF": 3})
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(got, want) {
			t.Errorf("evaluation %d = %v, want %v", i, got, want)
		}
	}
}

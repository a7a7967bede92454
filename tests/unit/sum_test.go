package unit_test

import (
	"errors"
	"testing"

	"github.com/sandrolain/goformula"
	"github.com/sandrolain/goformula/pkg/evaluator"
	"github.com/sandrolain/goformula/pkg/types"
)

func TestEvalSum(t *testing.T) {
	tests := []struct {
		name     string
		template string
		terms    []goformula.Bindings
		expected float64
	}{
		{
			name:     "fuel streams",
			template: "FC_j * EF_j",
			terms: []goformula.Bindings{
				{"FC_1": 10, "EF_1": 2},
				{"FC_2": 15, "EF_2": 3},
				{"FC_3": 20, "EF_3": 1},
			},
			expected: 85.0,
		},
		{
			name:     "single term",
			template: "FC_j * EF_j",
			terms: []goformula.Bindings{
				{"FC_1": 10, "EF_1": 2.5},
			},
			expected: 25.0,
		},
		{
			name:     "no terms",
			template: "FC_j * EF_j",
			terms:    nil,
			expected: 0.0,
		},
		{
			name:     "template without placeholder",
			template: "a + b",
			terms: []goformula.Bindings{
				{"a": 1, "b": 2},
				{"a": 3, "b": 4},
			},
			expected: 10.0,
		},
		{
			name:     "latex template",
			template: `\frac{FC_{j}}{NCV_j}`,
			terms: []goformula.Bindings{
				{"FC_1": 100, "NCV_1": 4},
				{"FC_2": 90, "NCV_2": 3},
			},
			expected: 55.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := goformula.EvalSum(tt.template, tt.terms)
			if err != nil {
				t.Fatalf("EvalSum(%q) failed: %v", tt.template, err)
			}
			if !almostEqual(got, tt.expected) {
				t.Errorf("EvalSum(%q) = %v, want %v", tt.template, got, tt.expected)
			}
		})
	}
}

// EvalSum over n terms must equal n separate Eval calls on the substituted
// template.
func TestEvalSumMatchesSeparateEvals(t *testing.T) {
	terms := []goformula.Bindings{
		{"FC_1": 12.5, "EF_1": 1.9},
		{"FC_2": 7.25, "EF_2": 3.1},
		{"FC_3": 44, "EF_3": 0.4},
	}

	var want float64
	substituted := []string{"FC_1 * EF_1", "FC_2 * EF_2", "FC_3 * EF_3"}
	for i, text := range substituted {
		v, err := goformula.Eval(text, terms[i])
		if err != nil {
			t.Fatal(err)
		}
		want += v
	}

	got, err := goformula.EvalSum("FC_j * EF_j", terms)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, want) {
		t.Errorf("EvalSum = %v, want sum of separate evals %v", got, want)
	}
}

func TestEvalSumCustomPlaceholder(t *testing.T) {
	terms := []goformula.Bindings{
		{"Area_1": 10, "CF_1": 0.5},
		{"Area_2": 20, "CF_2": 0.25},
	}

	got, err := goformula.EvalSum("Area_i * CF_i", terms, evaluator.WithPlaceholder("i"))
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, 10.0) {
		t.Errorf("EvalSum with placeholder i = %v, want 10", got)
	}
}

func TestEvalSumAbortsOnFirstFailure(t *testing.T) {
	t.Run("missing variable in middle term", func(t *testing.T) {
		terms := []goformula.Bindings{
			{"FC_1": 10, "EF_1": 2},
			{"FC_2": 15}, // EF_2 is missing
			{"FC_3": 20, "EF_3": 1},
		}

		_, err := goformula.EvalSum("FC_j * EF_j", terms)
		if err == nil {
			t.Fatal("expected failure for incomplete term bindings")
		}

		var eerr *types.EvalError
		if !errors.As(err, &eerr) {
			t.Fatalf("error is %T, want *types.EvalError", err)
		}
		if eerr.Code != types.ErrUndefinedVariable || eerr.Variable != "EF_2" {
			t.Errorf("error = %v, want undefined variable EF_2", err)
		}
	})

	t.Run("domain violation aborts", func(t *testing.T) {
		terms := []goformula.Bindings{
			{"FC_1": 10, "Q_1": 2},
			{"FC_2": 15, "Q_2": 0},
		}

		_, err := goformula.EvalSum("FC_j / Q_j", terms)
		var eerr *types.EvalError
		if !errors.As(err, &eerr) || eerr.Code != types.ErrDivisionByZero {
			t.Errorf("error = %v, want division by zero", err)
		}
	})

	t.Run("malformed template fails with parse error", func(t *testing.T) {
		terms := []goformula.Bindings{{"FC_1": 10}}

		_, err := goformula.EvalSum("FC_j * * 2", terms)
		var perr *types.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("error = %T, want *types.ParseError", err)
		}
	})
}

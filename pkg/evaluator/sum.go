package evaluator

import (
	"strconv"
	"strings"

	"github.com/sandrolain/goformula/pkg/normalizer"
	"github.com/sandrolain/goformula/pkg/parser"
	"github.com/sandrolain/goformula/pkg/types"
)

// Placeholder is the default marker substituted with the 1-based term index
// in a summation template. With the template "FC_j * EF_j", term 2 is
// evaluated as "FC_2 * EF_2".
const Placeholder = "j"

// SumOption configures summation evaluation.
type SumOption func(*sumOptions)

type sumOptions struct {
	placeholder string
}

// WithPlaceholder overrides the placeholder marker replaced with the term
// index. The substitution is plain text templating: every occurrence of the
// marker in the template is replaced, so the marker must not occur inside
// identifiers it is not meant to index. Each call uses exactly one marker.
func WithPlaceholder(marker string) SumOption {
	return func(opts *sumOptions) {
		opts.placeholder = marker
	}
}

// EvalSum evaluates a summation block: the template is instantiated once
// per binding set in terms, in list order, and the results are summed.
//
// For i = 1..len(terms), every occurrence of the placeholder marker in the
// template is replaced with the decimal index i, the resulting text runs
// through Normalize, Parse and Eval with terms[i-1] as the bindings, and
// the value is added to the running total. Each binding set's keys must
// match the post-substitution identifiers of its own iteration.
//
// The first parse or evaluation failure aborts the whole call; no partial
// sum is returned.
func EvalSum(template string, terms []types.Bindings, opts ...SumOption) (float64, error) {
	options := sumOptions{
		placeholder: Placeholder,
	}
	for _, opt := range opts {
		opt(&options)
	}

	var total float64
	for i, bindings := range terms {
		text := strings.ReplaceAll(template, options.placeholder, strconv.Itoa(i+1))

		expr, err := parser.Parse(normalizer.Normalize(text))
		if err != nil {
			return 0, err
		}

		value, err := Eval(expr, bindings)
		if err != nil {
			return 0, err
		}

		total += value
	}

	return total, nil
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandrolain/goformula"
	"github.com/sandrolain/goformula/pkg/evaluator"
)

// newEvalCmd creates the "eval" subcommand: normalize, compile and evaluate
// one formula against --set bindings.
func newEvalCmd() *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "eval <formula>",
		Short: "Evaluate a formula against variable bindings",
		Example: `  goformula eval "E = FC * EF * OF" --set FC=1000 --set EF=2.5 --set OF=0.98
  goformula eval '\frac{FC \cdot EF}{1000}' --set FC=500 --set EF=74.1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindings, err := parseBindings(sets)
			if err != nil {
				return err
			}

			expr, err := goformula.Compile(args[0])
			if err != nil {
				return err
			}
			logger.Debug().Str("canonical", expr.Source()).Msg("compiled formula")

			result, err := evaluator.Eval(expr, bindings)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(result))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "variable binding as name=value (repeatable)")

	return cmd
}

// parseBindings converts repeated name=value flags into a binding map.
func parseBindings(sets []string) (goformula.Bindings, error) {
	bindings := make(goformula.Bindings, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected name=value", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", s, err)
		}
		bindings[strings.TrimSpace(name)] = v
	}
	return bindings, nil
}

// formatNumber prints a float without exponent notation for typical
// reporting magnitudes.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

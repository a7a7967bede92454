package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sandrolain/goformula"
	"github.com/sandrolain/goformula/pkg/evaluator"
)

// newSumCmd creates the "sum" subcommand: evaluate a summation template
// once per term of a YAML bindings file and print the total.
//
// The terms file is a YAML list with one binding map per term:
//
//	- FC_1: 10
//	  EF_1: 2
//	- FC_2: 15
//	  EF_2: 3
func newSumCmd() *cobra.Command {
	var (
		termsFile   string
		placeholder string
	)

	cmd := &cobra.Command{
		Use:     "sum <template>",
		Short:   "Evaluate a summation block over indexed terms",
		Example: `  goformula sum "FC_j * EF_j" --terms terms.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := loadTerms(termsFile)
			if err != nil {
				return err
			}
			logger.Debug().Int("terms", len(terms)).Str("placeholder", placeholder).Msg("loaded terms file")

			result, err := goformula.EvalSum(args[0], terms, evaluator.WithPlaceholder(placeholder))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&termsFile, "terms", "", "YAML file with one binding map per term (required)")
	cmd.Flags().StringVar(&placeholder, "placeholder", evaluator.Placeholder, "index placeholder marker in the template")
	_ = cmd.MarkFlagRequired("terms")

	return cmd
}

// loadTerms reads the indexed bindings sequence from a YAML file.
func loadTerms(path string) ([]goformula.Bindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading terms file: %w", err)
	}

	var terms []goformula.Bindings
	if err := yaml.Unmarshal(data, &terms); err != nil {
		return nil, fmt.Errorf("parsing terms file %s: %w", path, err)
	}
	return terms, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandrolain/goformula"
)

// newVarsCmd creates the "vars" subcommand: print the distinct variable
// names a formula references, one per line, sorted.
func newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "vars <formula>",
		Short:   "List the variables a formula references",
		Example: `  goformula vars "FC_j_y * EF_CO2_j_y"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := goformula.Compile(args[0])
			if err != nil {
				return err
			}

			for _, name := range goformula.Variables(expr) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

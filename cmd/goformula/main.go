// Command goformula evaluates greenhouse-gas reporting formulas from the
// command line.
//
// It is a thin shell around the goformula library, meant for spot-checking
// regulatory formulas and for scripting outside the calculator UI:
//
//	goformula eval "E = FC * EF * OF" --set FC=1000 --set EF=2.5 --set OF=0.98
//	goformula vars "FC_j_y * EF_CO2_j_y"
//	goformula sum "FC_j * EF_j" --terms terms.yaml
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sandrolain/goformula"
)

// logger is the package-level logger for CLI diagnostics.
var logger zerolog.Logger

func main() {
	root := newRootCmd(goformula.Version())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root Cobra command and wires up logging and the
// eval, vars and sum subcommands.
func newRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "goformula",
		Short:         "GHG formula expression engine",
		Long:          "GoFormula: normalize, inspect and evaluate greenhouse-gas reporting formulas",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newVarsCmd())
	cmd.AddCommand(newSumCmd())

	return cmd
}

// setupLogging configures the package logger on stderr. Results go to
// stdout; everything else is diagnostics.
func setupLogging(cmd *cobra.Command) {
	level := zerolog.WarnLevel
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = zerolog.DebugLevel
	}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()
}

// Package cli implements the commands of the moneycalc tool.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exactmoney/money"
	"github.com/exactmoney/money/internal/config"
	"github.com/exactmoney/money/internal/logging"
)

// app is the state shared by the subcommands of a single invocation.
type app struct {
	cfg  *config.Config
	calc money.Calculator
	log  *slog.Logger
}

// Main returns the root command.
func Main() *cobra.Command {
	a := &app{log: logging.Discard()}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "moneycalc",
		Short:         "Exact arithmetic on amounts of money",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, v)
		},
		Run: func(cmd *cobra.Command, _ []string) { cmd.Help() }, //nolint:errcheck
	}
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.MarkPersistentFlagFilename(config.KeyEnvFile) //nolint:errcheck

	rootCmd.AddCommand(a.addCmd())
	rootCmd.AddCommand(a.subCmd())
	rootCmd.AddCommand(a.mulCmd())
	rootCmd.AddCommand(a.quoCmd())
	rootCmd.AddCommand(a.allocateCmd())
	rootCmd.AddCommand(a.splitCmd())
	rootCmd.AddCommand(a.convertCmd())
	rootCmd.AddCommand(a.roundCmd())
	rootCmd.AddCommand(a.unitsCmd())
	rootCmd.AddCommand(a.backendsCmd())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.WithComponent(
		logging.New(cmd.ErrOrStderr(), logging.Options{Level: cfg.LogLevel}),
		logging.ComponentCLI,
	)

	calc, err := cfg.Calc()
	if err != nil {
		return fmt.Errorf("selecting calculator: %w", err)
	}
	a.calc = calc
	a.log.Debug("configured",
		logging.FieldCalculator, calc.Name(),
		logging.FieldRounding, cfg.Rounding.String(),
	)
	return nil
}

// amount parses an amount in minor units, or in major units when major is set,
// and binds it to the configured calculator.
func (a *app) amount(curr, units string, major bool) (money.Amount, error) {
	var (
		m   money.Amount
		err error
	)
	if major {
		m, err = money.ParseDecimalAmount(curr, units)
	} else {
		m, err = money.ParseAmount(curr, units)
	}
	if err != nil {
		return money.Amount{}, err
	}
	return m.WithCalc(a.calc), nil
}

// print writes one amount per line.
func (a *app) print(cmd *cobra.Command, op string, amounts ...money.Amount) {
	for _, m := range amounts {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	a.log.Debug("computed",
		logging.FieldOperation, op,
		logging.FieldCalculator, a.calc.Name(),
		logging.FieldResult, fmt.Sprint(amounts),
	)
}

// fail logs the error of an operation and returns it to cobra.
func (a *app) fail(op string, err error) error {
	a.log.Error("operation failed", logging.FieldOperation, op, logging.Err(err))
	return err
}

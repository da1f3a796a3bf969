package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/exactmoney/money"
)

const majorUsage = "read amounts in major units with up to two decimals (12.50) instead of minor units (1250)"

func (a *app) addCmd() *cobra.Command {
	var major bool
	cmd := &cobra.Command{
		Use:   "add CURRENCY AMOUNT AMOUNT...",
		Short: "Add up amounts of the same currency",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := a.amount(args[0], args[1], major)
			if err != nil {
				return a.fail("add", err)
			}
			for _, s := range args[2:] {
				b, err := a.amount(args[0], s, major)
				if err != nil {
					return a.fail("add", err)
				}
				if sum, err = sum.Add(b); err != nil {
					return a.fail("add", err)
				}
			}
			a.print(cmd, "add", sum)
			return nil
		},
	}
	cmd.Flags().BoolVar(&major, "major", false, majorUsage)
	return cmd
}

func (a *app) subCmd() *cobra.Command {
	var major bool
	cmd := &cobra.Command{
		Use:   "sub CURRENCY AMOUNT AMOUNT",
		Short: "Subtract the second amount from the first one",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.amount(args[0], args[1], major)
			if err != nil {
				return a.fail("sub", err)
			}
			y, err := a.amount(args[0], args[2], major)
			if err != nil {
				return a.fail("sub", err)
			}
			d, err := x.Sub(y)
			if err != nil {
				return a.fail("sub", err)
			}
			a.print(cmd, "sub", d)
			return nil
		},
	}
	cmd.Flags().BoolVar(&major, "major", false, majorUsage)
	return cmd
}

func (a *app) mulCmd() *cobra.Command {
	var major bool
	cmd := &cobra.Command{
		Use:   "mul CURRENCY AMOUNT FACTOR",
		Short: "Multiply an amount by a decimal factor",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.amount(args[0], args[1], major)
			if err != nil {
				return a.fail("mul", err)
			}
			e, err := money.ParseNumber(args[2])
			if err != nil {
				return a.fail("mul", err)
			}
			p, err := x.Mul(e, a.cfg.Rounding)
			if err != nil {
				return a.fail("mul", err)
			}
			a.print(cmd, "mul", p)
			return nil
		},
	}
	cmd.Flags().BoolVar(&major, "major", false, majorUsage)
	return cmd
}

func (a *app) quoCmd() *cobra.Command {
	var major bool
	cmd := &cobra.Command{
		Use:   "quo CURRENCY AMOUNT DIVISOR",
		Short: "Divide an amount by a decimal divisor",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.amount(args[0], args[1], major)
			if err != nil {
				return a.fail("quo", err)
			}
			e, err := money.ParseNumber(args[2])
			if err != nil {
				return a.fail("quo", err)
			}
			q, err := x.Quo(e, a.cfg.Rounding)
			if err != nil {
				return a.fail("quo", err)
			}
			a.print(cmd, "quo", q)
			return nil
		},
	}
	cmd.Flags().BoolVar(&major, "major", false, majorUsage)
	return cmd
}

func (a *app) allocateCmd() *cobra.Command {
	var major bool
	cmd := &cobra.Command{
		Use:   "allocate CURRENCY AMOUNT RATIO...",
		Short: "Distribute an amount proportionally to the ratios",
		Long: "Distribute an amount proportionally to the ratios.\n" +
			"Units that cannot be divided go to the parts in the order of the ratios.",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.amount(args[0], args[1], major)
			if err != nil {
				return a.fail("allocate", err)
			}
			ratios := make([]money.Number, 0, len(args)-2)
			for _, s := range args[2:] {
				r, err := money.ParseNumber(s)
				if err != nil {
					return a.fail("allocate", err)
				}
				ratios = append(ratios, r)
			}
			parts, err := x.Allocate(ratios...)
			if err != nil {
				return a.fail("allocate", err)
			}
			a.print(cmd, "allocate", parts...)
			return nil
		},
	}
	cmd.Flags().BoolVar(&major, "major", false, majorUsage)
	return cmd
}

func (a *app) splitCmd() *cobra.Command {
	var major bool
	cmd := &cobra.Command{
		Use:   "split CURRENCY AMOUNT N",
		Short: "Split an amount into N parts differing by at most one unit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.amount(args[0], args[1], major)
			if err != nil {
				return a.fail("split", err)
			}
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return a.fail("split", fmt.Errorf("parsing number of parts %q: %w", args[2], money.ErrParse))
			}
			parts, err := x.Split(n)
			if err != nil {
				return a.fail("split", err)
			}
			a.print(cmd, "split", parts...)
			return nil
		},
	}
	cmd.Flags().BoolVar(&major, "major", false, majorUsage)
	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var (
		major   bool
		inverse bool
	)
	cmd := &cobra.Command{
		Use:   `convert "CCC/BBB RATIO" AMOUNT`,
		Short: "Convert an amount in the counter currency of a pair to its base currency",
		Example: `  moneycalc convert "EUR/USD 1.2500" 1000
  moneycalc convert --inverse "EUR/USD 1.2500" 1250`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := money.ParseCurrencyPair(args[0])
			if err != nil {
				return a.fail("convert", err)
			}
			if inverse {
				if pair, err = pair.Inv(); err != nil {
					return a.fail("convert", err)
				}
			}
			x, err := a.amount(pair.Counter().Code(), args[1], major)
			if err != nil {
				return a.fail("convert", err)
			}
			y, err := pair.Conv(x, a.cfg.Rounding)
			if err != nil {
				return a.fail("convert", err)
			}
			a.print(cmd, "convert", y)
			return nil
		},
	}
	cmd.Flags().BoolVar(&major, "major", false, majorUsage)
	cmd.Flags().BoolVar(&inverse, "inverse", false, "convert from the base currency to the counter currency")
	return cmd
}

func (a *app) roundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "round NUMBER...",
		Short: "Round decimal numbers to integers with the configured rounding mode",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				n, err := money.ParseNumber(s)
				if err != nil {
					return a.fail("round", err)
				}
				r, err := a.calc.Round(n, a.cfg.Rounding)
				if err != nil {
					return a.fail("round", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

func (a *app) unitsCmd() *cobra.Command {
	var scale int
	cmd := &cobra.Command{
		Use:   "units STRING...",
		Short: "Convert decimal strings in major units to minor units",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				u, err := money.ParseUnits(s, scale)
				if err != nil {
					return a.fail("units", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&scale, "scale", money.MinorUnitsScale, "number of decimals of the minor unit")
	return cmd
}

func (a *app) backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the arithmetic backends in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range money.Calculators() {
				mark := " "
				if c.Name() == a.calc.Name() {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-8s supported=%t\n", mark, c.Name(), c.Supported())
			}
			return nil
		},
	}
}

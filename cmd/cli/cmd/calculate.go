// Package cmd - calculate command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/table"
)

type calculateOptions struct {
	current    string
	target     string
	income     string
	multiplier int
	opts       map[string]string
	format     string
	save       bool
	buckets    int
}

func newCalculateCmd(root *rootOptions) *cobra.Command {
	o := &calculateOptions{}
	cmd := &cobra.Command{
		Use:   "calculate <calculator>",
		Short: "Cost and timeline for a current to target range",
		Long: `Sum the cost of every step from current (exclusive) to target
(inclusive) and, with an income, how long that takes to earn.

Levels are numbers; tier calculators also accept tier ids or labels.

Examples:
  kscalc calculate mastery --current 0 --target 10 --income 200
  kscalc calculate gear --current green --target purple-1 --multiplier 6
  kscalc calculate charm --current 10 --target 25 --opt type=fusion
  kscalc calculate building --current 1 --target 10 --opt speed=25 --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := calculator.Input{
				Current:    o.current,
				Target:     o.target,
				Income:     o.income,
				Multiplier: o.multiplier,
				Options:    o.opts,
			}
			return root.app.run(cmd, args[0], in, o.format, o.save, func(report *calculator.Report) {
				if o.buckets > 0 && report.Result != nil {
					report.Buckets = report.Result.Buckets(o.buckets)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&o.current, "current", "c", "", "current level or tier")
	cmd.Flags().StringVarP(&o.target, "target", "t", "", "target level or tier")
	cmd.Flags().StringVarP(&o.income, "income", "i", "", "income per period (monthly, daily...)")
	cmd.Flags().IntVarP(&o.multiplier, "multiplier", "m", 0, "number of identical items (pieces, slots)")
	cmd.Flags().StringToStringVar(&o.opts, "opt", nil, "calculator option key=value (repeatable)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format (text, csv, json)")
	cmd.Flags().BoolVar(&o.save, "save", false, "store the report as the calculator's last result")
	cmd.Flags().IntVar(&o.buckets, "buckets", 0, "group the breakdown into blocks of n levels")
	return cmd
}

func newCalculatorsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calculators",
		Short: "List the available calculators",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range root.app.reg.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s  %s\n", c.Name(), c.Description())
			}
		},
	}
}

func newTiersCmd(root *rootOptions) *cobra.Command {
	var opts map[string]string
	cmd := &cobra.Command{
		Use:   "tiers <calculator>",
		Short: "List the keys a calculator accepts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := root.app.reg.Get(args[0])
			if err != nil {
				return err
			}
			sourced, ok := calc.(calculator.Sourced)
			if !ok {
				return fmt.Errorf("%s has no level or tier table", calc.Name())
			}
			src, err := sourced.Source(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			lower, upper := src.Bounds()
			if src.Kind() == table.Levels {
				fmt.Fprintf(out, "levels %d..%d\n", lower, upper)
				return nil
			}
			for n := lower; n <= upper; n++ {
				k := src.KeyAt(n)
				fmt.Fprintf(out, "%-12s  %s\n", k.ID, k.Label)
			}
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&opts, "opt", nil, "calculator option key=value")
	return cmd
}

// Package cmd - history commands over the last saved report per calculator
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kingshot-calc/core/calculator"
)

func newHistoryCmd(root *rootOptions) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear saved reports",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show <calculator>",
		Short: "Print the last saved report of a calculator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := root.app
			calc, err := a.reg.Get(args[0])
			if err != nil {
				return err
			}
			var report calculator.Report
			found, err := a.store.Load(cmd.Context(), calculator.StorageKey(calc.Name()), &report)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No saved report for %s\n", calc.Name())
				return nil
			}
			return a.render(cmd.OutOrStdout(), &report, format)
		},
	}
	showCmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, csv, json)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every calculator's saved report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := root.app
			names := a.reg.Names()
			keys := make([]string, 0, len(names))
			for _, n := range names {
				keys = append(keys, calculator.StorageKey(n))
			}
			if err := a.store.ClearAll(cmd.Context(), keys...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared saved reports for %d calculators\n", len(keys))
			return nil
		},
	}

	historyCmd.AddCommand(showCmd, clearCmd)
	return historyCmd
}

// Package cmd - single-shot calculators that take no level range
package cmd

import (
	"github.com/spf13/cobra"

	"kingshot-calc/core/calculator"
	"kingshot-calc/games/kingshot/bear"
	"kingshot-calc/games/kingshot/herostats"
	"kingshot-calc/games/kingshot/troop"
)

// optionFlag binds a string flag to a calculator option of the same name
type optionFlag struct {
	name  string
	short string
	usage string
}

// newOptionCmd builds a command whose flags become calculator options
func newOptionCmd(root *rootOptions, name, use, short string, flags []optionFlag) *cobra.Command {
	values := make(map[string]*string, len(flags))
	var format string
	var save bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := calculator.Input{Options: make(map[string]string, len(values))}
			for k, v := range values {
				in.Options[k] = *v
			}
			return root.app.run(cmd, name, in, format, save)
		},
	}
	for _, f := range flags {
		values[f.name] = cmd.Flags().StringP(f.name, f.short, "", f.usage)
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, csv, json)")
	cmd.Flags().BoolVar(&save, "save", false, "store the report as the calculator's last result")
	return cmd
}

func newBearCmd(root *rootOptions) *cobra.Command {
	return newOptionCmd(root, bear.Name, "bear", "Monthly forgehammer income from bear pitfall events", []optionFlag{
		{name: "events", short: "e", usage: "events per month (1-31, default 15)"},
		{name: "hammers", usage: "hammers per event (1-100, default 15)"},
	})
}

func newTroopCmd(root *rootOptions) *cobra.Command {
	return newOptionCmd(root, troop.Name, "troop", "Cost and time to train a batch of troops", []optionFlag{
		{name: "unit", short: "u", usage: "unit type (footman, archer, cavalry, mage)"},
		{name: "quantity", short: "q", usage: "number of troops"},
		{name: "bonus", short: "b", usage: "training speed bonus percent (0-99)"},
	})
}

func newCompareCmd(root *rootOptions) *cobra.Command {
	return newOptionCmd(root, herostats.Name, "compare", "Compare two heroes' stats (rarity:level[:gear])", []optionFlag{
		{name: "a", usage: "first hero, e.g. legendary:60:epic"},
		{name: "b", usage: "second hero, e.g. mythic:40:rare"},
	})
}
